// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	_ "github.com/tomtom215/quakescope/docs"
)

type swaggerDoc struct {
	Swagger string                                `json:"swagger"`
	Info    struct{ Title, Version string }       `json:"info"`
	Paths   map[string]map[string]json.RawMessage `json:"paths"`
}

func fetchSwaggerDoc(t *testing.T, server *httptest.Server) swaggerDoc {
	t.Helper()
	resp, err := http.Get(server.URL + "/swagger/doc.json")
	if err != nil {
		t.Fatalf("GET doc.json error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("doc.json status = %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read doc.json: %v", err)
	}
	var doc swaggerDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}
	return doc
}

func TestSwagger_ServesSpec(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(NewRouter(NewHandler(nil, nil, nil, nil), nil).SetupChi())
	defer server.Close()

	doc := fetchSwaggerDoc(t, server)
	if doc.Swagger != "2.0" || doc.Info.Title != "Quakescope API" || doc.Info.Version != "1.0" {
		t.Errorf("doc header = %s %+v", doc.Swagger, doc.Info)
	}
	if _, ok := doc.Paths["/api/v1/records/{id}"]["get"]; !ok {
		t.Error("records route missing from swagger spec")
	}
}

// Every routed endpoint must be described in the swagger spec.
func TestSwagger_CoversRoutes(t *testing.T) {
	t.Parallel()

	handler := NewRouter(NewHandler(nil, nil, nil, nil), nil).SetupChi()
	server := httptest.NewServer(handler)
	defer server.Close()
	doc := fetchSwaggerDoc(t, server)

	routes, ok := handler.(chi.Routes)
	if !ok {
		t.Fatalf("SetupChi() returned %T, want chi.Routes", handler)
	}

	undocumented := map[string]bool{
		"/metrics":        true,
		"/swagger/*":      true,
		"/api/timeseries": true, // empty id
		"/api/v1/records": true, // empty id
	}

	walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := route
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		if undocumented[path] {
			return nil
		}
		if _, ok := doc.Paths[path][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s is not in the swagger spec", method, path)
		}
		return nil
	}
	if err := chi.Walk(routes, walk); err != nil {
		t.Fatalf("chi.Walk() error = %v", err)
	}
}
