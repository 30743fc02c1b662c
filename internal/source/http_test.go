// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/quakescope/internal/config"
)

const timeseriesBody = `[
  {"_id": {"$oid": "65a1"}, "code": 9611, "started_at": "2026/01/15 09:29:00", "updated_at": "2026/01/15 09:30:00.000", "confidence": 0.95,
   "area_confidences": {"250": {"confidence": 0.4}}},
  {"_id": "65a2", "code": 9611, "started_at": "2026/01/15 09:29:00", "updated_at": "2026/01/15 09:30:12.500"}
]`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/timeseries/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/timeseries/65a1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(timeseriesBody))
		case "/api/timeseries/missing":
			http.Error(w, "Item not found", http.StatusNotFound)
		case "/api/timeseries/tsunami":
			http.Error(w, "Not a userquake event", http.StatusBadRequest)
		case "/api/timeseries/bad":
			http.Error(w, "Invalid ID format", http.StatusBadRequest)
		case "/api/timeseries/garbage":
			_, _ = w.Write([]byte(`{"not": "an array"`))
		default:
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestSource(t *testing.T, url string) *HTTPSource {
	t.Helper()
	src, err := NewHTTPSource(&config.SourceConfig{Kind: config.SourceHTTP, URL: url + "/", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("NewHTTPSource() error = %v", err)
	}
	return src
}

func TestNewHTTPSource_RequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := NewHTTPSource(&config.SourceConfig{Kind: config.SourceHTTP}); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, newTestServer(t).URL)
	records, err := src.Fetch(context.Background(), "65a1")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Identity() != "65a1" || records[1].Identity() != "65a2" {
		t.Errorf("identities = %q, %q", records[0].Identity(), records[1].Identity())
	}
	if !records[0].ConfidenceAbove(0.9) {
		t.Error("first record confidence not decoded")
	}
	if got := records[1].ObservedAt.Sub(records[0].ObservedAt.Time); got != 12500*time.Millisecond {
		t.Errorf("observed delta = %v", got)
	}
	if c := records[0].AreaConfidences["250"].Confidence; c == nil || *c != 0.4 {
		t.Errorf("area confidence = %v", c)
	}
}

func TestHTTPSource_Errors(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, newTestServer(t).URL)

	tests := []struct {
		id   string
		want error
	}{
		{"missing", ErrNotFound},
		{"tsunami", ErrNotUserquake},
		{"bad", ErrInvalidID},
		{"", ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, err := src.Fetch(context.Background(), tt.id)
			if !errors.Is(err, tt.want) {
				t.Errorf("Fetch(%q) error = %v, want %v", tt.id, err, tt.want)
			}
		})
	}

	_, err := src.Fetch(context.Background(), "boom")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Fetch(boom) error = %v, want StatusError 500", err)
	}
	if statusErr != nil && statusErr.ErrorType() != "http_5xx" {
		t.Errorf("ErrorType() = %q", statusErr.ErrorType())
	}

	if _, err := src.Fetch(context.Background(), "garbage"); err == nil {
		t.Error("expected decode error")
	}
}

func TestHTTPSource_LookupErrorsKeepBreakerClosed(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, newTestServer(t).URL)
	for i := 0; i < 20; i++ {
		_, _ = src.Fetch(context.Background(), "missing")
	}
	if src.cb.State() != "closed" {
		t.Errorf("breaker state = %s, want closed", src.cb.State())
	}
	if _, err := src.Fetch(context.Background(), "65a1"); err != nil {
		t.Errorf("Fetch after lookup errors: %v", err)
	}
}

func TestIsLookupError(t *testing.T) {
	t.Parallel()

	if !IsLookupError(errors.Join(errors.New("ctx"), ErrNotFound)) {
		t.Error("wrapped ErrNotFound not recognized")
	}
	if IsLookupError(&StatusError{StatusCode: 502}) {
		t.Error("status error treated as lookup error")
	}
}
