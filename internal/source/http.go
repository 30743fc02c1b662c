// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/quakescope/internal/breaker"
	"github.com/tomtom215/quakescope/internal/config"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/metrics"
	"github.com/tomtom215/quakescope/internal/models"
)

// maxErrorBodySize limits how much of an error response is kept.
const maxErrorBodySize = 64 * 1024

// HTTPSource fetches records from <base>/api/timeseries/<id>.
//
// The endpoint answers with a bare JSON array on success. Errors are either
// plain text or the JSON error envelope; 404 maps to ErrNotFound and a 400
// mentioning "userquake" maps to ErrNotUserquake.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	cb      *breaker.Breaker[[]models.Record]
}

// NewHTTPSource creates a source from cfg. cfg.URL must be set.
func NewHTTPSource(cfg *config.SourceConfig) (*HTTPSource, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("source url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	settings := breaker.DefaultSettings("record-source")
	settings.IsSuccessful = func(err error) bool {
		return err == nil || IsLookupError(err)
	}

	return &HTTPSource{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client:  &http.Client{Timeout: timeout},
		cb:      breaker.New[[]models.Record](settings),
	}, nil
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context, objectID string) ([]models.Record, error) {
	if objectID == "" {
		return nil, ErrInvalidID
	}

	start := time.Now()
	records, err := s.cb.Execute(func() ([]models.Record, error) {
		return s.fetch(ctx, objectID)
	})
	metrics.RecordSourceFetch("http", time.Since(start), len(records), err)

	if err != nil {
		if !IsLookupError(err) {
			logging.Ctx(ctx).Error().Err(err).Str("object_id", objectID).Msg("Record fetch failed")
		}
		return nil, fmt.Errorf("fetch timeseries %s: %w", objectID, err)
	}
	return records, nil
}

func (s *HTTPSource) fetch(ctx context.Context, objectID string) ([]models.Record, error) {
	reqURL := s.baseURL + "/api/timeseries/" + url.PathEscape(objectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var records []models.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return records, nil
}

func statusError(resp *http.Response) error {
	body := readBodyForError(resp.Body)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(body), "userquake"):
		return ErrNotUserquake
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidID, body)
	default:
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	return strings.TrimSpace(string(body))
}
