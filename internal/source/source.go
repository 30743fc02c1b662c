// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// Package source provides the record sources a timeline is loaded from.
//
// A Source returns every userquake record of the event that contains the
// requested record, ordered by observation time. Implementations:
//   - HTTPSource: a remote /api/timeseries/{id} endpoint
//   - store.Repository: the local badger repository
//   - Cached: a TTL cache in front of another Source
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/quakescope/internal/models"
)

// Lookup errors shared by every Source.
var (
	ErrNotFound     = errors.New("record not found")
	ErrNotUserquake = errors.New("record is not a userquake event")
	ErrInvalidID    = errors.New("invalid record id")
)

// Source fetches the records of one userquake event.
type Source interface {
	Fetch(ctx context.Context, objectID string) ([]models.Record, error)
}

// Func adapts a function to Source.
type Func func(ctx context.Context, objectID string) ([]models.Record, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context, objectID string) ([]models.Record, error) {
	return f(ctx, objectID)
}

// IsLookupError reports whether err says the upstream answered but had no
// usable event for the id. Such errors are not source failures.
func IsLookupError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotUserquake) || errors.Is(err, ErrInvalidID)
}

// StatusError is an unexpected HTTP status from a remote source.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// ErrorType implements metrics.ErrorTyper.
func (e *StatusError) ErrorType() string {
	switch {
	case e.StatusCode >= 500:
		return "http_5xx"
	case e.StatusCode >= 400:
		return "http_4xx"
	default:
		return "http_other"
	}
}
