// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/quakescope/internal/breaker"
	"github.com/tomtom215/quakescope/internal/session"
	"github.com/tomtom215/quakescope/internal/source"
)

// Error codes used in models.APIError.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeNotUserquake      = "NOT_USERQUAKE"
	CodeLimitReached      = "LIMIT_REACHED"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeServiceError      = "SERVICE_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)

// errorResponse is the HTTP rendering of an error.
type errorResponse struct {
	status  int
	code    string
	message string

	// expected errors are answered without an error log line
	expected bool
}

// classifyError maps source, session and breaker errors to a response.
func classifyError(err error) errorResponse {
	var statusErr *source.StatusError
	switch {
	case errors.Is(err, source.ErrInvalidID):
		return errorResponse{http.StatusBadRequest, CodeValidation, "Invalid ID format", true}
	case errors.Is(err, source.ErrNotFound):
		return errorResponse{http.StatusNotFound, CodeNotFound, "Item not found", true}
	case errors.Is(err, source.ErrNotUserquake):
		return errorResponse{http.StatusBadRequest, CodeNotUserquake, "Not a userquake event", true}
	case errors.Is(err, session.ErrNotFound):
		return errorResponse{http.StatusNotFound, CodeNotFound, "Timeline not found", true}
	case errors.Is(err, session.ErrNoRecords):
		return errorResponse{http.StatusNotFound, CodeNotFound, "No records for this event", true}
	case errors.Is(err, session.ErrInvalidSpeed):
		return errorResponse{http.StatusBadRequest, CodeValidation, "Unsupported speed", true}
	case errors.Is(err, session.ErrLimitReached):
		return errorResponse{http.StatusTooManyRequests, CodeLimitReached, "Too many open timelines", true}
	case breaker.IsRejected(err):
		return errorResponse{http.StatusServiceUnavailable, CodeSourceUnavailable, "Record source unavailable", false}
	case errors.Is(err, context.DeadlineExceeded):
		return errorResponse{http.StatusGatewayTimeout, CodeSourceUnavailable, "Record source timed out", false}
	case errors.As(err, &statusErr):
		return errorResponse{http.StatusBadGateway, CodeSourceUnavailable, "Record source error", false}
	default:
		return errorResponse{http.StatusInternalServerError, CodeInternal, "Database error", false}
	}
}
