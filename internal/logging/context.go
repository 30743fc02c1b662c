// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	timelineIDKey contextKey = "timeline_id"
	loggerKey     contextKey = "logger"
)

// GenerateRequestID returns a new UUID for an HTTP request.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID attaches an HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithTimelineID attaches the ID of the timeline session being served.
func ContextWithTimelineID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, timelineIDKey, id)
}

// TimelineIDFromContext returns the timeline session ID or "".
func TimelineIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(timelineIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a preconfigured logger in ctx.
//
//nolint:gocritic // zerolog.Logger is passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the logger stored in ctx, or the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger carrying request_id and timeline_id from ctx.
//
//	logging.Ctx(ctx).Info().Int("records", n).Msg("Timeline created")
//	// {"level":"info","request_id":"…","timeline_id":"…","records":42,"message":"Timeline created"}
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := LoggerFromContext(ctx)
	lc := logger.With()
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if id := TimelineIDFromContext(ctx); id != "" {
		lc = lc.Str("timeline_id", id)
	}
	l := lc.Logger()
	return &l
}

// WithComponent creates a child logger tagged with a component name.
//
//	log := logging.WithComponent("assets")
//	log.Debug().Int("requests", n).Msg("Preload started")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
