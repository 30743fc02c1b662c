// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/quakescope/internal/config"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/session"
	"github.com/tomtom215/quakescope/internal/source"
	ws "github.com/tomtom215/quakescope/internal/websocket"
)

// Version is reported by the health endpoint. Overridden at build time with
// -ldflags "-X github.com/tomtom215/quakescope/internal/api.Version=...".
var Version = "dev"

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, websocket upgrader (this file)
//   - handlers_helpers.go: response and request helpers
//   - handlers_health.go: health probes
//   - handlers_timeseries.go: raw record timeseries
//   - handlers_records.go: single record with confidence bands
//   - handlers_timelines.go: timeline sessions and playback controls
//   - handlers_ws.go: websocket frame stream
type Handler struct {
	source    source.Source
	records   RecordReader
	sessions  *session.Manager
	wsHub     *ws.Hub
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - src: record source behind /api/timeseries (also used by sessions)
//   - sessions: timeline session manager
//   - wsHub: websocket hub frames are published to; nil disables /ws
//   - cfg: application configuration; nil accepts every websocket origin
//
// Example:
//
//	handler := api.NewHandler(src, sessions, hub, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Server))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(src source.Source, sessions *session.Manager, wsHub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		source:    src,
		sessions:  sessions,
		wsHub:     wsHub,
		config:    cfg,
		startTime: time.Now(),
	}
}

// getUpgrader creates a WebSocket upgrader with proper origin checking and timeouts.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins against the
// CORS origins. Requests without an Origin header come from non-browser
// clients (the terminal player, scripts) and are accepted.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	if h.config == nil {
		return true
	}

	for _, allowedOrigin := range h.config.Server.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
