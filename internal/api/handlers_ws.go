// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"net/http"

	"github.com/tomtom215/quakescope/internal/logging"
	ws "github.com/tomtom215/quakescope/internal/websocket"
)

// TimelineWebSocket streams the frames rendered by {sid}. The last rendered
// frame is sent first so a new watcher does not wait for the next tick.
//
// @Summary Frame stream
// @Description Upgrades to a websocket that receives {"type":"frame","data":...} messages
// @Tags playback
// @Param sid path string true "Timeline id"
// @Success 101 "Switching protocols"
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Failure 503 {object} models.APIResponse "Hub not initialized"
// @Router /api/v1/timelines/{sid}/ws [get]
func (h *Handler) TimelineWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, CodeServiceError, "WebSocket service unavailable", nil)
		return
	}
	tl, ok := h.timeline(w, r)
	if !ok {
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.wsHub, conn, tl.ID)
	if frame := tl.Snapshot().Frame; frame != nil {
		client.Prime(ws.MessageTypeFrame, *frame)
	}
	h.wsHub.Register <- client
	client.Start()

	logging.Ctx(logging.ContextWithTimelineID(r.Context(), tl.ID)).Debug().
		Uint64("client_id", client.ID()).
		Msg("WebSocket watcher attached")
}
