// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	SourceKind       string  `json:"source_kind,omitempty"`
	Timelines        int     `json:"timelines"`
	WebSocketClients int     `json:"websocket_clients"`
	Uptime           float64 `json:"uptime"`
}

// Health reports version, uptime and open timelines.
//
// @Summary Server health
// @Description Reports version, uptime, open timelines and websocket clients
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthStatus}
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if h.sessions == nil || h.source == nil {
		status = "degraded"
	}

	health := HealthStatus{
		Status:  status,
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if h.config != nil {
		health.SourceKind = h.config.Source.Kind
	}
	if h.sessions != nil {
		health.Timelines = h.sessions.Count()
	}
	if h.wsHub != nil {
		health.WebSocketClients = h.wsHub.GetClientCount()
	}

	respondSuccess(w, http.StatusOK, health, 0)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 503 until a record source and the session manager are wired.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse "Ready"
// @Failure 503 {object} models.APIResponse "Record source or sessions not wired"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.source == nil || h.sessions == nil {
		respondError(w, http.StatusServiceUnavailable, CodeServiceError, "Service not ready", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"ready": true}, 0)
}
