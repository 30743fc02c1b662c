// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/models"
	"github.com/tomtom215/quakescope/internal/playback"
	"github.com/tomtom215/quakescope/internal/session"
)

// Timeline handlers follow one pattern:
//  1. resolve {sid} (404 when unknown)
//  2. decode and validate the body, if any
//  3. send the command to the scheduler
//  4. answer with the resulting snapshot
//
// Commands that do not apply in the current state (play while preloading,
// seek before load) are accepted and leave the snapshot unchanged.

// ListTimelines returns snapshots of every open timeline.
//
// @Summary List open timelines
// @Tags timelines
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]session.Snapshot}
// @Router /api/v1/timelines [get]
func (h *Handler) ListTimelines(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, h.sessions.List(), 0)
}

// CreateTimeline opens a timeline over the event containing object_id.
//
// Method: POST
// Body: {"object_id": "...", "speed": 5}
// Returns 201 with the snapshot; the timeline starts paused at its end.
//
// @Summary Open a timeline
// @Tags timelines
// @Accept json
// @Produce json
// @Param request body models.CreateTimelineRequest true "Event and optional speed"
// @Success 201 {object} models.APIResponse{data=session.Snapshot}
// @Failure 400 {object} models.APIResponse "Invalid body, id or speed"
// @Failure 404 {object} models.APIResponse "Item not found"
// @Failure 429 {object} models.APIResponse "Too many open timelines"
// @Router /api/v1/timelines [post]
func (h *Handler) CreateTimeline(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTimelineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Speed != 0 && !h.sessions.ValidSpeed(req.Speed) {
		h.respondBadSpeed(w, req.Speed)
		return
	}

	start := time.Now()
	tl, err := h.sessions.Create(r.Context(), req.ObjectID, req.Speed)
	if err != nil {
		respondClassified(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/timelines/"+tl.ID)
	respondSuccess(w, http.StatusCreated, tl.Snapshot(), time.Since(start))
}

// GetTimeline returns the snapshot of {sid}.
//
// @Summary Timeline snapshot
// @Tags timelines
// @Produce json
// @Param sid path string true "Timeline id"
// @Success 200 {object} models.APIResponse{data=session.Snapshot}
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Router /api/v1/timelines/{sid} [get]
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	tl, ok := h.timeline(w, r)
	if !ok {
		return
	}
	respondSuccess(w, http.StatusOK, tl.Snapshot(), 0)
}

// DeleteTimeline closes {sid} and disconnects its watchers.
//
// @Summary Close a timeline
// @Tags timelines
// @Produce json
// @Param sid path string true "Timeline id"
// @Success 200 {object} models.APIResponse "Timeline closed"
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Router /api/v1/timelines/{sid} [delete]
func (h *Handler) DeleteTimeline(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	if err := h.sessions.Close(sid); err != nil {
		respondClassified(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"id": sid, "closed": true}, 0)
}

// PlayTimeline starts or resumes playback. The first play preloads assets;
// the snapshot then reports "preloading" until the cache settles.
//
// @Summary Play
// @Tags playback
// @Produce json
// @Param sid path string true "Timeline id"
// @Success 200 {object} models.APIResponse{data=session.Snapshot}
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Router /api/v1/timelines/{sid}/play [post]
func (h *Handler) PlayTimeline(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, "play", func(s *playback.Scheduler) { s.Play() })
}

// PauseTimeline pauses playback.
//
// @Summary Pause
// @Tags playback
// @Produce json
// @Param sid path string true "Timeline id"
// @Success 200 {object} models.APIResponse{data=session.Snapshot}
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Router /api/v1/timelines/{sid}/pause [post]
func (h *Handler) PauseTimeline(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, "pause", func(s *playback.Scheduler) { s.Pause() })
}

// ToggleTimeline plays when paused and pauses when playing.
//
// @Summary Toggle play and pause
// @Tags playback
// @Produce json
// @Param sid path string true "Timeline id"
// @Success 200 {object} models.APIResponse{data=session.Snapshot}
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Router /api/v1/timelines/{sid}/toggle [post]
func (h *Handler) ToggleTimeline(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, "toggle", func(s *playback.Scheduler) { s.Toggle() })
}

// SeekTimeline moves to {"position": seconds}; out-of-range positions clamp
// to the window and playback pauses.
//
// @Summary Seek
// @Tags playback
// @Accept json
// @Produce json
// @Param sid path string true "Timeline id"
// @Param request body models.SeekRequest true "Position in seconds"
// @Success 200 {object} models.APIResponse{data=session.Snapshot}
// @Failure 400 {object} models.APIResponse "Invalid position"
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Router /api/v1/timelines/{sid}/seek [post]
func (h *Handler) SeekTimeline(w http.ResponseWriter, r *http.Request) {
	tl, ok := h.timeline(w, r)
	if !ok {
		return
	}
	var req models.SeekRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	tl.Scheduler().Seek(*req.Position)
	h.logCommand(r, tl.ID, "seek")
	respondSuccess(w, http.StatusOK, tl.Snapshot(), 0)
}

// SpeedTimeline changes the playback multiplier to one of the configured speeds.
//
// @Summary Change speed
// @Tags playback
// @Accept json
// @Produce json
// @Param sid path string true "Timeline id"
// @Param request body models.SpeedRequest true "Speed multiplier"
// @Success 200 {object} models.APIResponse{data=session.Snapshot}
// @Failure 400 {object} models.APIResponse "Unsupported speed"
// @Failure 404 {object} models.APIResponse "Timeline not found"
// @Router /api/v1/timelines/{sid}/speed [post]
func (h *Handler) SpeedTimeline(w http.ResponseWriter, r *http.Request) {
	tl, ok := h.timeline(w, r)
	if !ok {
		return
	}
	var req models.SpeedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if !h.sessions.ValidSpeed(req.Multiplier) {
		h.respondBadSpeed(w, req.Multiplier)
		return
	}
	tl.Scheduler().SetSpeed(req.Multiplier)
	h.logCommand(r, tl.ID, "speed")
	respondSuccess(w, http.StatusOK, tl.Snapshot(), 0)
}

func (h *Handler) command(w http.ResponseWriter, r *http.Request, name string, fn func(*playback.Scheduler)) {
	tl, ok := h.timeline(w, r)
	if !ok {
		return
	}
	fn(tl.Scheduler())
	h.logCommand(r, tl.ID, name)
	respondSuccess(w, http.StatusOK, tl.Snapshot(), 0)
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) (*session.Timeline, bool) {
	tl, err := h.sessions.Get(chi.URLParam(r, "sid"))
	if err != nil {
		respondClassified(w, r, err)
		return nil, false
	}
	return tl, true
}

func (h *Handler) respondBadSpeed(w http.ResponseWriter, speed float64) {
	details := map[string]interface{}{"field": "speed", "value": speed}
	if h.config != nil && len(h.config.Playback.Speeds) > 0 {
		details["allowed"] = h.config.Playback.Speeds
	}
	respondErrorDetails(w, http.StatusBadRequest, CodeValidation, "Unsupported speed", details, nil)
}

func (h *Handler) logCommand(r *http.Request, id, name string) {
	logging.Ctx(logging.ContextWithTimelineID(r.Context(), id)).Debug().
		Str("command", name).
		Msg("Timeline command")
}
