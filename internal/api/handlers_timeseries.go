// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/models"
)

// Timeseries returns every userquake record of the event containing {id},
// ordered by observation time, as a bare JSON array.
//
// Method: GET
// Path: /api/timeseries/{id}
//
// Errors:
//   - 400 VALIDATION_ERROR "Empty ID" / "Invalid ID format"
//   - 404 NOT_FOUND "Item not found"
//   - 400 NOT_USERQUAKE "Not a userquake event"
//   - 500 INTERNAL_ERROR "Database error"
//
// @Summary Records of one userquake event
// @Description Returns every userquake record sharing the started_at of {id}, ordered by updated_at, as a bare array
// @Tags records
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {array} models.Record
// @Success 304 "Not modified (If-None-Match)"
// @Failure 400 {object} models.APIResponse "Empty ID, Invalid ID format or Not a userquake event"
// @Failure 404 {object} models.APIResponse "Item not found"
// @Failure 500 {object} models.APIResponse "Database error"
// @Router /api/timeseries/{id} [get]
func (h *Handler) Timeseries(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, CodeValidation, "Empty ID", nil)
		return
	}
	if h.source == nil {
		respondError(w, http.StatusServiceUnavailable, CodeServiceError, "Record source not configured", nil)
		return
	}

	records, err := h.source.Fetch(r.Context(), id)
	if err != nil {
		respondClassified(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	logging.Ctx(r.Context()).Debug().
		Str("object_id", sanitizeLogValue(id)).
		Int("records", len(records)).
		Msg("Timeseries served")
	respondRaw(w, r, records)
}
