// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/quakescope/internal/confidence"
	"github.com/tomtom215/quakescope/internal/logging"
	"github.com/tomtom215/quakescope/internal/models"
	"github.com/tomtom215/quakescope/internal/source"
	"github.com/tomtom215/quakescope/internal/validation"
)

// RecordReader looks up a single record by id. store.Repository implements it.
type RecordReader interface {
	Get(ctx context.Context, id string) (*models.Record, error)
}

// SetRecordReader sets the repository behind /api/v1/records/{id}.
// A nil reader answers that route with 503.
//
// Thread Safety: call once during startup.
func (h *Handler) SetRecordReader(reader RecordReader) {
	h.records = reader
}

// RecordView is one userquake record prepared for display.
// Regions inside each band are ordered by region code.
type RecordView struct {
	ID          string           `json:"id"`
	Code        int              `json:"code"`
	StartedAt   models.Timestamp `json:"started_at"`
	UpdatedAt   models.Timestamp `json:"updated_at"`
	Confidence  *float64         `json:"confidence,omitempty"`
	Bands       confidence.Group `json:"bands"`
	RegionCount int              `json:"region_count"`
}

func newRecordView(rec *models.Record) RecordView {
	bands := confidence.Normalize(rec.AreaConfidences, confidence.Regions).ByCode()
	count := 0
	for _, b := range bands {
		count += len(b.Areas)
	}
	return RecordView{
		ID:          rec.Identity(),
		Code:        rec.Code,
		StartedAt:   rec.FirstSeenAt,
		UpdatedAt:   rec.ObservedAt,
		Confidence:  rec.Confidence,
		Bands:       bands,
		RegionCount: count,
	}
}

// Record returns a single userquake record with its regional estimates
// grouped into A..E bands.
//
// @Summary Get one userquake record
// @Description Returns the record with its regions grouped into relative confidence bands, region codes sorted inside each band
// @Tags records
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} models.APIResponse{data=RecordView}
// @Failure 400 {object} models.APIResponse "Invalid ID format or not a userquake record"
// @Failure 404 {object} models.APIResponse "Item not found"
// @Failure 503 {object} models.APIResponse "Repository not configured"
// @Router /api/v1/records/{id} [get]
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, CodeValidation, "Empty ID", nil)
		return
	}
	if validation.ValidateVar(id, "required,objectid") != nil {
		respondClassified(w, r, source.ErrInvalidID)
		return
	}
	if h.records == nil {
		respondError(w, http.StatusServiceUnavailable, CodeServiceError, "Record repository not configured", nil)
		return
	}

	start := time.Now()
	rec, err := h.records.Get(r.Context(), id)
	if err != nil {
		respondClassified(w, r, err)
		return
	}
	if rec.Code != models.CodeUserquake {
		respondClassified(w, r, source.ErrNotUserquake)
		return
	}

	view := newRecordView(rec)
	logging.Ctx(r.Context()).Debug().
		Str("object_id", sanitizeLogValue(id)).
		Int("regions", view.RegionCount).
		Msg("Record served")
	respondSuccess(w, http.StatusOK, view, time.Since(start))
}
