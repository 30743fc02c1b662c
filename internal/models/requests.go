// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package models

// CreateTimelineRequest opens a timeline for the userquake event that
// contains the record ObjectID.
type CreateTimelineRequest struct {
	ObjectID string `json:"object_id" validate:"required,objectid"`
	// Speed is optional; zero selects the configured default.
	Speed float64 `json:"speed,omitempty" validate:"gte=0"`
}

// SeekRequest moves the playback position (seconds from the window anchor).
// Position is a pointer so that an explicit 0 is distinguishable from a
// missing field.
type SeekRequest struct {
	Position *int `json:"position" validate:"required,min=0"`
}

// SpeedRequest changes the playback speed multiplier.
type SpeedRequest struct {
	Multiplier float64 `json:"multiplier" validate:"required,gt=0"`
}
