// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package playback

import (
	"time"

	"github.com/tomtom215/quakescope/internal/confidence"
)

// Frame is what a Sink renders for one playback position.
type Frame struct {
	Position int     `json:"position"`
	Duration int     `json:"duration"`
	State    State   `json:"state"`
	Speed    float64 `json:"speed"`

	// Index is the store index of the displayed record, Total the store size.
	Index int `json:"index"`
	Total int `json:"total"`

	RecordID   string           `json:"record_id,omitempty"`
	ObservedAt time.Time        `json:"observed_at"`
	Group      confidence.Group `json:"group"`

	// Image is the image locator, also used as the link target.
	// Empty when the record has no identity.
	Image string `json:"image,omitempty"`
}

// Sink receives rendered frames.
type Sink interface {
	Render(Frame)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Frame)

// Render calls f.
func (f SinkFunc) Render(frame Frame) { f(frame) }

// Snapshot describes a scheduler without rendering.
type Snapshot struct {
	State    State     `json:"state"`
	Position int       `json:"position"`
	Duration int       `json:"duration"`
	Speed    float64   `json:"speed"`
	Anchor   time.Time `json:"anchor"`
	Records  int       `json:"records"`

	// Frame is the last rendered frame, nil before the first render.
	Frame *Frame `json:"frame,omitempty"`
}
