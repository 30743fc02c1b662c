// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

// Package timeline maps a continuous playback axis onto an irregular sequence
// of userquake records.
package timeline

import (
	"math"
	"time"

	"github.com/tomtom215/quakescope/internal/models"
)

// AnchorConfidence is the overall confidence a record must exceed to anchor
// the playback window.
const AnchorConfidence = 0.9

// Window is the playback extent derived from a store.
// It is computed once when the store is built and never changes afterwards.
type Window struct {
	Anchor          time.Time `json:"anchor"`
	DurationSeconds int       `json:"duration_seconds"`
}

// Clamp limits seconds to [0, DurationSeconds].
func (w Window) Clamp(seconds int) int {
	if seconds < 0 {
		return 0
	}
	if seconds > w.DurationSeconds {
		return w.DurationSeconds
	}
	return seconds
}

// maxSeconds is the largest position that still converts to a time.Duration.
const maxSeconds = math.MaxInt64 / int64(time.Second)

// At returns the absolute time of a playback position.
func (w Window) At(seconds int) time.Time {
	s := int64(seconds)
	switch {
	case s > maxSeconds:
		s = maxSeconds
	case s < -maxSeconds:
		s = -maxSeconds
	}
	return w.Anchor.Add(time.Duration(s) * time.Second)
}

// Store is the immutable, ordered record sequence of one timeline.
//
// Records are expected in non-decreasing ObservedAt order. Store does not
// re-sort; out-of-order input yields poorer index resolution, never a panic.
type Store struct {
	records []models.Record
	window  Window
}

// NewStore copies records and computes the window.
func NewStore(records []models.Record) *Store {
	s := &Store{records: append([]models.Record(nil), records...)}
	s.window = computeWindow(s.records)
	return s
}

// computeWindow anchors on the first record whose overall confidence exceeds
// AnchorConfidence, falling back to the first record's FirstSeenAt.
// Records without timestamps are ignored; when the fallback anchor is
// missing the first observed time is used instead.
func computeWindow(records []models.Record) Window {
	var anchor, first, last time.Time
	for i := range records {
		observed := records[i].ObservedAt.Time
		if observed.IsZero() {
			continue
		}
		if first.IsZero() {
			first = observed
		}
		if anchor.IsZero() && records[i].ConfidenceAbove(AnchorConfidence) {
			anchor = observed
		}
		last = observed
	}
	if first.IsZero() {
		return Window{}
	}

	if anchor.IsZero() {
		for i := range records {
			if started := records[i].FirstSeenAt.Time; !started.IsZero() {
				anchor = started
				break
			}
		}
	}
	if anchor.IsZero() {
		anchor = first
	}

	secs := math.Ceil(last.Sub(anchor).Seconds())
	if secs < 0 || math.IsNaN(secs) {
		secs = 0
	}
	if secs > float64(maxSeconds) {
		secs = float64(maxSeconds)
	}
	return Window{Anchor: anchor, DurationSeconds: int(secs)}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Window returns the playback window.
func (s *Store) Window() Window {
	return s.window
}

// Record returns the record at index i. The caller must keep i in range.
func (s *Store) Record(i int) *models.Record {
	return &s.records[i]
}

// Records returns a copy of the stored records.
func (s *Store) Records() []models.Record {
	return append([]models.Record(nil), s.records...)
}

// FindIndex resolves a playback position to the record closest in time.
//
// targetSeconds is clamped into the window. The scan keeps the first record
// with the smallest distance to the target and stops right after the first
// record observed later than the target. Records without an observed time
// never match unless every record lacks one, in which case the first record
// is returned. It returns false only for an empty store.
func (s *Store) FindIndex(targetSeconds int) (int, bool) {
	if len(s.records) == 0 {
		return 0, false
	}

	target := s.window.At(s.window.Clamp(targetSeconds))

	best := 0
	bestDistance := time.Duration(math.MaxInt64)
	for i := range s.records {
		observed := s.records[i].ObservedAt.Time
		if observed.IsZero() {
			continue
		}
		d := absDuration(observed.Sub(target))
		if d < bestDistance {
			best = i
			bestDistance = d
		}
		if observed.After(target) {
			break
		}
	}
	return best, true
}

// absDuration returns |d|, saturating instead of overflowing at the minimum.
func absDuration(d time.Duration) time.Duration {
	if d >= 0 {
		return d
	}
	if d == math.MinInt64 {
		return math.MaxInt64
	}
	return -d
}
