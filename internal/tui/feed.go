// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package tui

import (
	"sync"

	"github.com/tomtom215/quakescope/internal/playback"
)

// FrameFeed is a latest-wins playback.Sink. Render replaces any frame the
// reader has not consumed yet.
type FrameFeed struct {
	mu sync.Mutex
	ch chan playback.Frame
}

// NewFrameFeed creates an empty feed.
func NewFrameFeed() *FrameFeed {
	return &FrameFeed{ch: make(chan playback.Frame, 1)}
}

// Render implements playback.Sink. It never blocks.
func (f *FrameFeed) Render(frame playback.Frame) {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case <-f.ch:
	default:
	}
	f.ch <- frame
}

// Frames returns the receive side of the feed.
func (f *FrameFeed) Frames() <-chan playback.Frame {
	return f.ch
}
