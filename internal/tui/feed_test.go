// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package tui

import (
	"sync"
	"testing"

	"github.com/tomtom215/quakescope/internal/playback"
)

func TestFrameFeed_LatestWins(t *testing.T) {
	t.Parallel()

	feed := NewFrameFeed()
	for i := 0; i < 5; i++ {
		feed.Render(playback.Frame{Position: i})
	}

	got := <-feed.Frames()
	if got.Position != 4 {
		t.Errorf("Position = %d, want 4", got.Position)
	}
	select {
	case f := <-feed.Frames():
		t.Errorf("unexpected extra frame %+v", f)
	default:
	}
}

func TestFrameFeed_ConcurrentRender(t *testing.T) {
	t.Parallel()

	feed := NewFrameFeed()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				feed.Render(playback.Frame{Position: n*100 + j})
			}
		}(i)
	}
	wg.Wait()

	if len(feed.Frames()) != 1 {
		t.Errorf("buffered frames = %d, want 1", len(feed.Frames()))
	}
}
