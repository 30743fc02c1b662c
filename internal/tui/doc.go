// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package tui renders a playback scheduler in the terminal with Bubble Tea.

The scheduler renders through a FrameFeed, a playback.Sink that never blocks
and keeps only the newest frame. The Model pulls frames from the feed as
tea messages and sends commands back to the scheduler from Update, never from
inside Render.

Key bindings:

	space        play / pause
	left, right  seek 10 seconds back / forward
	home, end    jump to start / end of the window
	+, -         next / previous speed
	q, ctrl+c    quit
*/
package tui
