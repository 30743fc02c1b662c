// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package playback drives a scrubbable, speed-controlled timeline over a
sequence of userquake records.

A Scheduler owns one timeline: its record store, its asset cache, the current
position (integer seconds from the window anchor), the speed multiplier and
the playback state:

	Idle → Preloading → Playing ⇄ Paused → Finished

Every command (Play, Pause, Toggle, Seek, SetSpeed) and every timer tick runs
under the scheduler mutex, so ticks never overlap and each render completes
before the next tick is handled. Ticks delivered by a timer that has since
been stopped are discarded by comparing timer generations.

On every position change the scheduler resolves the nearest record, groups
its region confidences and looks up its image, then hands a Frame to the Sink.
Sinks are called with the scheduler lock held and must not call back into the
scheduler.

Usage:

	cache := assets.NewCache(loader, assets.Locator{CDNBase: cdn, Suffix: "_trim"})
	s := playback.NewScheduler(cache, sink, playback.Options{})
	defer s.Close()

	s.Load(records) // renders the most recent record
	s.Play()        // preloads assets, then plays from the start
*/
package playback
