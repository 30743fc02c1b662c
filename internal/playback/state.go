// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package playback

import "fmt"

// State is the playback state of a Scheduler.
type State int

const (
	// Idle means no records are loaded.
	Idle State = iota
	// Preloading means a play request is waiting for the asset preload.
	Preloading
	// Playing means the timer is advancing the position.
	Playing
	// Paused means records are loaded and the timer is stopped.
	Paused
	// Finished means playback reached the end of the window.
	Finished
)

var stateNames = [...]string{"idle", "preloading", "playing", "paused", "finished"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown playback state %q", text)
}
