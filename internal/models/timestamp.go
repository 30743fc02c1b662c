// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package models

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	// SourceLayout is the wall-clock layout used by the upstream record store.
	// Fractional seconds are optional when parsing.
	SourceLayout = "2006/01/02 15:04:05"

	// sourceLayoutMillis is used when writing timestamps back out.
	sourceLayoutMillis = "2006/01/02 15:04:05.000"
)

// JST is the zone upstream wall-clock timestamps are expressed in.
var JST = time.FixedZone("JST", 9*60*60)

// Timestamp is a time.Time that understands the upstream wall-clock format.
// Missing or unparseable values decode to the zero time instead of failing
// the whole record.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses either the upstream layout (JST) or RFC3339.
func ParseTimestamp(s string) (Timestamp, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, false
	}
	if t, err := time.ParseInLocation(SourceLayout, s, JST); err == nil {
		return Timestamp{Time: t}, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{Time: t}, true
	}
	return Timestamp{}, false
}

// MustTimestamp parses s and panics on failure. Intended for tests and fixtures.
func MustTimestamp(s string) Timestamp {
	ts, ok := ParseTimestamp(s)
	if !ok {
		panic("models: invalid timestamp " + s)
	}
	return ts
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Non-string values (null, numbers) are treated as missing.
		*t = Timestamp{}
		return nil //nolint:nilerr // malformed timestamps degrade to zero
	}
	parsed, _ := ParseTimestamp(s)
	*t = parsed
	return nil
}

// MarshalJSON writes the upstream layout with millisecond precision, or an
// empty string for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.In(JST).Format(sourceLayoutMillis))
}

// SourceString formats t in the upstream layout, "" for the zero time.
func (t Timestamp) SourceString() string {
	if t.IsZero() {
		return ""
	}
	return t.In(JST).Format(sourceLayoutMillis)
}
