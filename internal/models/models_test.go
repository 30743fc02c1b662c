// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestIdentity_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Identity
	}{
		{"plain string", `"64f0c1"`, "64f0c1"},
		{"object id", `{"$oid":"64f0c1"}`, "64f0c1"},
		{"object without oid", `{"foo":"bar"}`, ""},
		{"number", `12345`, "12345"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got Identity
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIdentity_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Identity("abc"))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"abc"` {
		t.Errorf("Marshal = %s, want \"abc\"", data)
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "source layout with millis",
			input:  "2024/01/01 16:10:30.500",
			want:   time.Date(2024, 1, 1, 7, 10, 30, 500_000_000, time.UTC),
			wantOK: true,
		},
		{
			name:   "source layout without fraction",
			input:  "2024/01/01 16:10:30",
			want:   time.Date(2024, 1, 1, 7, 10, 30, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "rfc3339",
			input:  "2024-01-01T07:10:30Z",
			want:   time.Date(2024, 1, 1, 7, 10, 30, 0, time.UTC),
			wantOK: true,
		},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "yesterday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTimestamp(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseTimestamp(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				if !got.IsZero() {
					t.Errorf("expected zero time on failure, got %v", got)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	input := `{
		"_id": {"$oid": "5f1"},
		"code": 9611,
		"started_at": "2024/01/01 16:10:00.000",
		"updated_at": "2024/01/01 16:10:05.250",
		"confidence": 0.95,
		"area_confidences": {"100": {"confidence": 0.5}, "200": {}}
	}`

	var r Record
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if r.Identity() != "5f1" {
		t.Errorf("Identity = %q, want 5f1", r.Identity())
	}
	if r.Code != CodeUserquake {
		t.Errorf("Code = %d, want %d", r.Code, CodeUserquake)
	}
	if got := r.ObservedAt.Sub(r.FirstSeenAt.Time); got != 5250*time.Millisecond {
		t.Errorf("ObservedAt - FirstSeenAt = %v, want 5.25s", got)
	}
	if !r.ConfidenceAbove(0.9) {
		t.Error("expected ConfidenceAbove(0.9)")
	}
	if c := r.AreaConfidences["100"].Confidence; c == nil || *c != 0.5 {
		t.Errorf("area 100 confidence = %v, want 0.5", c)
	}
	if c := r.AreaConfidences["200"].Confidence; c != nil {
		t.Errorf("area 200 confidence = %v, want nil", *c)
	}
}

func TestRecord_MalformedTimestampsDegrade(t *testing.T) {
	t.Parallel()

	var r Record
	input := `{"_id":"x","updated_at":"not a time","started_at":null}`
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !r.ObservedAt.IsZero() || !r.FirstSeenAt.IsZero() {
		t.Errorf("expected zero timestamps, got %v / %v", r.ObservedAt, r.FirstSeenAt)
	}
	if r.ConfidenceAbove(0) {
		t.Error("missing confidence must not be above any threshold")
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	t.Parallel()

	ts := MustTimestamp("2024/01/01 16:10:30.5")
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"2024/01/01 16:10:30.500"` {
		t.Errorf("Marshal = %s", data)
	}

	data, err = json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("Marshal zero error: %v", err)
	}
	if string(data) != `""` {
		t.Errorf("Marshal zero = %s, want \"\"", data)
	}
}
