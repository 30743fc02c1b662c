// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package models

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// CodeUserquake is the record code of userquake (felt report) estimates.
const CodeUserquake = 9611

// Identity is the stable key of a record.
//
// The upstream store emits it either as a plain string or as an extended JSON
// object id ({"$oid": "..."}); both collapse to the same string.
type Identity string

// String returns the identity as a plain string.
func (i Identity) String() string {
	return string(i)
}

// UnmarshalJSON accepts a string, an {"$oid": "..."} object, or a number.
// Anything else (including null) yields an empty identity.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode identity: %w", err)
	}

	switch v := raw.(type) {
	case string:
		*i = Identity(v)
	case map[string]interface{}:
		if oid, ok := v["$oid"].(string); ok {
			*i = Identity(oid)
		} else {
			*i = ""
		}
	case float64:
		*i = Identity(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		*i = ""
	}
	return nil
}

// MarshalJSON always emits the collapsed string form.
func (i Identity) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(i))
}

// AreaConfidence is the estimate for one region.
// A nil Confidence means the upstream record carried no value for the region.
type AreaConfidence struct {
	Confidence *float64 `json:"confidence,omitempty"`
}

// Record is one timestamped userquake estimate.
//
// ObservedAt (updated_at) is the canonical time used to place the record on
// the playback axis; FirstSeenAt (started_at) identifies the event and is the
// fallback anchor of the playback window.
type Record struct {
	ID              Identity                  `json:"_id"`
	Code            int                       `json:"code"`
	FirstSeenAt     Timestamp                 `json:"started_at"`
	ObservedAt      Timestamp                 `json:"updated_at"`
	Confidence      *float64                  `json:"confidence,omitempty"`
	AreaConfidences map[string]AreaConfidence `json:"area_confidences,omitempty"`
}

// Identity returns the record identity as a string, empty when unresolvable.
func (r *Record) Identity() string {
	return string(r.ID)
}

// ConfidenceAbove reports whether the overall confidence is present and
// strictly greater than threshold.
func (r *Record) ConfidenceAbove(threshold float64) bool {
	return r.Confidence != nil && *r.Confidence > threshold
}

// Float returns a pointer to v. Handy for building records in code and tests.
func Float(v float64) *float64 {
	return &v
}
