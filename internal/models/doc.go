// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package models defines data structures shared across Quakescope.

Key Components:

  - Record: one timestamped userquake estimate as stored upstream
  - Identity: record key, tolerant of both string and {"$oid": ...} forms
  - Timestamp: wall-clock time in the upstream "2006/01/02 15:04:05.000" JST layout
  - APIResponse / APIError / Metadata: the JSON envelope of the HTTP API

Decoding is lenient by design of the upstream data: a record with a missing or
malformed timestamp decodes with the zero time, and a record without an
identity decodes with an empty Identity. Consumers treat those as degenerate
input rather than errors.

Usage Example:

	var records []models.Record
	if err := json.Unmarshal(body, &records); err != nil {
	    return err
	}
	for i := range records {
	    if records[i].ConfidenceAbove(0.9) {
	        fmt.Println(records[i].ObservedAt.SourceString())
	    }
	}

Thread Safety:

Models are plain values with no internal synchronization. Records handed to the
playback engine are treated as immutable.
*/
package models
