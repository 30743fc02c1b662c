// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package api provides the HTTP surface of the Quakescope server.

Routing uses chi with go-chi/cors and go-chi/httprate; every JSON response
except the raw timeseries endpoint is wrapped in models.APIResponse.

Endpoints:

	GET    /api/timeseries/{id}            ordered records of the event containing id
	GET    /api/v1/records/{id}            one record with A..E bands, codes sorted per band
	GET    /api/v1/timelines               open timelines
	POST   /api/v1/timelines               {"object_id": "...", "speed": 5}
	GET    /api/v1/timelines/{sid}         snapshot (state, position, window, last frame)
	DELETE /api/v1/timelines/{sid}         close the timeline
	POST   /api/v1/timelines/{sid}/play
	POST   /api/v1/timelines/{sid}/pause
	POST   /api/v1/timelines/{sid}/toggle
	POST   /api/v1/timelines/{sid}/seek    {"position": 42}
	POST   /api/v1/timelines/{sid}/speed   {"multiplier": 10}
	GET    /api/v1/timelines/{sid}/ws      websocket stream of rendered frames
	GET    /api/v1/health[/live|/ready]
	GET    /metrics
	GET    /swagger/*                      swagger UI; the spec lives in docs/ (swag)

/api/timeseries/{id} answers with a bare JSON array on success so existing
clients of the record store keep working; failures still use the envelope
with the same messages ("Item not found", "Not a userquake event", ...).

Error codes:

  - VALIDATION_ERROR: malformed body, id or speed (400)
  - NOT_FOUND: unknown record or timeline (404)
  - NOT_USERQUAKE: the record is not a userquake estimate (400)
  - LIMIT_REACHED: too many open timelines (429)
  - SOURCE_UNAVAILABLE: the record source is failing (502/503/504)
  - INTERNAL_ERROR: anything else (500)
*/
package api
