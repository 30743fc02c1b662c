// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry via promauto and exposed
by the API server at /metrics:

	curl http://localhost:8611/metrics

# Available Metrics

Record Source:
  - source_fetch_duration_seconds (histogram), labels: source
  - source_fetch_errors_total (counter), labels: source, error_type
  - source_records_fetched_total (counter), labels: source

Record Repository:
  - store_operation_duration_seconds (histogram), labels: operation
  - store_operation_errors_total (counter), labels: operation, error_type

Assets:
  - asset_preload_duration_seconds (histogram)
  - asset_loads_total (counter), labels: result
  - asset_lookups_total (counter), labels: outcome (hit, fallback, missing)

Playback:
  - playback_ticks_total (counter)
  - playback_state_transitions_total (counter), labels: from_state, to_state
  - timelines_active (gauge)

API:
  - api_requests_total (counter), labels: method, endpoint, status_code
  - api_request_duration_seconds (histogram), labels: method, endpoint
  - api_active_requests (gauge)

WebSocket:
  - websocket_connections (gauge)
  - websocket_messages_sent_total (counter)
  - websocket_errors_total (counter), labels: error_type

Circuit Breaker:
  - circuit_breaker_state (gauge), labels: name. 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total (counter), labels: name, result
  - circuit_breaker_consecutive_failures (gauge), labels: name
  - circuit_breaker_state_transitions_total (counter), labels: name, from_state, to_state

# Error Labels

Error label values are bounded. Errors implementing ErrorTyper choose their own
label; everything else is classified into timeout, circuit_open, not_found,
decode or other.
*/
package metrics
