// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

/*
Package middleware provides the HTTP middleware shared by the API routes.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauges
  - Compression: gzip for JSON responses

All three are chi-compatible (func(http.Handler) http.Handler):

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.With(middleware.Compression).Get("/api/timeseries/{id}", h.Timeseries)

PrometheusMetrics labels requests with the chi route pattern
("/api/v1/timelines/{sid}") rather than the raw path, so timeline ids do not
create new series.

Compression leaves websocket upgrades and HEAD requests alone.

See Also:

  - internal/api: handlers wrapped by this middleware
  - internal/metrics: collector definitions
*/
package middleware
