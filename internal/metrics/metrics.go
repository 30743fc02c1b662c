// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package metrics

import (
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Record source fetches (remote HTTP or local badger repository)
// - Record repository operations
// - Asset preloading and lookups
// - Playback scheduling
// - API endpoint latency and throughput
// - WebSocket frame push

var (
	// Record Source Metrics
	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_fetch_duration_seconds",
			Help:    "Duration of record fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	SourceFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetch_errors_total",
			Help: "Total number of failed record fetches",
		},
		[]string{"source", "error_type"},
	)

	SourceRecordsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_records_fetched_total",
			Help: "Total number of records returned by fetches",
		},
		[]string{"source"},
	)

	// Record Repository Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of record repository operations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Total number of record repository errors",
		},
		[]string{"operation", "error_type"},
	)

	// Asset Metrics
	AssetPreloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "asset_preload_duration_seconds",
			Help:    "Time until every asset request of a preload pass settled",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	AssetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_loads_total",
			Help: "Total number of asset load attempts by result",
		},
		[]string{"result"}, // "success", "failure"
	)

	AssetLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_lookups_total",
			Help: "Total number of asset lookups by outcome",
		},
		[]string{"outcome"}, // "hit", "fallback", "missing"
	)

	// Playback Metrics
	PlaybackTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playback_ticks_total",
			Help: "Total number of processed playback ticks",
		},
	)

	PlaybackTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playback_state_transitions_total",
			Help: "Total number of playback state transitions",
		},
		[]string{"from_state", "to_state"},
	)

	ActiveTimelines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "timelines_active",
			Help: "Current number of open timeline sessions",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordSourceFetch records a record fetch.
func RecordSourceFetch(source string, duration time.Duration, records int, err error) {
	SourceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		SourceFetchErrors.WithLabelValues(source, errorType(err)).Inc()
		return
	}
	SourceRecordsFetched.WithLabelValues(source).Add(float64(records))
}

// RecordStoreOperation records a repository operation.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation, errorType(err)).Inc()
	}
}

// RecordAssetLoad records a single asset load attempt.
func RecordAssetLoad(err error) {
	if err != nil {
		AssetLoads.WithLabelValues("failure").Inc()
		return
	}
	AssetLoads.WithLabelValues("success").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// ErrorTyper lets errors pick their own low-cardinality metric label.
type ErrorTyper interface {
	ErrorType() string
}

// errorType maps an error to a bounded label value.
// Raw error strings are never used as labels.
func errorType(err error) string {
	var et ErrorTyper
	if errors.As(err, &et) {
		return et.ErrorType()
	}
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "context deadline exceeded"), strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "circuit breaker"):
		return "circuit_open"
	case strings.Contains(msg, "not found"):
		return "not_found"
	case strings.Contains(msg, "decode"):
		return "decode"
	default:
		return "other"
	}
}
