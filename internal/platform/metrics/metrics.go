package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration is request latency in seconds per route template.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pfa_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// StoreQueryDuration is the latency of store queries in seconds.
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pfa_store_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	// AssignmentOutcomes counts per-id results of assignment batches.
	AssignmentOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pfa_assignment_outcomes_total",
			Help: "Per-id outcomes of assignment batches",
		},
		[]string{"kind", "outcome"}, // kind: employee, investor; outcome: created, skipped
	)
)

// RecordHTTPRequestDuration records one HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveQuery records the duration of a store query started at start.
// Intended for use with defer.
func ObserveQuery(operation, table string, start time.Time) {
	StoreQueryDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// IncrementAssignmentOutcome counts one processed id of an assignment batch.
func IncrementAssignmentOutcome(kind, outcome string) {
	AssignmentOutcomes.WithLabelValues(kind, outcome).Inc()
}
