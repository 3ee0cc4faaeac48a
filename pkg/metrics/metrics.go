package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Extraction outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeNoTasks      = "no_tasks"
	OutcomeFailed       = "failed"
	OutcomeInvalidInput = "invalid_input"
)

var (
	ExtractionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_total",
			Help: "Transcript extractions by outcome",
		},
		[]string{"outcome"},
	)

	ExtractionDroppedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_dropped_records_total",
			Help: "Model records discarded by per-record validation",
		},
	)

	ExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extraction_duration_seconds",
			Help:    "Wall time of a transcript extraction including the model call",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10), // 250ms to ~2m
		},
	)

	TasksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasks_created_total",
			Help: "Tasks persisted, by source",
		},
		[]string{"source"}, // bulk, draft
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	SlowQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_slow_queries_total",
			Help: "Queries slower than the configured threshold",
		},
		[]string{"driver"},
	)

	SlowQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_slow_query_duration_seconds",
			Help:    "Duration of slow queries",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
		},
		[]string{"driver"},
	)
)

func RecordExtraction(outcome string, dropped int, duration time.Duration) {
	ExtractionTotal.WithLabelValues(outcome).Inc()
	if dropped > 0 {
		ExtractionDroppedRecords.Add(float64(dropped))
	}
	ExtractionDuration.Observe(duration.Seconds())
}

func IncrementTasksCreated(source string, n int) {
	if n > 0 {
		TasksCreated.WithLabelValues(source).Add(float64(n))
	}
}

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementSlowQuery(driver string, duration time.Duration) {
	SlowQueries.WithLabelValues(driver).Inc()
	SlowQueryDuration.WithLabelValues(driver).Observe(duration.Seconds())
}
