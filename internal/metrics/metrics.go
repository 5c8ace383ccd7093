package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dashboard aggregation results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "event_dashboard_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// DashboardAggregations counts dashboard snapshots by result (success|failure).
	DashboardAggregations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_dashboard_aggregations_total",
			Help: "Total number of dashboard statistics aggregations",
		},
		[]string{"result"},
	)
)
