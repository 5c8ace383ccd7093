package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDashboardAggregationsCountsByResult(t *testing.T) {
	before := testutil.ToFloat64(DashboardAggregations.WithLabelValues(ResultFailure))

	DashboardAggregations.WithLabelValues(ResultFailure).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(DashboardAggregations.WithLabelValues(ResultFailure)))
}

func TestAPILatencyObserves(t *testing.T) {
	APILatency.WithLabelValues("GET", "/api/dashboard", "200").Observe(0.01)

	assert.Equal(t, 1, testutil.CollectAndCount(APILatency, "event_dashboard_api_latency_seconds"))
}
