package middleware

import (
	"strconv"
	"time"

	"event-dashboard-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency metrics for each HTTP request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		metrics.APILatency.WithLabelValues(c.Request.Method, path, status).Observe(duration)
	}
}
