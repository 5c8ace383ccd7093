package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/metrics"
	"event-dashboard-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Setup("debug", &buf)
	t.Cleanup(func() { logger.Setup("info", nil) })
	return &buf
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(raw) == 0 {
			continue
		}
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}
	return lines
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(RequestID())

	var fromGin, fromRequest string
	h.Router.GET("/ping", func(c *gin.Context) {
		fromGin = c.GetString(logger.RequestIDKey)
		fromRequest = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := h.Get("/ping", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, fromGin)
	assert.Equal(t, id, fromRequest)
}

func TestRequestIDKeepsCallerID(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(RequestID())
	h.Router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := h.Get("/ping", map[string]string{RequestIDHeader: "req-42"})

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestLoggerWritesAccessLog(t *testing.T) {
	buf := captureLogs(t)

	h := testutils.SetupHTTPTest()
	h.Router.Use(RequestID(), Logger())
	h.Router.GET("/api/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })
	h.Router.GET("/api/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	h.Get("/api/dashboard", map[string]string{RequestIDHeader: "abc"})
	h.Get("/api/broken", nil)

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "request", lines[0]["msg"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "GET", lines[0]["method"])
	assert.Equal(t, "/api/dashboard", lines[0]["path"])
	assert.Equal(t, float64(http.StatusOK), lines[0]["status"])
	assert.Equal(t, "abc", lines[0][logger.RequestIDKey])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "/api/broken", lines[1]["path"])
}

func TestRecoveryMiddleware(t *testing.T) {
	buf := captureLogs(t)

	h := testutils.SetupHTTPTest()
	h.Router.Use(Recovery())
	h.Router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := h.Get("/panic", nil)

	testutils.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.Contains(t, buf.String(), "boom")
}

func TestCORSMiddleware(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(CORS([]string{"http://localhost:3000"}))
	h.Router.GET("/api/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	t.Run("preflight", func(t *testing.T) {
		rec := testutils.Serve(h.Router, http.MethodOptions, "/api/dashboard", map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": http.MethodGet,
		})
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})

	t.Run("allowed origin", func(t *testing.T) {
		rec := h.Get("/api/dashboard", map[string]string{"Origin": "http://localhost:3000"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		rec := h.Get("/api/dashboard", map[string]string{"Origin": "https://evil.example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMetricsMiddleware(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(Metrics())
	h.Router.GET("/probe/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.CollectAndCount(metrics.APILatency)

	h.Get("/probe/67b7102b9a01ff3f0a3c85e1", nil)
	h.Get("/probe/67b714b79a01ff3f0a3c85ee", nil)

	// labelled by route template, so both requests share one series
	assert.Equal(t, before+1, testutil.CollectAndCount(metrics.APILatency))
}
