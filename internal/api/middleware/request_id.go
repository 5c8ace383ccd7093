package middleware

import (
	"event-dashboard-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's X-Request-ID when present.
// The id is stored on the gin context and on the request context for loggers downstream.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(logger.RequestIDKey, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
