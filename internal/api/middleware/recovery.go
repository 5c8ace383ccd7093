package middleware

import (
	"net/http"

	"event-dashboard-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a 500 response and logs the error.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(c).WithFields(map[string]interface{}{
					"path":  c.Request.URL.Path,
					"panic": r,
				}).Error("panic")
				// Avoid leaking internals to clients
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
