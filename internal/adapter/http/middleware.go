package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gdevgproject/perfume-shop/internal/adapter/logger"
)

// LoggingMiddleware logs every request and its duration under one request id.
func LoggingMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := fmt.Sprintf("req-%d", start.UnixNano())
		c.Set("request_id", requestID)

		log.Debug("http_request", fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), requestID, map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})

		c.Next()

		log.Debug("http_response", "Request completed", requestID, map[string]interface{}{
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

// RecoveryMiddleware converts panics into a 500 instead of dropping the
// connection.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Get("request_id")
				id, _ := requestID.(string)
				log.Error("panic_recovered", "Panic recovered", id, nil, fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
