package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"energy-advisor/internal/logging"
)

// Logger logs one line per request with method, path, status and latency.
func Logger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
