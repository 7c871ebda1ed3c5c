// README: Request logging middleware; structured log line plus Prometheus counters.
package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wayfare/internal/observability"
)

// Logging emits one slog line per request and feeds the HTTP metrics. The
// route template is used as the path label to keep cardinality bounded.
func Logging(service string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		observability.HTTPRequestsTotal.
			WithLabelValues(service, c.Request.Method, path, strconv.Itoa(status)).Inc()
		observability.HTTPRequestDuration.
			WithLabelValues(service, c.Request.Method, path).Observe(elapsed.Seconds())

		logger.Info("http request",
			"service", service,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", elapsed.Milliseconds())
	}
}
