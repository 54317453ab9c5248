package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"agent-router/pkg/metrics"
)

// Logger logs one line per request and records its latency.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), elapsed)

		m.l.Info(c.Request.Context(), "internal.middleware.Logger: request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency", elapsed.String(),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		)
	}
}
