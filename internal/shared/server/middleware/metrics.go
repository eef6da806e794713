package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"suppai-backend/internal/shared/metrics"
)

// Metrics records request counts and durations. The route template is used as
// the path label so unmatched requests cannot blow up cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
