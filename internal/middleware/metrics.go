package middleware

import (
	"strconv"
	"time"

	"github.com/brinto-swe/event-management-system/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

func Metrics(m *metrics.Metrics) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
