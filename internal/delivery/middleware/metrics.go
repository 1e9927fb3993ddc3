package middleware

import (
	"strconv"
	"time"

	"checkout/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	registry *metrics.Registry
}

func NewMetricsMiddleware(registry *metrics.Registry) *MetricsMiddleware {
	return &MetricsMiddleware{registry: registry}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.registry.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
		m.registry.HTTPLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}
