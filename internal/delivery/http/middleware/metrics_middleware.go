package middleware

import (
	"time"

	"herenow/internal/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records per-request Prometheus metrics.
type MetricsMiddleware struct {
	collector metrics.MetricsCollector
}

// NewMetricsMiddleware creates a new metrics middleware.
func NewMetricsMiddleware(collector metrics.MetricsCollector) *MetricsMiddleware {
	return &MetricsMiddleware{collector: collector}
}

// Handle times the request and records it against the route template so
// parameterized paths share one series.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}
		m.collector.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

		return err
	}
}
