// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the interface the delivery and usecase layers record
// through.
type MetricsCollector interface {
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)
	RecordListingAction(action, kind, outcome string)
}

// Collector implements MetricsCollector on a Prometheus registry.
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpLatency    prometheus.Histogram
	listingActions *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on the given
// registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "herenow_http_requests_total",
			Help: "HTTP requests by method, path and status code",
		}, []string{"method", "path", "status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "herenow_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		listingActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "herenow_listing_actions_total",
			Help: "Listing mutations by action, kind and outcome",
		}, []string{"action", "kind", "outcome"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.listingActions,
	)

	return c
}

// RecordHTTPRequest records one served HTTP request.
func (c *Collector) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

// RecordListingAction records the outcome of a listing mutation.
func (c *Collector) RecordListingAction(action, kind, outcome string) {
	c.listingActions.WithLabelValues(action, kind, outcome).Inc()
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
