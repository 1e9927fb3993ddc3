// Package metrics exposes checkout counters on a dedicated Prometheus registry.
package metrics

import (
	"net/http"

	"checkout/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "checkout"

type Registry struct {
	reg *prometheus.Registry

	Submissions          *prometheus.CounterVec
	Resolutions          *prometheus.CounterVec
	StockMirrorFailures  prometheus.Counter
	EventPublishFailures prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Completed submissions by outcome.",
	}, []string{"outcome"})
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_resolutions_total",
		Help:      "Customer lookups by resulting state.",
	}, []string{"state"})
	stockFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_mirror_failures_total",
		Help:      "Stock mirror updates that could not be applied.",
	})
	publishFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_publish_failures_total",
		Help:      "Sale events that could not be published.",
	})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	r.MustRegister(
		submissions, resolutions, stockFailures, publishFailures, requests, latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg:                  r,
		Submissions:          submissions,
		Resolutions:          resolutions,
		StockMirrorFailures:  stockFailures,
		EventPublishFailures: publishFailures,
		HTTPRequests:         requests,
		HTTPLatency:          latency,
	}
}

// MustRegister adds extra collectors, such as database pool stats.
func (r *Registry) MustRegister(cs ...prometheus.Collector) { r.reg.MustRegister(cs...) }

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// checkoutMetrics adapts the registry to service.CheckoutMetrics.
type checkoutMetrics struct {
	reg *Registry
}

func NewCheckoutMetrics(reg *Registry) service.CheckoutMetrics {
	return &checkoutMetrics{reg: reg}
}

func (m *checkoutMetrics) SubmissionCompleted(outcome string) {
	m.reg.Submissions.WithLabelValues(outcome).Inc()
}

func (m *checkoutMetrics) ResolutionCompleted(state string) {
	m.reg.Resolutions.WithLabelValues(state).Inc()
}

func (m *checkoutMetrics) StockMirrorFailed() { m.reg.StockMirrorFailures.Inc() }

func (m *checkoutMetrics) EventPublishFailed() { m.reg.EventPublishFailures.Inc() }
