// Package metrics provides Prometheus instrumentation for the shortening service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LatencyBuckets are the request latency histogram buckets, in seconds.
var LatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1, 2, 5}

// Recorder defines a set of methods for types recording service events.
type Recorder interface {
	IncCreated()
	IncRedirect()
	IncNotFound()
	ObserveLatency(d time.Duration)
}

// Check interface implementation explicitly
var (
	_ Recorder = (*Collector)(nil)
)

// Collector owns a dedicated registry holding the service counters and histogram.
// One Collector is created at start-up and shared by every handler.
type Collector struct {
	registry  *prometheus.Registry
	created   prometheus.Counter
	redirects prometheus.Counter
	notFound  prometheus.Counter
	latency   prometheus.Histogram
}

// NewCollector creates and registers the service metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "url_shortener_created_total",
			Help: "Number of URLs shortened",
		}),
		redirects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "url_shortener_redirect_total",
			Help: "Number of successful redirects",
		}),
		notFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "url_shortener_not_found_total",
			Help: "Number of failed lookups (404)",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "url_shortener_request_latency_seconds",
			Help:    "Request latency in seconds",
			Buckets: LatencyBuckets,
		}),
	}
	c.registry.MustRegister(c.created, c.redirects, c.notFound, c.latency)
	return c
}

// IncCreated counts a shortened URL.
func (c *Collector) IncCreated() {
	c.created.Inc()
}

// IncRedirect counts a successful redirect.
func (c *Collector) IncRedirect() {
	c.redirects.Inc()
}

// IncNotFound counts a failed lookup.
func (c *Collector) IncNotFound() {
	c.notFound.Inc()
}

// ObserveLatency records d in the latency histogram.
func (c *Collector) ObserveLatency(d time.Duration) {
	c.latency.Observe(d.Seconds())
}

// Handler renders the registry in the Prometheus text exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}
