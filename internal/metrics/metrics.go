// Package metrics exposes Prometheus metrics for the HTTP host.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create as many as they like.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	generationsTotal *prometheus.CounterVec
	generationErrors *prometheus.CounterVec
	entropyBits      prometheus.Histogram

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates and registers all metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordpass_generations_total",
				Help: "Total number of passphrases generated by strength rating",
			},
			[]string{"strength"},
		),

		generationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordpass_generation_errors_total",
				Help: "Total number of failed generation requests by reason",
			},
			[]string{"reason"},
		),

		entropyBits: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wordpass_entropy_bits",
				Help:    "Estimated entropy of generated passphrases in bits",
				Buckets: []float64{30, 40, 45, 60, 80, 100, 128},
			},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordpass_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordpass_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.generationsTotal,
		m.generationErrors,
		m.entropyBits,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordGeneration counts one generated passphrase.
func (m *Metrics) RecordGeneration(strength string, bits float64) {
	if m == nil {
		return
	}
	m.generationsTotal.WithLabelValues(strength).Inc()
	m.entropyBits.Observe(bits)
}

// RecordGenerationError counts a failed generation request.
func (m *Metrics) RecordGenerationError(reason string) {
	if m == nil {
		return
	}
	m.generationErrors.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
