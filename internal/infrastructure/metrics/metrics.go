package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	// HTTP request counter
	RequestsTotal *prometheus.CounterVec

	// Upstream backend call counter (google, duckduckgo, groq)
	BackendCallsTotal *prometheus.CounterVec

	// Upstream backend latency
	BackendLatency *prometheus.HistogramVec
)

// init creates and registers all metrics with the default registry
func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scout",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	BackendCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scout",
			Subsystem: "api",
			Name:      "backend_calls_total",
			Help:      "Total upstream backend calls",
		},
		[]string{"backend", "status"},
	)

	BackendLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scout",
			Subsystem: "api",
			Name:      "backend_latency_seconds",
			Help:      "Upstream backend response time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"backend"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(BackendCallsTotal)
	prometheus.MustRegister(BackendLatency)
	log.Info().Msg("metrics registered with Prometheus")
}

// RecordRequest records a completed HTTP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordBackendCall records one upstream call and its duration
func RecordBackendCall(backend, status string, durationSec float64) {
	if status == "" {
		status = "unknown"
	}
	BackendCallsTotal.WithLabelValues(backend, status).Inc()
	BackendLatency.WithLabelValues(backend).Observe(durationSec)
}
