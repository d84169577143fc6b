package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds all Prometheus metric collectors for the application.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP surface metrics.
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Platform API metrics.
	PlatformRequestsTotal   *prometheus.CounterVec
	PlatformRequestDuration *prometheus.HistogramVec

	// Auth metrics.
	AuthFailuresTotal  prometheus.Counter
	AuthSuccessesTotal prometheus.Counter

	// Server lifecycle.
	ServerStartTime prometheus.Gauge
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorloop_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path_pattern", "status_code"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mentorloop_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path_pattern"}),

		PlatformRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorloop_platform_requests_total",
			Help: "Total number of platform API calls by operation and outcome.",
		}, []string{"op", "outcome"}),

		PlatformRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mentorloop_platform_request_duration_seconds",
			Help:    "Platform API call duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		AuthFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mentorloop_auth_failures_total",
			Help: "Total number of failed login attempts.",
		}),

		AuthSuccessesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mentorloop_auth_successes_total",
			Help: "Total number of successful logins.",
		}),

		ServerStartTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mentorloop_server_start_time_seconds",
			Help: "Unix timestamp when the server started.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PlatformRequestsTotal,
		m.PlatformRequestDuration,
		m.AuthFailuresTotal,
		m.AuthSuccessesTotal,
		m.ServerStartTime,
	)

	m.ServerStartTime.Set(float64(time.Now().Unix()))

	// Register Go runtime and process collectors.
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// Registry returns the private Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterStoreCollector registers a collector that exposes the in-memory
// collection sizes.
func (m *Metrics) RegisterStoreCollector(statFunc StoreStatFunc) {
	m.registry.MustRegister(NewStoreCollector(statFunc))
}

// IncHTTPRequest increments the HTTP request counter.
func (m *Metrics) IncHTTPRequest(method, pathPattern string, statusCode int) {
	m.HTTPRequestsTotal.WithLabelValues(method, pathPattern, fmt.Sprintf("%d", statusCode)).Inc()
}

// ObserveHTTPDuration records an HTTP request duration.
func (m *Metrics) ObserveHTTPDuration(method, pathPattern string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, pathPattern).Observe(seconds)
}

// IncPlatformRequest increments the platform call counter.
func (m *Metrics) IncPlatformRequest(op, outcome string) {
	m.PlatformRequestsTotal.WithLabelValues(op, outcome).Inc()
}

// ObservePlatformDuration records a platform call duration.
func (m *Metrics) ObservePlatformDuration(op string, seconds float64) {
	m.PlatformRequestDuration.WithLabelValues(op).Observe(seconds)
}

// IncAuthSuccess increments the successful login counter.
func (m *Metrics) IncAuthSuccess() {
	m.AuthSuccessesTotal.Inc()
}

// IncAuthFailure increments the failed login counter.
func (m *Metrics) IncAuthFailure() {
	m.AuthFailuresTotal.Inc()
}
