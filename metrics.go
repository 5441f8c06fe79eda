package rapporthttp

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle over
// the socket. All recording methods are safe on a nil receiver, so metrics
// stay strictly opt-in. Safe for concurrent use.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	sendsTotal *prometheus.CounterVec

	errorsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	mc := &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rapport_http_requests_total",
				Help: "Total number of reply-expecting requests dispatched",
			},
			[]string{"method", "status", "endpoint"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rapport_http_request_duration_seconds",
				Help:    "Duration from dispatch to translated reply in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status", "endpoint"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rapport_http_requests_in_flight",
				Help: "Number of requests currently awaiting a reply",
			},
			[]string{"method", "endpoint"},
		),
		sendsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rapport_http_sends_total",
				Help: "Total number of fire-and-forget envelopes handed to the socket",
			},
			[]string{"method", "endpoint"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rapport_http_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type", "method", "endpoint"},
		),
	}

	if reg, ok := registry.(*prometheus.Registry); ok {
		mc.registry = reg
	}

	return mc
}

// RecordRequest records request count and duration.
func (mc *MetricsCollector) RecordRequest(method, endpoint string, status int, duration time.Duration) {
	if mc == nil {
		return
	}

	statusStr := strconv.Itoa(status)
	mc.requestsTotal.WithLabelValues(method, statusStr, endpoint).Inc()
	mc.requestDuration.WithLabelValues(method, statusStr, endpoint).Observe(duration.Seconds())
}

// RecordRequestStart increments the in-flight gauge.
func (mc *MetricsCollector) RecordRequestStart(method, endpoint string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(method, endpoint).Inc()
}

// RecordRequestEnd decrements the in-flight gauge.
func (mc *MetricsCollector) RecordRequestEnd(method, endpoint string) {
	if mc == nil {
		return
	}

	mc.requestsInFlight.WithLabelValues(method, endpoint).Dec()
}

// RecordSend increments the fire-and-forget dispatch counter.
func (mc *MetricsCollector) RecordSend(method, endpoint string) {
	if mc == nil {
		return
	}

	mc.sendsTotal.WithLabelValues(method, endpoint).Inc()
}

// RecordError increments the error counter by type.
func (mc *MetricsCollector) RecordError(errorType, method, endpoint string) {
	if mc == nil {
		return
	}

	mc.errorsTotal.WithLabelValues(errorType, method, endpoint).Inc()
}

// GetRegistry exposes the underlying prometheus registry, when the collector
// was built on one.
func (mc *MetricsCollector) GetRegistry() *prometheus.Registry {
	return mc.registry
}
