package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APICallMetrics records latency and outcome counts per remote operation.
type APICallMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewAPICallMetrics registers the client call metrics on the provided registerer.
func NewAPICallMetrics(reg prometheus.Registerer) *APICallMetrics {
	if reg == nil {
		return &APICallMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cardano_api_request_duration_seconds",
		Help:    "Duration of cardano-wallet API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cardano_api_request_success",
		Help: "Successful cardano-wallet API calls.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cardano_api_request_failure",
		Help: "Failed cardano-wallet API calls.",
	}, []string{"operation"})
	reg.MustRegister(duration, success, failure)
	return &APICallMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named operation.
func (m *APICallMetrics) ObserveDuration(operation string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (m *APICallMetrics) IncSuccess(operation string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncFailure increments the failure counter for the named operation.
func (m *APICallMetrics) IncFailure(operation string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
