package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the registration service.
type Metrics struct {
	DecisionsTotal     *prometheus.CounterVec
	FieldFailuresTotal *prometheus.CounterVec
	ValidationSeconds  prometheus.Histogram
	UpstreamFailures   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DecisionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regate_registration_decisions_total",
			Help: "Registration validation decisions by outcome (valid, invalid).",
		}, []string{"outcome"}),
		FieldFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "regate_registration_field_failures_total",
			Help: "Field-scoped validation failures by field.",
		}, []string{"field"}),
		ValidationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "regate_registration_validation_seconds",
			Help:    "Wall time of a registration validation pass, store checks included.",
			Buckets: prometheus.DefBuckets,
		}),
		UpstreamFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "regate_registration_upstream_failures_total",
			Help: "Validations aborted because a store or policy dependency failed.",
		}),
	}
}

// ObserveDecision records a completed decision.
func (m *Metrics) ObserveDecision(valid bool, failedFields []string, seconds float64) {
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	m.DecisionsTotal.WithLabelValues(outcome).Inc()
	for _, field := range failedFields {
		m.FieldFailuresTotal.WithLabelValues(field).Inc()
	}
	m.ValidationSeconds.Observe(seconds)
}

// ObserveUpstreamFailure records an aborted validation.
func (m *Metrics) ObserveUpstreamFailure() {
	m.UpstreamFailures.Inc()
}
