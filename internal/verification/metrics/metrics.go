package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Verification outcomes: "valid" or a parse-failure reason code.
	Outcomes *prometheus.CounterVec

	// Single-ID verification latency, registry lookup included.
	VerifyLatency prometheus.Histogram

	// Number of IDs per batch request.
	BatchSize prometheus.Histogram
}

// New registers all verification metrics with the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers against a specific registerer so tests can use an
// isolated registry instead of fighting over the global one.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idcheck_verifications_total",
			Help: "Total identity-number verifications by outcome",
		}, []string{"outcome"}),

		VerifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idcheck_verify_duration_seconds",
			Help:    "Duration of a single verification including registry lookup",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idcheck_verify_batch_size",
			Help:    "Number of identity numbers per batch verification request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		}),
	}
}

// IncrementOutcome records one verification outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(outcome).Inc()
	}
}

// ObserveVerifyLatency records the duration of a single verification.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
