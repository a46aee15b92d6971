package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of armcalc_evaluations_total.
const (
	OutcomeArmstrong    = "armstrong"
	OutcomeNotArmstrong = "not_armstrong"
	OutcomeInvalid      = "invalid"
	OutcomeError        = "error"
)

var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "armcalc_evaluations_total",
			Help: "The total number of candidate evaluations, by outcome",
		},
		[]string{"outcome"},
	)
	meanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "armcalc_mean_duration_seconds",
			Help:    "Mean execution time of one checker run, by variant",
			Buckets: prometheus.ExponentialBuckets(1e-8, 4, 12),
		},
		[]string{"variant"},
	)
	winnerTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "armcalc_winner_total",
			Help: "How often each variant was reported as the faster one",
		},
		[]string{"variant"},
	)
	referenceBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "armcalc_reference_batch_duration_seconds",
		Help: "Wall time of a full reference batch",
	})
)

// ObserveEvaluation records a completed evaluation.
func ObserveEvaluation(armstrong bool, means map[string]time.Duration, winner string) {
	outcome := OutcomeNotArmstrong
	if armstrong {
		outcome = OutcomeArmstrong
	}
	evaluationsTotal.WithLabelValues(outcome).Inc()
	for variant, d := range means {
		meanDuration.WithLabelValues(variant).Observe(d.Seconds())
	}
	winnerTotal.WithLabelValues(winner).Inc()
}

// ObserveInvalidInput records an evaluation rejected by validation.
func ObserveInvalidInput() {
	evaluationsTotal.WithLabelValues(OutcomeInvalid).Inc()
}

// ObserveFailure records an evaluation that failed after validation
// (timeout, cancellation).
func ObserveFailure() {
	evaluationsTotal.WithLabelValues(OutcomeError).Inc()
}

// ObserveReferenceBatch records the wall time of a reference batch.
func ObserveReferenceBatch(elapsed time.Duration) {
	referenceBatchDuration.Observe(elapsed.Seconds())
}
