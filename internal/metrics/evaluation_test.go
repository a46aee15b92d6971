package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// These tests share process-wide collectors, so they compare deltas and do
// not run in parallel.

func TestObserveEvaluation(t *testing.T) {
	armstrong := evaluationsTotal.WithLabelValues(OutcomeArmstrong)
	winner := winnerTotal.WithLabelValues("recursive")
	beforeOutcome := testutil.ToFloat64(armstrong)
	beforeWinner := testutil.ToFloat64(winner)

	ObserveEvaluation(true, map[string]time.Duration{
		"iterative": 2 * time.Microsecond,
		"recursive": time.Microsecond,
	}, "recursive")

	if got := testutil.ToFloat64(armstrong) - beforeOutcome; got != 1 {
		t.Errorf("armstrong outcome delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(winner) - beforeWinner; got != 1 {
		t.Errorf("recursive winner delta = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(meanDuration); n < 2 {
		t.Errorf("mean duration histogram has %d series, want at least 2", n)
	}
}

func TestObserveInvalidAndFailure(t *testing.T) {
	invalid := evaluationsTotal.WithLabelValues(OutcomeInvalid)
	failed := evaluationsTotal.WithLabelValues(OutcomeError)
	beforeInvalid, beforeFailed := testutil.ToFloat64(invalid), testutil.ToFloat64(failed)

	ObserveInvalidInput()
	ObserveFailure()
	ObserveFailure()

	if got := testutil.ToFloat64(invalid) - beforeInvalid; got != 1 {
		t.Errorf("invalid delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(failed) - beforeFailed; got != 2 {
		t.Errorf("error delta = %v, want 2", got)
	}
}

func TestObserveReferenceBatch(t *testing.T) {
	ObserveReferenceBatch(3 * time.Millisecond)
	if n := testutil.CollectAndCount(referenceBatchDuration); n != 1 {
		t.Errorf("reference batch histogram series = %d, want 1", n)
	}
}
