// Package bench implements the benchmark harness used to compare the
// checker variants: run a function a fixed number of times, time every run
// individually and report the arithmetic mean.
package bench

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	apperrors "github.com/agbru/armcalc/internal/errors"
)

// ctxCheckInterval is how many runs MeasureContext performs between two
// context checks.
const ctxCheckInterval = 1024

// sink keeps results of MeasureBool observable so the measured call is not
// optimized away.
var sink atomic.Bool

// Clock returns the current time. It is a field of Harness so tests can
// inject a deterministic clock.
type Clock func() time.Time

// Mean is an arithmetic mean in nanoseconds. It keeps the fractional part
// that integer division of a time.Duration would drop, so two runs whose
// totals differ by less than repeat nanoseconds still compare correctly.
type Mean float64

// MeanOf returns total / runs as a Mean.
func MeanOf(total time.Duration, runs int) Mean {
	if runs <= 0 {
		return 0
	}
	return Mean(float64(total) / float64(runs))
}

// Millis returns the mean in fractional milliseconds, the unit of every
// report.
func (m Mean) Millis() float64 { return float64(m) / float64(time.Millisecond) }

// Duration rounds the mean to the nearest nanosecond.
func (m Mean) Duration() time.Duration { return time.Duration(math.Round(float64(m))) }

// Total returns the time runs executions of this mean add up to.
func (m Mean) Total(runs int) time.Duration {
	return time.Duration(math.Round(float64(m) * float64(runs)))
}

// String formats the rounded mean like a time.Duration.
func (m Mean) String() string { return m.Duration().String() }

// Harness measures mean execution times. A zero Harness uses time.Now.
type Harness struct {
	now Clock
}

// New returns a Harness backed by the wall clock (monotonic reading).
func New() *Harness {
	return &Harness{now: time.Now}
}

// NewWithClock returns a Harness that reads time from now.
func NewWithClock(now Clock) *Harness {
	return &Harness{now: now}
}

func (h *Harness) clock() Clock {
	if h == nil || h.now == nil {
		return time.Now
	}
	return h.now
}

// Measure runs fn sequentially repeat times, timing each run between two
// clock readings, and returns the mean of the elapsed times. There is no
// warm-up and no outlier trimming.
//
// Parameters:
//   - fn: The work to measure.
//   - repeat: The number of runs, must be positive.
//
// Returns:
//   - Mean: total elapsed time divided by repeat, without truncation.
//   - error: A ValidationError when repeat is not positive.
func (h *Harness) Measure(fn func(), repeat int) (Mean, error) {
	return h.MeasureContext(context.Background(), fn, repeat)
}

// MeasureContext is Measure with cancellation. The context is checked
// between runs, outside the timed window, every ctxCheckInterval runs.
func (h *Harness) MeasureContext(ctx context.Context, fn func(), repeat int) (Mean, error) {
	if repeat <= 0 {
		return 0, apperrors.ValidationError{Field: "repeat", Message: "must be a positive integer"}
	}
	now := h.clock()

	var total time.Duration
	for i := 0; i < repeat; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		t0 := now()
		fn()
		total += now().Sub(t0)
	}
	return MeanOf(total, repeat), nil
}

// MeasureBool measures a function that returns a verdict. The verdicts are
// folded into a package-level sink and otherwise discarded.
func (h *Harness) MeasureBool(ctx context.Context, fn func() bool, repeat int) (Mean, error) {
	var keep bool
	mean, err := h.MeasureContext(ctx, func() { keep = keep != fn() }, repeat)
	sink.Store(keep)
	return mean, err
}
