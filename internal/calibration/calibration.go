// Package calibration picks a repeat count suited to the current machine:
// enough runs that the measured total rises well above timer resolution,
// without making a run needlessly slow. Results can be cached in a
// profile file keyed on the hardware.
package calibration

import (
	"context"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/bench"
	apperrors "github.com/agbru/armcalc/internal/errors"
)

// Step is one timed trial of the calibration.
type Step struct {
	Repeat int           `json:"repeat"`
	Mean   time.Duration `json:"mean_ns"`
	Total  time.Duration `json:"total_ns"`
}

// Result is the outcome of CalibrateRepeat.
type Result struct {
	// Repeat is the chosen repeat count.
	Repeat int
	// Steps lists every trial in order.
	Steps []Step
	// Capped is true when maxRepeat was hit before the target.
	Capped bool
}

// CalibrateRepeat doubles the repeat count, starting at 1, until the total
// measured time of the iterative checker on candidate reaches target. The
// count never exceeds maxRepeat.
func CalibrateRepeat(ctx context.Context, h *bench.Harness, candidate uint64, target time.Duration, maxRepeat int) (Result, error) {
	if candidate == 0 || candidate > armstrong.MaxSafeCandidate {
		return Result{}, apperrors.NewInvalidInput("candidate")
	}
	if target <= 0 || maxRepeat <= 0 {
		return Result{}, apperrors.NewConfigError("calibration needs a positive target and repeat cap")
	}

	check := armstrong.IterativeVariant{}.Checker(candidate, armstrong.DigitCount(candidate))
	var res Result
	for repeat := 1; ; repeat *= 2 {
		if repeat > maxRepeat {
			repeat = maxRepeat
		}
		mean, err := h.MeasureBool(ctx, check, repeat)
		if err != nil {
			return res, err
		}
		step := Step{Repeat: repeat, Mean: mean.Duration(), Total: mean.Total(repeat)}
		res.Steps = append(res.Steps, step)
		res.Repeat = repeat
		if step.Total >= target {
			return res, nil
		}
		if repeat == maxRepeat {
			res.Capped = true
			return res, nil
		}
	}
}
