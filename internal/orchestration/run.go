package orchestration

import (
	"context"
	"io"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/metrics"
	"github.com/agbru/armcalc/internal/progress"
)

// RunOptions configures Run.
type RunOptions struct {
	// Reference is the table timed after the candidate. Empty skips the
	// batch.
	Reference []armstrong.ReferenceEntry
	// Reporter displays progress; nil means NullProgressReporter.
	Reporter ProgressReporter
}

// RunOutcome is everything a Run produced.
type RunOutcome struct {
	Result    EvaluationResult
	Reference []ReferenceTiming
}

// Run performs one complete run for a front end: validation, evaluation,
// history update, presentation of the four per-run outputs, then the
// reference batch and its trend.
//
// Invalid input is reported through presenter.PresentInvalidInput only, and
// the session is left untouched. Any other failure is returned without
// presenting partial results, except that a failed reference batch keeps
// the already recorded run.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - session: The history the run is appended to.
//   - req: The user request.
//   - presenter: The result presenter.
//   - opts: Reference table and progress reporter.
//   - out: The writer handed to the presenter and the reporter.
//
// Returns:
//   - RunOutcome: The run record and the reference timings.
//   - error: The validation, timing, mismatch or cancellation error.
func (o *Orchestrator) Run(ctx context.Context, session *Session, req Request, presenter ResultPresenter, opts RunOptions, out io.Writer) (RunOutcome, error) {
	if err := req.Validate(); err != nil {
		metrics.ObserveInvalidInput()
		presenter.PresentInvalidInput(err, out)
		return RunOutcome{}, err
	}

	var outcome RunOutcome
	err := withProgress(opts.Reporter, out, 2, func(tracker *progress.Tracker) error {
		var err error
		outcome.Result, err = o.evaluate(ctx, req, tracker)
		return err
	})
	if err != nil {
		return outcome, err
	}

	session.Append(outcome.Result)
	presenter.PresentStatus(outcome.Result, out)
	presenter.PresentComparison(outcome.Result, out)
	presenter.PresentHistory(session.History(), out)
	presenter.PresentTableRow(outcome.Result, out)

	if len(opts.Reference) == 0 {
		return outcome, nil
	}

	err = withProgress(opts.Reporter, out, 2*len(opts.Reference), func(tracker *progress.Tracker) error {
		var err error
		outcome.Reference, err = o.runReferenceBatch(ctx, opts.Reference, req.Repeat, tracker)
		return err
	})
	if err != nil {
		return outcome, err
	}
	presenter.PresentReferenceTrend(outcome.Reference, out)
	return outcome, nil
}
