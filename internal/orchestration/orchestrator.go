package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/bench"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/logging"
	"github.com/agbru/armcalc/internal/metrics"
	"github.com/agbru/armcalc/internal/progress"
)

// ProgressBufferSize is the capacity of the progress channel. Updates that
// do not fit are dropped rather than delaying the measurements.
const ProgressBufferSize = 32

// Orchestrator runs evaluations. It is safe for concurrent use as long as
// the injected harness and logger are.
type Orchestrator struct {
	harness   *bench.Harness
	factory   armstrong.VariantFactory
	iterative armstrong.Variant
	recursive armstrong.Variant
	logger    logging.Logger
	verify    bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithHarness sets the benchmark harness (defaults to the wall clock).
func WithHarness(h *bench.Harness) Option {
	return func(o *Orchestrator) { o.harness = h }
}

// WithFactory sets the variant registry (defaults to the global factory).
func WithFactory(f armstrong.VariantFactory) Option {
	return func(o *Orchestrator) { o.factory = f }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithVerification enables the cross-check of both checkers against the
// exact oracle after every evaluation.
func WithVerification(enabled bool) Option {
	return func(o *Orchestrator) { o.verify = enabled }
}

// New builds an Orchestrator.
func New(opts ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		harness: bench.New(),
		factory: armstrong.GlobalFactory(),
		logger:  logging.NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	iterative, recursive, err := ResolveVariants(o.factory)
	if err != nil {
		return nil, err
	}
	o.iterative, o.recursive = iterative, recursive
	return o, nil
}

// Evaluate validates req, times both variants and builds the result record.
func (o *Orchestrator) Evaluate(ctx context.Context, req Request) (EvaluationResult, error) {
	return o.evaluate(ctx, req, nil)
}

func (o *Orchestrator) evaluate(ctx context.Context, req Request, tracker *progress.Tracker) (result EvaluationResult, err error) {
	ctx, span := otel.Tracer("orchestration").Start(ctx, "Evaluate")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if err := req.Validate(); err != nil {
		metrics.ObserveInvalidInput()
		return EvaluationResult{}, err
	}

	n := req.Candidate
	digits := armstrong.DigitCount(n)

	iterAvg, err := o.harness.MeasureBool(ctx, o.iterative.Checker(n, digits), req.Repeat)
	if err != nil {
		metrics.ObserveFailure()
		return EvaluationResult{}, apperrors.EvaluationError{Stage: "iterative timing", Cause: err}
	}
	tracker.Done(o.iterative.Name())

	recAvg, err := o.harness.MeasureBool(ctx, o.recursive.Checker(n, digits), req.Repeat)
	if err != nil {
		metrics.ObserveFailure()
		return EvaluationResult{}, apperrors.EvaluationError{Stage: "recursive timing", Cause: err}
	}
	tracker.Done(o.recursive.Name())

	// The verdict is computed once more, outside the timed closures.
	isArmstrong := armstrong.IsArmstrongIterative(n)

	result = EvaluationResult{
		Candidate:        n,
		DigitCount:       digits,
		Repeat:           req.Repeat,
		IterativeAverage: iterAvg,
		RecursiveAverage: recAvg,
		IsArmstrong:      isArmstrong,
		Winner:           Winner(iterAvg, recAvg),
	}

	if o.verify {
		v := map[string]bool{
			o.iterative.Name(): o.iterative.Checker(n, digits)(),
			o.recursive.Name(): o.recursive.Checker(n, digits)(),
			"exact":            armstrong.IsArmstrongExact(n),
		}
		if !armstrong.Agree(v) {
			metrics.ObserveFailure()
			return result, apperrors.MismatchError{Candidate: n, Verdicts: v}
		}
	}

	metrics.ObserveEvaluation(isArmstrong, map[string]time.Duration{
		o.iterative.Name(): iterAvg.Duration(),
		o.recursive.Name(): recAvg.Duration(),
	}, result.Winner)
	span.SetAttributes(
		attribute.Int("digits", digits),
		attribute.Int("repeat", req.Repeat),
		attribute.Bool("armstrong", isArmstrong),
		attribute.String("winner", result.Winner),
	)
	o.logger.Debug("evaluation completed",
		logging.Uint64("candidate", n),
		logging.Int("digits", digits),
		logging.Int("repeat", req.Repeat),
		logging.Float64("iterative_ns", float64(iterAvg)),
		logging.Float64("recursive_ns", float64(recAvg)),
		logging.Bool("armstrong", isArmstrong),
		logging.String("winner", result.Winner),
	)
	return result, nil
}

// RunReferenceBatch times both variants on every reference entry, in
// order. The digit count used for timing is derived from each value.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - entries: The reference table.
//   - repeat: The number of timed runs per variant and entry.
//
// Returns:
//   - []ReferenceTiming: One timing pair per entry.
//   - error: A ValidationError for a non-positive repeat, or the context error.
func (o *Orchestrator) RunReferenceBatch(ctx context.Context, entries []armstrong.ReferenceEntry, repeat int) ([]ReferenceTiming, error) {
	return o.runReferenceBatch(ctx, entries, repeat, nil)
}

func (o *Orchestrator) runReferenceBatch(ctx context.Context, entries []armstrong.ReferenceEntry, repeat int, tracker *progress.Tracker) ([]ReferenceTiming, error) {
	ctx, span := otel.Tracer("orchestration").Start(ctx, "ReferenceBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("entries", len(entries)), attribute.Int("repeat", repeat))

	if repeat <= 0 {
		return nil, apperrors.NewInvalidInput("repeat")
	}

	start := time.Now()
	timings := make([]ReferenceTiming, 0, len(entries))
	for _, e := range entries {
		digits := e.Digits()
		iterAvg, err := o.harness.MeasureBool(ctx, o.iterative.Checker(e.Value, digits), repeat)
		if err != nil {
			return timings, apperrors.EvaluationError{Stage: "reference batch", Cause: err}
		}
		tracker.Done(fmt.Sprintf("reference %d %s", e.Value, o.iterative.Name()))

		recAvg, err := o.harness.MeasureBool(ctx, o.recursive.Checker(e.Value, digits), repeat)
		if err != nil {
			return timings, apperrors.EvaluationError{Stage: "reference batch", Cause: err}
		}
		tracker.Done(fmt.Sprintf("reference %d %s", e.Value, o.recursive.Name()))

		timings = append(timings, ReferenceTiming{
			Label:            e.Label,
			Value:            e.Value,
			DigitCount:       digits,
			IterativeAverage: iterAvg,
			RecursiveAverage: recAvg,
			Winner:           Winner(iterAvg, recAvg),
		})
	}
	elapsed := time.Since(start)
	metrics.ObserveReferenceBatch(elapsed)
	o.logger.Debug("reference batch completed",
		logging.Int("entries", len(entries)),
		logging.Int("repeat", repeat),
		logging.Duration("elapsed", elapsed),
	)
	return timings, nil
}

// withProgress runs work while reporter displays its progress updates.
func withProgress(reporter ProgressReporter, out io.Writer, stages int, work func(*progress.Tracker) error) error {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	progressChan := make(chan progress.Update, ProgressBufferSize)
	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, progressChan, out)

	err := work(progress.NewTracker(stages, progress.ChannelCallback(progressChan)))

	close(progressChan)
	wg.Wait()
	return err
}
