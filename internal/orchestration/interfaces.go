package orchestration

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"io"
	"sync"

	"github.com/agbru/armcalc/internal/progress"
)

// ProgressReporter displays the progress of a run. DisplayProgress is
// started in its own goroutine and must return, calling wg.Done, once the
// channel is closed.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, out io.Writer) {
	f(wg, progressChan, out)
}

// NullProgressReporter drains the progress channel without output.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter renders the outputs of a run. The orchestrator calls the
// methods in order: status, comparison, history, table row and, when a
// reference batch ran, the reference trend. On invalid input only
// PresentInvalidInput is called.
type ResultPresenter interface {
	// PresentStatus shows whether the candidate is an Armstrong number.
	PresentStatus(result EvaluationResult, out io.Writer)
	// PresentComparison shows the two mean times side by side.
	PresentComparison(result EvaluationResult, out io.Writer)
	// PresentHistory shows the mean times of every run so far.
	PresentHistory(history []EvaluationResult, out io.Writer)
	// PresentTableRow appends the run to the results table.
	PresentTableRow(result EvaluationResult, out io.Writer)
	// PresentReferenceTrend shows the reference batch timings.
	PresentReferenceTrend(timings []ReferenceTiming, out io.Writer)
	// PresentInvalidInput reports a rejected request.
	PresentInvalidInput(err error, out io.Writer)
}

// ErrorHandler maps a run failure to an exit code.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
