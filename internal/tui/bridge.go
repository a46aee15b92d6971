package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/progress"
)

// sender is the part of tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// programRef is a shared reference to the tea.Program. bubbletea copies
// the model on every Update, so the bridge needs a pointer that survives
// the copies.
type programRef struct {
	mu      sync.RWMutex
	program sender
}

// SetProgram sets the program reference (thread-safe).
func (r *programRef) SetProgram(p sender) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter forwards progress updates as ProgressMsg.
type TUIProgressReporter struct {
	ref sender
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the channel and sends one ProgressMsg per update.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ io.Writer) {
	defer wg.Done()
	for update := range progressChan {
		t.ref.Send(ProgressMsg{Update: update})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter turns the presentation calls of a run into bubbletea
// messages.
type TUIResultPresenter struct {
	ref sender
}

var (
	_ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler    = (*TUIResultPresenter)(nil)
)

// PresentStatus sends a StatusMsg.
func (t *TUIResultPresenter) PresentStatus(res orchestration.EvaluationResult, _ io.Writer) {
	t.ref.Send(StatusMsg{Result: res})
}

// PresentComparison sends a ComparisonMsg.
func (t *TUIResultPresenter) PresentComparison(res orchestration.EvaluationResult, _ io.Writer) {
	t.ref.Send(ComparisonMsg{Result: res})
}

// PresentHistory sends a copy of the history.
func (t *TUIResultPresenter) PresentHistory(history []orchestration.EvaluationResult, _ io.Writer) {
	t.ref.Send(HistoryMsg{History: append([]orchestration.EvaluationResult(nil), history...)})
}

// PresentTableRow sends a TableRowMsg.
func (t *TUIResultPresenter) PresentTableRow(res orchestration.EvaluationResult, _ io.Writer) {
	t.ref.Send(TableRowMsg{Result: res})
}

// PresentReferenceTrend sends a ReferenceTrendMsg.
func (t *TUIResultPresenter) PresentReferenceTrend(timings []orchestration.ReferenceTiming, _ io.Writer) {
	t.ref.Send(ReferenceTrendMsg{Timings: timings})
}

// PresentInvalidInput sends an InvalidInputMsg.
func (t *TUIResultPresenter) PresentInvalidInput(err error, _ io.Writer) {
	t.ref.Send(InvalidInputMsg{Err: err})
}

// HandleError sends an ErrorMsg and returns the exit code of err.
func (t *TUIResultPresenter) HandleError(err error, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err})
	return apperrors.HandleEvaluationError(err, 0, io.Discard, apperrors.DefaultColorProvider{})
}
