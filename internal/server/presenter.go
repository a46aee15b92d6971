package server

import (
	"io"

	"github.com/agbru/armcalc/internal/orchestration"
)

// responsePresenter collects what the orchestrator presents during one
// request so the handler can answer with a single JSON document.
type responsePresenter struct {
	result  orchestration.EvaluationResult
	runs    int
	invalid error
}

var _ orchestration.ResultPresenter = (*responsePresenter)(nil)

func (p *responsePresenter) PresentStatus(r orchestration.EvaluationResult, _ io.Writer) {
	p.result = r
}

func (p *responsePresenter) PresentComparison(orchestration.EvaluationResult, io.Writer) {}

func (p *responsePresenter) PresentHistory(history []orchestration.EvaluationResult, _ io.Writer) {
	p.runs = len(history)
}

func (p *responsePresenter) PresentTableRow(orchestration.EvaluationResult, io.Writer) {}

// PresentReferenceTrend is a no-op: /evaluate runs without a reference
// batch and /reference answers with the timings directly.
func (p *responsePresenter) PresentReferenceTrend([]orchestration.ReferenceTiming, io.Writer) {}

func (p *responsePresenter) PresentInvalidInput(err error, _ io.Writer) {
	p.invalid = err
}
