package tui

import (
	"time"

	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/progress"
)

// StatusMsg carries the record of a finished run.
type StatusMsg struct{ Result orchestration.EvaluationResult }

// ComparisonMsg carries the record shown in the bar chart.
type ComparisonMsg struct{ Result orchestration.EvaluationResult }

// HistoryMsg carries the session history after a run.
type HistoryMsg struct{ History []orchestration.EvaluationResult }

// TableRowMsg appends a row to the results table.
type TableRowMsg struct{ Result orchestration.EvaluationResult }

// ReferenceTrendMsg carries the timings of a reference batch.
type ReferenceTrendMsg struct{ Timings []orchestration.ReferenceTiming }

// InvalidInputMsg reports a rejected request.
type InvalidInputMsg struct{ Err error }

// ErrorMsg reports a failed run.
type ErrorMsg struct{ Err error }

// ProgressMsg forwards a progress update of the current run.
type ProgressMsg struct{ Update progress.Update }

// ProgressDoneMsg marks the end of a progress stream.
type ProgressDoneMsg struct{}

// RunDoneMsg is returned when a run command finishes.
type RunDoneMsg struct{ Err error }

// ReferenceDoneMsg is returned when a standalone reference batch finishes.
type ReferenceDoneMsg struct {
	Timings []orchestration.ReferenceTiming
	Err     error
}

// TickMsg drives the periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	HeapAlloc    uint64
	Sys          uint64
	NumGC        uint32
	NumGoroutine int
}

// SysStatsMsg carries a host CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg is sent when the parent context ends.
type ContextCancelledMsg struct{ Err error }
