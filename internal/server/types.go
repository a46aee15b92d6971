package server

import (
	"github.com/agbru/armcalc/internal/orchestration"
)

// RunResponse is the JSON form of one evaluation record. Times are
// milliseconds.
type RunResponse struct {
	Candidate   uint64  `json:"candidate"`
	DigitCount  int     `json:"digit_count"`
	Repeat      int     `json:"repeat"`
	IterativeMs float64 `json:"iterative_average_ms"`
	RecursiveMs float64 `json:"recursive_average_ms"`
	IsArmstrong bool    `json:"is_armstrong"`
	Winner      string  `json:"winner"`
}

// EvaluateResponse is returned by /evaluate.
type EvaluateResponse struct {
	RunResponse
	// Run is the 1-based position of this run in the server session.
	Run int `json:"run"`
	// Duration is the wall time of the whole request.
	Duration string `json:"duration"`
}

// TimingResponse is one reference batch point.
type TimingResponse struct {
	Label       int     `json:"label"`
	Value       uint64  `json:"value"`
	DigitCount  int     `json:"digit_count"`
	IterativeMs float64 `json:"iterative_average_ms"`
	RecursiveMs float64 `json:"recursive_average_ms"`
	Winner      string  `json:"winner"`
}

// ReferenceResponse is returned by /reference.
type ReferenceResponse struct {
	Set      string           `json:"set"`
	Repeat   int              `json:"repeat"`
	Timings  []TimingResponse `json:"timings"`
	Duration string           `json:"duration"`
}

// HistoryResponse is returned by /history.
type HistoryResponse struct {
	Count int           `json:"count"`
	Runs  []RunResponse `json:"runs"`
}

// VariantInfo describes one registered checker variant.
type VariantInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	// Error is the HTTP status text.
	Error string `json:"error"`
	// Message is the detailed reason.
	Message string `json:"message,omitempty"`
}

func newRunResponse(r orchestration.EvaluationResult) RunResponse {
	return RunResponse{
		Candidate:   r.Candidate,
		DigitCount:  r.DigitCount,
		Repeat:      r.Repeat,
		IterativeMs: r.IterativeMillis(),
		RecursiveMs: r.RecursiveMillis(),
		IsArmstrong: r.IsArmstrong,
		Winner:      r.Winner,
	}
}

func newTimingResponses(timings []orchestration.ReferenceTiming) []TimingResponse {
	out := make([]TimingResponse, 0, len(timings))
	for _, t := range timings {
		out = append(out, TimingResponse{
			Label:       t.Label,
			Value:       t.Value,
			DigitCount:  t.DigitCount,
			IterativeMs: t.IterativeMillis(),
			RecursiveMs: t.RecursiveMillis(),
			Winner:      t.Winner,
		})
	}
	return out
}
