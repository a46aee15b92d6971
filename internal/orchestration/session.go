package orchestration

import (
	"sync"

	"github.com/agbru/armcalc/internal/bench"
)

// Session is the append-only history of the runs performed during the
// lifetime of the process. It is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	results []EvaluationResult
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Append records a run at the end of the history.
func (s *Session) Append(r EvaluationResult) {
	s.mu.Lock()
	s.results = append(s.results, r)
	s.mu.Unlock()
}

// History returns a copy of the runs in insertion order.
func (s *Session) History() []EvaluationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]EvaluationResult, len(s.results))
	copy(out, s.results)
	return out
}

// Len returns the number of recorded runs.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Last returns the most recent run.
func (s *Session) Last() (EvaluationResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.results) == 0 {
		return EvaluationResult{}, false
	}
	return s.results[len(s.results)-1], true
}

// IterativeSeries returns the iterative means in run order.
func (s *Session) IterativeSeries() []bench.Mean {
	return s.series(func(r EvaluationResult) bench.Mean { return r.IterativeAverage })
}

// RecursiveSeries returns the recursive means in run order.
func (s *Session) RecursiveSeries() []bench.Mean {
	return s.series(func(r EvaluationResult) bench.Mean { return r.RecursiveAverage })
}

func (s *Session) series(pick func(EvaluationResult) bench.Mean) []bench.Mean {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bench.Mean, len(s.results))
	for i, r := range s.results {
		out[i] = pick(r)
	}
	return out
}
