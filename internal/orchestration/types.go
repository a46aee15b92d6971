package orchestration

import (
	"strconv"
	"strings"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/bench"
	apperrors "github.com/agbru/armcalc/internal/errors"
)

// Request is the user input of one run.
type Request struct {
	// Candidate is the number under test. Zero means "missing".
	Candidate uint64
	// Repeat is the number of timed runs per variant. Zero means "missing".
	Repeat int
}

// ParseRequest converts raw text fields into a Request. Empty, non-numeric,
// negative or zero values yield the "invalid input" ValidationError.
func ParseRequest(candidate, repeat string) (Request, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(candidate), 10, 64)
	if err != nil || n == 0 {
		return Request{}, apperrors.NewInvalidInput("candidate")
	}
	r, err := strconv.Atoi(strings.TrimSpace(repeat))
	if err != nil || r <= 0 {
		return Request{}, apperrors.NewInvalidInput("repeat")
	}
	return Request{Candidate: n, Repeat: r}, nil
}

// Validate checks the request before any measurement happens.
func (r Request) Validate() error {
	if r.Candidate == 0 {
		return apperrors.NewInvalidInput("candidate")
	}
	if r.Repeat <= 0 {
		return apperrors.NewInvalidInput("repeat")
	}
	if r.Candidate > armstrong.MaxSafeCandidate {
		return apperrors.ValidationError{
			Field:   "candidate",
			Message: "must have at most " + strconv.Itoa(armstrong.MaxSafeDigits) + " digits",
		}
	}
	return nil
}

// EvaluationResult is the record produced by one run.
type EvaluationResult struct {
	Candidate        uint64     `json:"candidate" yaml:"candidate"`
	DigitCount       int        `json:"digit_count" yaml:"digit_count"`
	Repeat           int        `json:"repeat" yaml:"repeat"`
	IterativeAverage bench.Mean `json:"iterative_average_ns" yaml:"iterative_average_ns"`
	RecursiveAverage bench.Mean `json:"recursive_average_ns" yaml:"recursive_average_ns"`
	IsArmstrong      bool       `json:"is_armstrong" yaml:"is_armstrong"`
	Winner           string     `json:"winner" yaml:"winner"`
}

// IterativeMillis returns the iterative mean in milliseconds.
func (r EvaluationResult) IterativeMillis() float64 { return r.IterativeAverage.Millis() }

// RecursiveMillis returns the recursive mean in milliseconds.
func (r EvaluationResult) RecursiveMillis() float64 { return r.RecursiveAverage.Millis() }

// Winner names the faster variant. The iterative variant wins only when it
// is strictly faster; ties go to the recursive variant. The means are
// compared at full precision.
func Winner(iterative, recursive bench.Mean) string {
	if iterative < recursive {
		return armstrong.IterativeName
	}
	return armstrong.RecursiveName
}

// ReferenceTiming is one point of the reference batch.
type ReferenceTiming struct {
	Label            int        `json:"label" yaml:"label"`
	Value            uint64     `json:"value" yaml:"value"`
	DigitCount       int        `json:"digit_count" yaml:"digit_count"`
	IterativeAverage bench.Mean `json:"iterative_average_ns" yaml:"iterative_average_ns"`
	RecursiveAverage bench.Mean `json:"recursive_average_ns" yaml:"recursive_average_ns"`
	Winner           string     `json:"winner" yaml:"winner"`
}

// IterativeMillis returns the iterative mean in milliseconds.
func (t ReferenceTiming) IterativeMillis() float64 { return t.IterativeAverage.Millis() }

// RecursiveMillis returns the recursive mean in milliseconds.
func (t ReferenceTiming) RecursiveMillis() float64 { return t.RecursiveAverage.Millis() }
