package orchestration

import (
	"testing"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/bench"
	apperrors "github.com/agbru/armcalc/internal/errors"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		candidate string
		repeat    string
		want      Request
		wantField string
	}{
		{"valid", "153", "1000", Request{Candidate: 153, Repeat: 1000}, ""},
		{"trims spaces", " 9474 ", " 5 ", Request{Candidate: 9474, Repeat: 5}, ""},
		{"empty candidate", "", "10", Request{}, "candidate"},
		{"zero candidate", "0", "10", Request{}, "candidate"},
		{"negative candidate", "-153", "10", Request{}, "candidate"},
		{"non numeric candidate", "abc", "10", Request{}, "candidate"},
		{"empty repeat", "153", "", Request{}, "repeat"},
		{"zero repeat", "153", "0", Request{}, "repeat"},
		{"negative repeat", "153", "-2", Request{}, "repeat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseRequest(tt.candidate, tt.repeat)
			if tt.wantField == "" {
				if err != nil || got != tt.want {
					t.Errorf("ParseRequest() = %+v, %v; want %+v, nil", got, err, tt.want)
				}
				return
			}
			ve, ok := err.(apperrors.ValidationError)
			if !ok || ve.Field != tt.wantField || ve.Message != apperrors.InvalidInputMessage {
				t.Errorf("ParseRequest() error = %v, want invalid input on %q", err, tt.wantField)
			}
		})
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Candidate: 153, Repeat: 1}, false},
		{"max safe candidate", Request{Candidate: armstrong.MaxSafeCandidate, Repeat: 1}, false},
		{"missing candidate", Request{Repeat: 1}, true},
		{"missing repeat", Request{Candidate: 153}, true},
		{"negative repeat", Request{Candidate: 153, Repeat: -1}, true},
		{"too many digits", Request{Candidate: armstrong.MaxSafeCandidate + 1, Repeat: 1}, true},
	}
	for _, tt := range tests {
		err := tt.req.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !apperrors.IsValidationError(err) {
			t.Errorf("%s: Validate() returned %T, want ValidationError", tt.name, err)
		}
	}
}

func TestWinner(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		iterative bench.Mean
		recursive bench.Mean
		want      string
	}{
		{"iterative strictly faster", 1000, 2000, armstrong.IterativeName},
		{"recursive strictly faster", 2000, 1000, armstrong.RecursiveName},
		{"tie goes to recursive", 1000, 1000, armstrong.RecursiveName},
		{"half a nanosecond is not a tie", 1, 1.5, armstrong.IterativeName},
		{"both zero", 0, 0, armstrong.RecursiveName},
	}
	for _, tt := range tests {
		if got := Winner(tt.iterative, tt.recursive); got != tt.want {
			t.Errorf("%s: Winner() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEvaluationResult_Millis(t *testing.T) {
	t.Parallel()
	r := EvaluationResult{IterativeAverage: 1_500_000, RecursiveAverage: 250_000}
	if r.IterativeMillis() != 1.5 || r.RecursiveMillis() != 0.25 {
		t.Errorf("millis = %v, %v; want 1.5, 0.25", r.IterativeMillis(), r.RecursiveMillis())
	}
	tm := ReferenceTiming{IterativeAverage: 100, RecursiveAverage: 2_000_000}
	if tm.IterativeMillis() != 0.0001 || tm.RecursiveMillis() != 2 {
		t.Errorf("reference millis = %v, %v; want 0.0001, 2", tm.IterativeMillis(), tm.RecursiveMillis())
	}
}
