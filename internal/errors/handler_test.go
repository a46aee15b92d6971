package apperrors

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

type mockColorProvider struct{}

func (m mockColorProvider) Yellow() string { return "[YELLOW]" }
func (m mockColorProvider) Red() string    { return "[RED]" }
func (m mockColorProvider) Reset() string  { return "[RESET]" }

func TestHandleEvaluationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		duration     time.Duration
		colors       ColorProvider
		expectedCode int
		expectedMsg  string
	}{
		{name: "No Error", expectedCode: ExitSuccess},
		{
			name:         "Invalid input",
			err:          NewInvalidInput("candidate"),
			colors:       mockColorProvider{},
			expectedCode: ExitErrorConfig,
			expectedMsg:  "[RED]Status: invalid input[RESET] (candidate)",
		},
		{
			name:         "Config error",
			err:          NewConfigError("unknown reference set %q", "fancy"),
			expectedCode: ExitErrorConfig,
			expectedMsg:  `Configuration error: unknown reference set "fancy"`,
		},
		{
			name:         "Mismatch",
			err:          WrapError(MismatchError{Candidate: 7, Verdicts: map[string]bool{"exact": true}}, "verify"),
			expectedCode: ExitErrorMismatch,
			expectedMsg:  "Status: Critical error. verdict mismatch for 7: map[exact:true]",
		},
		{
			name:         "Timeout Error",
			err:          context.DeadlineExceeded,
			duration:     time.Second,
			colors:       mockColorProvider{},
			expectedCode: ExitErrorTimeout,
			expectedMsg:  "Status: Failure (Timeout). The execution limit was reached after [YELLOW]1s[RESET].",
		},
		{
			name:         "Canceled Error",
			err:          context.Canceled,
			duration:     500 * time.Millisecond,
			colors:       mockColorProvider{},
			expectedCode: ExitErrorCanceled,
			expectedMsg:  "[YELLOW]Status: Canceled after [YELLOW]500ms[RESET].[RESET]",
		},
		{
			name:         "Generic Error",
			err:          fmt.Errorf("random error"),
			expectedCode: ExitErrorGeneric,
			expectedMsg:  "Status: Failure. An unexpected error occurred: random error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleEvaluationError(tt.err, tt.duration, &buf, tt.colors)
			if code != tt.expectedCode {
				t.Errorf("expected exit code %d, got %d", tt.expectedCode, code)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.expectedMsg {
				t.Errorf("expected output %q, got %q", tt.expectedMsg, got)
			}
		})
	}
}
