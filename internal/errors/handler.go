package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// It keeps this package free of any dependency on the ui package.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleEvaluationError prints a status line for a failed evaluation and
// returns the matching exit code.
//
// Parameters:
//   - err: The error that occurred.
//   - duration: The elapsed time before the failure (0 to omit).
//   - out: The io.Writer to which the message is written.
//   - colors: Provider for terminal color codes (nil for no colors).
//
// Returns:
//   - int: The exit code for the error class.
func HandleEvaluationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	var (
		ve ValidationError
		me MismatchError
		ce ConfigError
	)
	switch {
	case errors.As(err, &ve):
		fmt.Fprintf(out, "%sStatus: %s%s (%s)\n", colors.Red(), ve.Message, colors.Reset(), ve.Field)
		return ExitErrorConfig
	case errors.As(err, &ce):
		fmt.Fprintf(out, "%sConfiguration error:%s %s\n", colors.Red(), colors.Reset(), ce.Message)
		return ExitErrorConfig
	case errors.As(err, &me):
		fmt.Fprintf(out, "%sStatus: Critical error. %v%s\n", colors.Red(), me, colors.Reset())
		return ExitErrorMismatch
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
		return ExitErrorCanceled
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
