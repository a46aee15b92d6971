// Package apperrors defines the structured error types of armcalc so that
// invalid input, timeouts, cross-check mismatches and configuration problems
// can be told apart and mapped to distinct process exit codes.
//
// Error Wrapping Guidelines:
// Errors are wrapped with fmt.Errorf and %w. Types that carry a cause
// implement Unwrap() so errors.Is() and errors.As() see through them.
package apperrors
