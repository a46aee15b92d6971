package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// CancelFuncs holds the release functions of a run context.
type CancelFuncs struct {
	// CancelTimeout cancels the timeout context.
	CancelTimeout context.CancelFunc
	// StopSignals stops listening for SIGINT and SIGTERM.
	StopSignals context.CancelFunc
}

// Cleanup releases both. It is safe on a partially filled value.
func (c *CancelFuncs) Cleanup() {
	if c.StopSignals != nil {
		c.StopSignals()
	}
	if c.CancelTimeout != nil {
		c.CancelTimeout()
	}
}

// SetupSignals returns a context canceled on SIGINT or SIGTERM.
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// SetupLifecycle returns a context canceled when timeout expires or a
// termination signal arrives, whichever comes first. A non-positive
// timeout means no deadline.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The maximum duration of the operation.
//
// Returns:
//   - context.Context: The run context.
//   - *CancelFuncs: The release functions, typically deferred via Cleanup.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	funcs := &CancelFuncs{}
	if timeout > 0 {
		ctx, funcs.CancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, funcs.StopSignals = SetupSignals(ctx)
	return ctx, funcs
}
