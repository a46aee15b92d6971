package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/agbru/armcalc/internal/cli"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/metrics"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/sysmon"
	"github.com/agbru/armcalc/internal/ui"
)

// runCheck performs the one-shot run: the candidate from -n is evaluated
// once, reported, followed by the reference batch, and optionally exported.
func (a *Application) runCheck(ctx context.Context, o *orchestration.Orchestrator, out io.Writer) int {
	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	var presenter orchestration.ResultPresenter = cli.CLIResultPresenter{}
	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	if a.Config.Quiet {
		presenter = cli.QuietPresenter{}
		reporter = orchestration.NullProgressReporter{}
	} else {
		cli.PrintExecutionConfig(a.Config, a.environment(), out)
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	start := time.Now()

	session := orchestration.NewSession()
	req := orchestration.Request{Candidate: a.Config.N, Repeat: a.Config.Repeat}
	outcome, err := o.Run(ctx, session, req, presenter, orchestration.RunOptions{
		Reference: a.Config.ReferenceTable(),
		Reporter:  reporter,
	}, out)
	if err != nil {
		return a.handleRunError(err, time.Since(start), out)
	}

	if a.Config.Details && !a.Config.Quiet {
		after := collector.Snapshot()
		cli.DisplayMemoryStats(after.Since(before), after, out)
	}

	if a.Config.OutputFile != "" {
		if err := cli.WriteSessionToFile(a.Config.OutputFile, session.History(), outcome.Reference); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error exporting session: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			cli.DisplayExportNotice(out, a.Config.OutputFile)
		}
	}
	return apperrors.ExitSuccess
}

// handleRunError maps a failed run to its exit code. Invalid input has
// already been reported by the presenter.
func (a *Application) handleRunError(err error, elapsed time.Duration, out io.Writer) int {
	if apperrors.IsValidationError(err) {
		return apperrors.ExitErrorConfig
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: "armstrong check", Limit: a.Config.Timeout}
	}
	if a.Config.Quiet {
		return apperrors.HandleEvaluationError(err, elapsed, a.ErrWriter, ui.ErrorColors{})
	}
	return apperrors.HandleEvaluationError(err, elapsed, out, ui.ErrorColors{})
}

// environment describes the host for --details; it is not sampled otherwise.
func (a *Application) environment() cli.EnvironmentInfo {
	if !a.Config.Details {
		return cli.EnvironmentInfo{}
	}
	return cli.EnvironmentInfo{
		CPUModel:    sysmon.CPUModel(),
		CPUFeatures: sysmon.CPUFeatures(),
	}
}
