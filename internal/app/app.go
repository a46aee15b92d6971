package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/bench"
	"github.com/agbru/armcalc/internal/calibration"
	"github.com/agbru/armcalc/internal/cli"
	"github.com/agbru/armcalc/internal/config"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/logging"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/server"
	"github.com/agbru/armcalc/internal/tui"
	"github.com/agbru/armcalc/internal/ui"
)

// Application is one armcalc invocation.
type Application struct {
	Config    config.AppConfig
	Factory   armstrong.VariantFactory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets the variant factory instead of the global one.
func WithFactory(f armstrong.VariantFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger handed to the orchestrator and the server.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New parses args (args[0] is the program name) into an Application.
// Usage and parse errors are written to errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = armstrong.GlobalFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	programName := "armcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if err := logging.SetLevel(a.Config.LogLevel); err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.AutoRepeat {
		notes := out
		if a.Config.Quiet {
			notes = io.Discard
		}
		a.Config.Repeat = a.resolveRepeat(ctx, notes)
	}

	o, err := a.newOrchestrator()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	switch {
	case a.Config.TUI:
		return a.runTUI(ctx, o)
	case a.Config.ServerMode:
		return a.runServer(ctx, o)
	case a.Config.Interactive:
		return a.runREPL(ctx, o, out)
	default:
		return a.runCheck(ctx, o, out)
	}
}

func (a *Application) newOrchestrator() (*orchestration.Orchestrator, error) {
	return orchestration.New(
		orchestration.WithFactory(a.Factory),
		orchestration.WithLogger(a.Logger),
		orchestration.WithVerification(a.Config.Verify),
	)
}

// runCompletion prints a shell completion script.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, armstrong.ReferenceSetNames()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI starts the dashboard. The session lives as long as the program;
// each run inside it is bounded by the orchestrator, not by --timeout.
func (a *Application) runTUI(ctx context.Context, o *orchestration.Orchestrator) int {
	ctx, stopSignals := SetupSignals(ctx)
	defer stopSignals()
	return tui.Run(ctx, o, orchestration.NewSession(), a.Config, Version)
}

// runREPL starts the interactive session on stdin. --timeout bounds each
// command rather than the session.
func (a *Application) runREPL(ctx context.Context, o *orchestration.Orchestrator, out io.Writer) int {
	return a.runREPLWithInput(ctx, o, os.Stdin, out)
}

func (a *Application) runREPLWithInput(ctx context.Context, o *orchestration.Orchestrator, in io.Reader, out io.Writer) int {
	ctx, stopSignals := SetupSignals(ctx)
	defer stopSignals()

	repl := cli.NewREPL(o, orchestration.NewSession(), cli.REPLConfig{
		Repeat:       a.Config.Repeat,
		Timeout:      a.Config.Timeout,
		Reference:    a.Config.ReferenceTable(),
		ReferenceSet: a.Config.Reference,
	})
	repl.SetInput(in)
	repl.SetOutput(out)
	repl.Start(ctx)

	if a.Config.OutputFile != "" && repl.Session().Len() > 0 {
		if err := cli.WriteSessionToFile(a.Config.OutputFile, repl.Session().History(), repl.LastReference()); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error exporting session: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		cli.DisplayExportNotice(out, a.Config.OutputFile)
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

// runServer serves the HTTP API until SIGINT or SIGTERM.
func (a *Application) runServer(ctx context.Context, o *orchestration.Orchestrator) int {
	ctx, stopSignals := SetupSignals(ctx)
	defer stopSignals()

	timeouts := server.DefaultServerTimeouts()
	timeouts.RequestTimeout = a.Config.Timeout
	srv := server.NewServer(o, a.Config,
		server.WithFactory(a.Factory),
		server.WithLogger(a.Logger),
		server.WithTimeouts(timeouts),
	)
	if err := srv.Start(ctx); err != nil {
		a.Logger.Error("server stopped", err, logging.String("port", a.Config.Port))
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

const (
	// profileMaxAge is how long a calibration profile is trusted.
	profileMaxAge = 7 * 24 * time.Hour
	// defaultCalibrationCandidate is timed when no candidate was given.
	defaultCalibrationCandidate = 9_926_315
)

// resolveRepeat returns the calibrated repeat count, from the profile cache
// when it still matches this machine. On failure the configured count is
// kept.
func (a *Application) resolveRepeat(ctx context.Context, out io.Writer) int {
	candidate := a.Config.N
	if candidate == 0 {
		candidate = defaultCalibrationCandidate
	}
	path := a.Config.CalibrationProfile
	if path == "" {
		path = calibration.GetDefaultProfilePath()
	}
	target := config.DefaultCalibrationTarget

	if profile, err := calibration.LoadProfile(path); err == nil &&
		profile.IsValid(target) && !profile.IsStale(profileMaxAge) && profile.Candidate == candidate {
		calibration.PrintChoice(out, profile.Repeat, false, true)
		return profile.Repeat
	}

	res, err := calibration.CalibrateRepeat(ctx, bench.New(), candidate, target, config.MaxRepeat)
	if err != nil {
		a.Logger.Error("repeat calibration failed", err, logging.Int("repeat", a.Config.Repeat))
		return a.Config.Repeat
	}
	if a.Config.Details {
		calibration.PrintResult(out, res)
	} else {
		calibration.PrintChoice(out, res.Repeat, res.Capped, false)
	}
	if err := calibration.NewProfile(res, candidate, target).SaveProfile(path); err != nil {
		a.Logger.Debug("calibration profile not saved", logging.String("path", path), logging.Err(err))
	}
	return res.Repeat
}
