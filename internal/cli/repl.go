package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/metrics"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/ui"
)

// REPLConfig holds the settings of an interactive session.
type REPLConfig struct {
	// Repeat is the repeat count used when a run does not name one.
	Repeat int
	// Timeout bounds each command.
	Timeout time.Duration
	// Reference is the table timed after each run; nil disables the batch.
	Reference []armstrong.ReferenceEntry
	// ReferenceSet names Reference for the "reference" command.
	ReferenceSet string
}

// REPL is an interactive session: each entered number is one run, and the
// session history grows across runs.
type REPL struct {
	config        REPLConfig
	orchestrator  *orchestration.Orchestrator
	session       *orchestration.Session
	presenter     CLIResultPresenter
	reporter      orchestration.ProgressReporter
	lastReference []orchestration.ReferenceTiming
	in            io.Reader
	out           io.Writer
}

// NewREPL creates a REPL reading stdin and writing stdout.
func NewREPL(o *orchestration.Orchestrator, session *orchestration.Session, config REPLConfig) *REPL {
	if session == nil {
		session = orchestration.NewSession()
	}
	return &REPL{
		config:       config,
		orchestrator: o,
		session:      session,
		reporter:     CLIProgressReporter{},
		in:           os.Stdin,
		out:          os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// SetProgressReporter replaces the spinner, e.g. with a silent reporter.
func (r *REPL) SetProgressReporter(p orchestration.ProgressReporter) { r.reporter = p }

// Session returns the history of the REPL.
func (r *REPL) Session() *orchestration.Session { return r.session }

// LastReference returns the timings of the latest reference batch.
func (r *REPL) LastReference() []orchestration.ReferenceTiming { return r.lastReference }

// Start reads commands until exit, EOF or cancellation of ctx.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(r.out, ui.ColorGreen()+"armstrong> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		eof := errors.Is(err, io.EOF)

		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(ctx, line) {
				return
			}
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════╗%s\n", ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %sArmstrong Number Checker - Interactive%s     %s║%s\n",
		ui.ColorBlue(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════╝%s\n\n", ui.ColorBlue(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range [][2]string{
		{"run <n> [repeat]", "Check n and time both variants"},
		{"<n>", "Shorthand for run <n>"},
		{"repeat <r>", fmt.Sprintf("Set the default repeat count (now %d)", r.config.Repeat)},
		{"history", "Show every run of this session"},
		{"reference", "Time the reference Armstrong numbers"},
		{"export <file>", "Save the session as .json or .yaml"},
		{"help", "Display this help"},
		{"exit / quit", "Leave interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %s%-18s%s - %s\n", ui.ColorYellow(), c[0], ui.ColorReset(), c[1])
	}
}

// processCommand runs one command line. It returns false to exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "run", "r":
		r.cmdRun(ctx, args)
	case "repeat":
		r.cmdRepeat(args)
	case "history", "hist":
		r.cmdHistory()
	case "reference", "ref":
		r.cmdReference(ctx)
	case "export":
		r.cmdExport(args)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if _, err := strconv.ParseUint(cmd, 10, 64); err == nil {
			r.cmdRun(ctx, parts)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) cmdRun(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: run <n> [repeat]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	repeat := strconv.Itoa(r.config.Repeat)
	if len(args) > 1 {
		repeat = args[1]
	}
	req, err := orchestration.ParseRequest(args[0], repeat)
	if err != nil {
		metrics.ObserveInvalidInput()
		r.presenter.PresentInvalidInput(err, r.out)
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	outcome, err := r.orchestrator.Run(runCtx, r.session, req, r.presenter,
		orchestration.RunOptions{Reference: r.config.Reference, Reporter: r.reporter}, r.out)
	if outcome.Reference != nil {
		r.lastReference = outcome.Reference
	}
	if err != nil && !apperrors.IsValidationError(err) {
		r.presenter.HandleError(err, r.out)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdRepeat(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Repeat count: %s%d%s\n", ui.ColorMagenta(), r.config.Repeat, ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		fmt.Fprintf(r.out, "%sInvalid repeat count: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Repeat = n
	fmt.Fprintf(r.out, "Repeat count set to %s%d%s\n", ui.ColorGreen(), n, ui.ColorReset())
}

func (r *REPL) cmdHistory() {
	history := r.session.History()
	if len(history) == 0 {
		fmt.Fprintln(r.out, "No runs yet.")
		return
	}
	r.presenter.PresentHistory(history, r.out)
	for _, res := range history {
		r.presenter.PresentTableRow(res, r.out)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdReference(ctx context.Context) {
	entries := r.config.Reference
	if len(entries) == 0 {
		var err error
		if entries, err = armstrong.ReferenceSetByName(r.config.ReferenceSet); err != nil {
			fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
	}
	runCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	timings, err := r.orchestrator.RunReferenceBatch(runCtx, entries, r.config.Repeat)
	if err != nil {
		r.presenter.HandleError(err, r.out)
		return
	}
	r.lastReference = timings
	r.presenter.PresentReferenceTrend(timings, r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdExport(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: export <file.json|file.yaml>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	if err := WriteSessionToFile(args[0], r.session.History(), r.lastReference); err != nil {
		fmt.Fprintf(r.out, "%sExport failed: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayExportNotice(r.out, args[0])
}
