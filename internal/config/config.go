// Package config defines the application configuration, parses it from
// command-line flags and ARMCALC_* environment variables, and validates it.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	apperrors "github.com/agbru/armcalc/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by armcalc.
const EnvPrefix = "ARMCALC_"

// Default configuration values.
const (
	// DefaultRepeat is the number of timed runs per variant.
	DefaultRepeat = 1000
	// DefaultTimeout bounds a whole CLI run, reference batch included.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the server port.
	DefaultPort = "8080"
	// DefaultLogLevel is the zerolog level name.
	DefaultLogLevel = "info"
	// DefaultCalibrationTarget is the total measured time --auto-repeat aims for.
	DefaultCalibrationTarget = 2 * time.Millisecond
	// MaxRepeat caps the repeat count accepted from any source.
	MaxRepeat = 10_000_000
)

// AppConfig holds the parsed configuration of one armcalc invocation.
type AppConfig struct {
	// N is the candidate number. Zero means none was given.
	N uint64
	// Repeat is the number of timed runs per variant.
	Repeat int
	// Reference names the reference table ("canonical" or "classic").
	Reference string
	// NoReference skips the reference batch after a run.
	NoReference bool
	// Verify cross-checks both variants against the exact oracle.
	Verify bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet prints a single machine-readable line per run.
	Quiet bool
	// Details adds the execution environment and memory usage to the report.
	Details bool
	// OutputFile, when set, receives the session export (.json, .yaml, .yml).
	OutputFile string
	// TUI starts the interactive dashboard.
	TUI bool
	// Interactive starts the REPL.
	Interactive bool
	// ServerMode starts the HTTP API.
	ServerMode bool
	// Port is the server listen port.
	Port string
	// NoColor disables colored output. NO_COLOR is honored as well.
	NoColor bool
	// LogLevel is the zerolog level ("debug", "info", "warn", "error").
	LogLevel string
	// AutoRepeat calibrates the repeat count before the run.
	AutoRepeat bool
	// CalibrationProfile is the profile cache used by AutoRepeat. Empty
	// means ~/.armcalc_calibration.json.
	CalibrationProfile string
	// Completion, if set, prints a completion script for that shell.
	Completion string
	// Version prints the build information and exits.
	Version bool
}

// HasCandidate reports whether a candidate was given on the command line or
// through the environment.
func (c AppConfig) HasCandidate() bool { return c.N != 0 }

// ReferenceTable returns the reference entries for the trend chart, or nil
// when the batch is disabled.
func (c AppConfig) ReferenceTable() []armstrong.ReferenceEntry {
	if c.NoReference {
		return nil
	}
	entries, err := armstrong.ReferenceSetByName(c.Reference)
	if err != nil {
		return nil
	}
	return entries
}

// Validate checks the semantic consistency of the configuration.
// variants lists the registered checker variants, both of which must exist.
func (c AppConfig) Validate(variants []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Repeat <= 0 {
		return apperrors.NewConfigError("repeat must be strictly positive: %d", c.Repeat)
	}
	if c.Repeat > MaxRepeat {
		return apperrors.NewConfigError("repeat cannot exceed %d: %d", MaxRepeat, c.Repeat)
	}
	if c.N > armstrong.MaxSafeCandidate {
		return apperrors.NewConfigError("candidate must have at most %d digits: %d", armstrong.MaxSafeDigits, c.N)
	}
	if _, err := armstrong.ReferenceSetByName(c.Reference); err != nil {
		return apperrors.NewConfigError("unrecognized reference set: '%s'. Valid sets are: [%s]",
			c.Reference, strings.Join(armstrong.ReferenceSetNames(), ", "))
	}
	for _, required := range []string{armstrong.IterativeName, armstrong.RecursiveName} {
		if !contains(variants, required) {
			return apperrors.NewConfigError("checker variant '%s' is not registered", required)
		}
	}
	if c.Completion != "" && !contains(CompletionShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell for completion: '%s'. Valid shells are: [%s]",
			c.Completion, strings.Join(CompletionShells, ", "))
	}
	if modes := c.modeCount(); modes > 1 {
		return apperrors.NewConfigError("--tui, --interactive and --server are mutually exclusive")
	}
	return nil
}

// CompletionShells lists the shells --completion accepts.
var CompletionShells = []string{"bash", "zsh", "fish", "powershell"}

func (c AppConfig) modeCount() int {
	n := 0
	for _, on := range []bool{c.TUI, c.Interactive, c.ServerMode} {
		if on {
			n++
		}
	}
	return n
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseConfig parses args into an AppConfig, applies ARMCALC_* environment
// overrides for flags that were not set, and validates the result.
// Parse errors and usage go to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, variants []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.Uint64Var(&config.N, "n", 0, "Candidate number to check.")
	fs.IntVar(&config.Repeat, "repeat", DefaultRepeat, "Number of timed runs per variant.")
	fs.IntVar(&config.Repeat, "r", DefaultRepeat, "Number of timed runs (shorthand).")
	fs.StringVar(&config.Reference, "reference", armstrong.ReferenceCanonical,
		fmt.Sprintf("Reference table for the trend chart: [%s]. %q replaces the original page's table, kept as %q.",
			strings.Join(armstrong.ReferenceSetNames(), ", "), armstrong.ReferenceCanonical, armstrong.ReferenceClassic))
	fs.BoolVar(&config.NoReference, "no-reference", false, "Skip the reference batch.")
	fs.BoolVar(&config.Verify, "verify", false, "Cross-check both variants against the exact oracle.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - one line per run for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Display environment and memory details.")
	fs.BoolVar(&config.Details, "d", false, "Alias for --details.")
	fs.StringVar(&config.OutputFile, "output", "", "Export the session to a .json or .yaml file.")
	fs.StringVar(&config.OutputFile, "o", "", "Export file (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn or error.")
	fs.BoolVar(&config.AutoRepeat, "auto-repeat", false, "Calibrate the repeat count for this machine.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Calibration profile file (default: ~/.armcalc_calibration.json).")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish, powershell).")
	fs.BoolVar(&config.Version, "version", false, "Print version information and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Reference = strings.ToLower(config.Reference)
	config.Completion = strings.ToLower(config.Completion)
	if err := config.Validate(variants); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
