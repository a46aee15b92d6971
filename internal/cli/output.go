// Package cli is the terminal front end of armcalc: the result presenter,
// the progress spinner, the REPL, shell completion and session export.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Write* functions write files to the filesystem.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agbru/armcalc/internal/format"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/ui"
)

// SessionExport is the document written by WriteSessionToFile. Mean times
// are stored in milliseconds so both encodings read the same.
type SessionExport struct {
	Generated time.Time        `json:"generated" yaml:"generated"`
	Runs      []ExportedRun    `json:"runs" yaml:"runs"`
	Reference []ExportedTiming `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// ExportedRun is one session record.
type ExportedRun struct {
	Candidate   uint64  `json:"candidate" yaml:"candidate"`
	DigitCount  int     `json:"digit_count" yaml:"digit_count"`
	Repeat      int     `json:"repeat" yaml:"repeat"`
	IterativeMs float64 `json:"iterative_average_ms" yaml:"iterative_average_ms"`
	RecursiveMs float64 `json:"recursive_average_ms" yaml:"recursive_average_ms"`
	IsArmstrong bool    `json:"is_armstrong" yaml:"is_armstrong"`
	Winner      string  `json:"winner" yaml:"winner"`
}

// ExportedTiming is one reference batch point.
type ExportedTiming struct {
	Label       int     `json:"label" yaml:"label"`
	Value       uint64  `json:"value" yaml:"value"`
	IterativeMs float64 `json:"iterative_average_ms" yaml:"iterative_average_ms"`
	RecursiveMs float64 `json:"recursive_average_ms" yaml:"recursive_average_ms"`
	Winner      string  `json:"winner" yaml:"winner"`
}

// NewSessionExport converts a history and a reference batch to the export
// document.
func NewSessionExport(history []orchestration.EvaluationResult, reference []orchestration.ReferenceTiming) SessionExport {
	doc := SessionExport{Generated: now().UTC(), Runs: make([]ExportedRun, 0, len(history))}
	for _, r := range history {
		doc.Runs = append(doc.Runs, ExportedRun{
			Candidate:   r.Candidate,
			DigitCount:  r.DigitCount,
			Repeat:      r.Repeat,
			IterativeMs: r.IterativeMillis(),
			RecursiveMs: r.RecursiveMillis(),
			IsArmstrong: r.IsArmstrong,
			Winner:      r.Winner,
		})
	}
	for _, t := range reference {
		doc.Reference = append(doc.Reference, ExportedTiming{
			Label:       t.Label,
			Value:       t.Value,
			IterativeMs: t.IterativeMillis(),
			RecursiveMs: t.RecursiveMillis(),
			Winner:      t.Winner,
		})
	}
	return doc
}

// now is replaced in tests.
var now = time.Now

// WriteSessionToFile exports the session history and the latest reference
// batch. The encoding follows the extension: .json, or .yaml/.yml.
// Missing parent directories are created.
func WriteSessionToFile(path string, history []orchestration.EvaluationResult, reference []orchestration.ReferenceTiming) error {
	if path == "" {
		return nil
	}
	doc := NewSessionExport(history, reference)

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported export format %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatQuietResult renders a run as "<n> <true|false> <iter_ms> <rec_ms> <winner>".
func FormatQuietResult(res orchestration.EvaluationResult) string {
	return fmt.Sprintf("%d %t %s %s %s",
		res.Candidate, res.IsArmstrong, format.FormatMillis(res.IterativeMillis()), format.FormatMillis(res.RecursiveMillis()), res.Winner)
}

// DisplayQuietResult prints FormatQuietResult followed by a newline.
func DisplayQuietResult(out io.Writer, res orchestration.EvaluationResult) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayExportNotice confirms where the session was saved.
func DisplayExportNotice(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Session saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorMagenta(), path, ui.ColorReset())
}

// QuietPresenter prints only the quiet line of each run, for scripts.
// Invalid input is reported on the same writer as a single status line.
type QuietPresenter struct{}

var _ orchestration.ResultPresenter = QuietPresenter{}

func (QuietPresenter) PresentStatus(orchestration.EvaluationResult, io.Writer)           {}
func (QuietPresenter) PresentComparison(orchestration.EvaluationResult, io.Writer)       {}
func (QuietPresenter) PresentHistory([]orchestration.EvaluationResult, io.Writer)        {}
func (QuietPresenter) PresentReferenceTrend([]orchestration.ReferenceTiming, io.Writer) {}

// PresentTableRow prints the quiet line.
func (QuietPresenter) PresentTableRow(res orchestration.EvaluationResult, out io.Writer) {
	DisplayQuietResult(out, res)
}

// PresentInvalidInput prints the rejection without colors.
func (QuietPresenter) PresentInvalidInput(err error, out io.Writer) {
	fmt.Fprintln(out, err)
}
