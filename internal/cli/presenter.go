package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/chart"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/format"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/ui"
)

const (
	// BarWidth is the width in cells of the comparison bars.
	BarWidth = 40
	// ChartWidth is the width in cells of the line charts.
	ChartWidth = 48
	// ChartRows is the height in text rows of each line chart series.
	ChartRows = 3
)

// CLIResultPresenter renders run results as colored terminal text.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// VariantLabel returns the display name of a checker variant.
func VariantLabel(name string) string {
	switch name {
	case armstrong.IterativeName:
		return "Iterative"
	case armstrong.RecursiveName:
		return "Recursive"
	}
	return name
}

func variantColor(name string) string {
	if name == armstrong.IterativeName {
		return ui.ColorBlue()
	}
	return ui.ColorOrange()
}

// PresentStatus prints the Armstrong verdict.
func (CLIResultPresenter) PresentStatus(res orchestration.EvaluationResult, out io.Writer) {
	if res.IsArmstrong {
		fmt.Fprintf(out, "Status: %s%s is an Armstrong number ✔%s\n",
			ui.ColorGreen(), format.FormatUint(res.Candidate), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "Status: %s%s is not an Armstrong number ✖%s\n",
		ui.ColorRed(), format.FormatUint(res.Candidate), ui.ColorReset())
}

// PresentComparison prints the two mean times as horizontal bars on a
// common scale.
func (CLIResultPresenter) PresentComparison(res orchestration.EvaluationResult, out io.Writer) {
	iter, rec := res.IterativeMillis(), res.RecursiveMillis()
	scale := chart.Max([]float64{iter, rec})

	fmt.Fprintf(out, "\n%s--- Mean Execution Time (%dx) ---%s\n", ui.ColorBold(), res.Repeat, ui.ColorReset())
	for _, row := range []struct {
		name string
		ms   float64
	}{{armstrong.IterativeName, iter}, {armstrong.RecursiveName, rec}} {
		bar := chart.Bar(row.ms, scale, BarWidth)
		fmt.Fprintf(out, "%-10s %s%s%s%s %s ms\n",
			VariantLabel(row.name), variantColor(row.name), bar, ui.ColorReset(),
			strings.Repeat(" ", BarWidth-len([]rune(bar))), format.FormatMillis(row.ms))
	}
}

// PresentHistory prints one braille line per variant over every run of
// the session, both on the same scale.
func (CLIResultPresenter) PresentHistory(history []orchestration.EvaluationResult, out io.Writer) {
	if len(history) == 0 {
		return
	}
	iter := make([]float64, len(history))
	rec := make([]float64, len(history))
	for i, r := range history {
		iter[i] = r.IterativeMillis()
		rec[i] = r.RecursiveMillis()
	}
	fmt.Fprintf(out, "\n%s--- Execution Time per Run ---%s\n", ui.ColorBold(), ui.ColorReset())
	renderSeries(out, iter, rec)
	fmt.Fprintf(out, "%-10s runs 1..%d\n", "", len(history))
}

// PresentTableRow prints the results table row of a run.
func (CLIResultPresenter) PresentTableRow(res orchestration.EvaluationResult, out io.Writer) {
	fmt.Fprintf(out, "\n%-20s %-6s %-14s %-14s %-9s %s\n",
		"Number", "Digits", "Iterative", "Recursive", "Repeat", "Winner")
	fmt.Fprintf(out, "%-20d %-6d %-14s %-14s %-9s %s%s%s\n",
		res.Candidate, res.DigitCount,
		format.FormatMillis(res.IterativeMillis())+" ms",
		format.FormatMillis(res.RecursiveMillis())+" ms",
		fmt.Sprintf("%dx", res.Repeat),
		variantColor(res.Winner), VariantLabel(res.Winner), ui.ColorReset())
}

// PresentReferenceTrend prints the reference batch as a line chart over
// the reference numbers followed by its values.
func (CLIResultPresenter) PresentReferenceTrend(timings []orchestration.ReferenceTiming, out io.Writer) {
	if len(timings) == 0 {
		return
	}
	iter := make([]float64, len(timings))
	rec := make([]float64, len(timings))
	labels := make([]string, len(timings))
	for i, t := range timings {
		iter[i] = t.IterativeMillis()
		rec[i] = t.RecursiveMillis()
		labels[i] = fmt.Sprintf("%d", t.Value)
	}
	fmt.Fprintf(out, "\n%s--- Runtime over Reference Armstrong Numbers ---%s\n", ui.ColorBold(), ui.ColorReset())
	renderSeries(out, iter, rec)
	fmt.Fprintf(out, "%-10s %s\n", "", strings.Join(labels, " "))
	for _, t := range timings {
		fmt.Fprintf(out, "  %2d digits  %-12d %12s ms %12s ms  %s%s%s\n",
			t.Label, t.Value,
			format.FormatMillis(t.IterativeMillis()), format.FormatMillis(t.RecursiveMillis()),
			variantColor(t.Winner), VariantLabel(t.Winner), ui.ColorReset())
	}
}

// PresentInvalidInput prints the rejection status line.
func (CLIResultPresenter) PresentInvalidInput(err error, out io.Writer) {
	apperrors.HandleEvaluationError(err, 0, out, ui.ErrorColors{})
}

// HandleError prints a failure status line and returns the exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return apperrors.HandleEvaluationError(err, 0, out, ui.ErrorColors{})
}

func renderSeries(out io.Writer, iter, rec []float64) {
	scale := chart.Max(iter, rec)
	fmt.Fprintf(out, "%-10s max %s ms\n", "", format.FormatMillis(scale))
	for _, s := range []struct {
		name   string
		values []float64
	}{{armstrong.IterativeName, iter}, {armstrong.RecursiveName, rec}} {
		for i, line := range chart.Line(s.values, scale, ChartWidth, ChartRows) {
			label := ""
			if i == 0 {
				label = VariantLabel(s.name)
			}
			fmt.Fprintf(out, "%-10s│%s%s%s\n", label, variantColor(s.name), line, ui.ColorReset())
		}
	}
}
