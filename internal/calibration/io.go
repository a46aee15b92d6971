package calibration

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agbru/armcalc/internal/format"
	"github.com/agbru/armcalc/internal/ui"
)

// PrintResult writes the trial table and the chosen repeat count.
func PrintResult(out io.Writer, res Result) {
	fmt.Fprintf(out, "\n--- Repeat Calibration ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  Repeat\tMean\tTotal\t\n")
	for _, s := range res.Steps {
		mark := ""
		if s.Repeat == res.Repeat {
			mark = ui.ColorGreen() + "(chosen)" + ui.ColorReset()
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", s.Repeat,
			format.FormatExecutionDuration(s.Mean), format.FormatExecutionDuration(s.Total), mark)
	}
	tw.Flush()
	PrintChoice(out, res.Repeat, res.Capped, false)
}

// PrintChoice writes the one-line summary of the repeat count in use.
func PrintChoice(out io.Writer, repeat int, capped, cached bool) {
	note := ""
	switch {
	case cached:
		note = " (cached profile)"
	case capped:
		note = " (capped)"
	}
	fmt.Fprintf(out, "%sAuto-repeat%s: %s%d%s runs per variant%s\n",
		ui.ColorGreen(), ui.ColorReset(), ui.ColorYellow(), repeat, ui.ColorReset(), note)
}
