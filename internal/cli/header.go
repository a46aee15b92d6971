package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/armcalc/internal/config"
	"github.com/agbru/armcalc/internal/format"
	"github.com/agbru/armcalc/internal/metrics"
	"github.com/agbru/armcalc/internal/ui"
)

// EnvironmentInfo describes the machine a benchmark ran on.
type EnvironmentInfo struct {
	CPUModel    string
	CPUFeatures []string
}

// PrintExecutionConfig prints the run parameters and, when details are
// requested, the hardware context of the figures.
func PrintExecutionConfig(cfg config.AppConfig, env EnvironmentInfo, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Checking %s%s%s with %s%d%s runs per variant, timeout %s%s%s.\n",
		ui.ColorMagenta(), format.FormatUint(cfg.N), ui.ColorReset(),
		ui.ColorYellow(), cfg.Repeat, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if !cfg.Details {
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintf(out, "Environment: %d logical processors, Go %s, %s/%s.\n",
		runtime.NumCPU(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if env.CPUModel != "" {
		fmt.Fprintf(out, "CPU: %s\n", env.CPUModel)
	}
	features := "none detected"
	if len(env.CPUFeatures) > 0 {
		features = strings.Join(env.CPUFeatures, ", ")
	}
	fmt.Fprintf(out, "CPU features: %s\n\n", features)
}

// DisplayMemoryStats prints the memory activity of a run.
func DisplayMemoryStats(delta metrics.MemoryDelta, after metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated (run): %s\n", format.FormatBytes(delta.Allocated))
	fmt.Fprintf(out, "  GC cycles (run): %d\n", delta.GCCycles)
	fmt.Fprintf(out, "  GC pause (run):  %.2fms\n", float64(delta.PauseNs)/1e6)
}
