package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/armcalc/internal/chart"
	"github.com/agbru/armcalc/internal/format"
)

// sparklineCapacity is the number of host samples kept for the sparklines.
const sparklineCapacity = 40

// MetricsModel shows the process memory and the host load.
type MetricsModel struct {
	heapAlloc    uint64
	sys          uint64
	numGC        uint32
	numGoroutine int
	cpu          *chart.Window
	mem          *chart.Window
	width        int
}

// NewMetricsModel creates an empty metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		cpu: chart.NewWindow(sparklineCapacity),
		mem: chart.NewWindow(sparklineCapacity),
	}
}

// SetWidth updates the panel width.
func (m *MetricsModel) SetWidth(w int) {
	m.width = w
}

// UpdateMemStats records a runtime sample.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.heapAlloc = msg.HeapAlloc
	m.sys = msg.Sys
	m.numGC = msg.NumGC
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats appends a host sample to the sparklines.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.cpu.Push(msg.CPUPercent)
	m.mem.Push(msg.MemPercent)
}

// View renders the panel body.
func (m MetricsModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s  %s %d  %s %d\n",
		dimStyle.Render("Heap"), accentStyle.Render(format.FormatBytes(m.heapAlloc)),
		dimStyle.Render("Sys"), accentStyle.Render(format.FormatBytes(m.sys)),
		dimStyle.Render("GC"), m.numGC,
		dimStyle.Render("Goroutines"), m.numGoroutine)
	fmt.Fprintf(&b, "%s %s %5.1f%%\n", dimStyle.Render("CPU"),
		iterativeStyle.Render(chart.Sparkline(m.cpu.Values(), 100)), m.cpu.Last())
	fmt.Fprintf(&b, "%s %s %5.1f%%", dimStyle.Render("MEM"),
		recursiveStyle.Render(chart.Sparkline(m.mem.Values(), 100)), m.mem.Last())
	return b.String()
}
