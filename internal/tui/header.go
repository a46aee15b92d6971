package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/armcalc/internal/format"
)

// HeaderModel renders the top bar: title, version, run count and elapsed
// time.
type HeaderModel struct {
	startTime time.Time
	version   string
	cpuModel  string
	runs      int
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, cpuModel string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		cpuModel:  cpuModel,
	}
}

// SetRuns updates the run counter.
func (h *HeaderModel) SetRuns(n int) {
	h.runs = n
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Armstrong Checker"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	left := titleStyle.Render(titleText) + pipe +
		accentStyle.Render(fmt.Sprintf("Runs: %d", h.runs)) + pipe +
		accentStyle.Render("Session: "+format.FormatExecutionDuration(time.Since(h.startTime).Round(time.Second)))

	right := ""
	if h.cpuModel != "" {
		right = dimStyle.Render(h.cpuModel)
	}

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return headerStyle.Render(left)
	}
	return headerStyle.Render(left + spaces(gap) + right)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
