package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/chart"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/format"
)

// Panel geometry.
const (
	chartRows     = 3
	maxTableRows  = 8
	minPanelWidth = 30
)

func variantLabel(name string) string {
	switch name {
	case armstrong.IterativeName:
		return "Iterative"
	case armstrong.RecursiveName:
		return "Recursive"
	}
	return name
}

func variantStyle(name string) lipgloss.Style {
	if name == armstrong.IterativeName {
		return iterativeStyle
	}
	return recursiveStyle
}

func renderPanel(title, body string, width int) string {
	if width < minPanelWidth {
		width = minPanelWidth
	}
	content := panelTitleStyle.Render(title) + "\n" + body
	return panelStyle.Width(width - 2).Render(content)
}

func (m Model) renderStatus() string {
	switch {
	case m.lastError != nil:
		if apperrors.IsValidationError(m.lastError) {
			return errorStyle.Render("Status: " + apperrors.InvalidInputMessage)
		}
		return errorStyle.Render("Error: " + m.lastError.Error())
	case m.status != nil && m.status.IsArmstrong:
		return successStyle.Render(fmt.Sprintf("Status: %s is an Armstrong number ✔", format.FormatUint(m.status.Candidate)))
	case m.status != nil:
		return errorStyle.Render(fmt.Sprintf("Status: %s is not an Armstrong number ✖", format.FormatUint(m.status.Candidate)))
	}
	return dimStyle.Render("Enter a number and press enter.")
}

// renderComparison draws the two averages of the last run as bars.
func (m Model) renderComparison(width int) string {
	if m.comparison == nil {
		return renderPanel("Mean Execution Time", dimStyle.Render("no run yet"), width)
	}
	res := *m.comparison
	iter, rec := res.IterativeMillis(), res.RecursiveMillis()
	scale := chart.Max([]float64{iter, rec})
	barWidth := max(width-30, 5)

	var b strings.Builder
	for i, row := range []struct {
		name string
		ms   float64
	}{{armstrong.IterativeName, iter}, {armstrong.RecursiveName, rec}} {
		if i > 0 {
			b.WriteString("\n")
		}
		bar := chart.Bar(row.ms, scale, barWidth)
		pad := spaces(barWidth - len([]rune(bar)))
		fmt.Fprintf(&b, "%-10s %s%s %s ms", variantLabel(row.name),
			variantStyle(row.name).Render(bar), pad, format.FormatMillis(row.ms))
	}
	return renderPanel(fmt.Sprintf("Mean Execution Time (%dx)", res.Repeat), b.String(), width)
}

// renderSeries draws one braille line per variant on a common scale.
func renderSeries(iter, rec []float64, width int) string {
	scale := chart.Max(iter, rec)
	lineWidth := max(width-16, 8)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", dimStyle.Render("max "+format.FormatMillis(scale)+" ms"))
	for _, s := range []struct {
		name   string
		values []float64
	}{{armstrong.IterativeName, iter}, {armstrong.RecursiveName, rec}} {
		for i, line := range chart.Line(s.values, scale, lineWidth, chartRows) {
			label := ""
			if i == 0 {
				label = variantLabel(s.name)
			}
			fmt.Fprintf(&b, "%-10s│%s\n", label, variantStyle(s.name).Render(line))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderHistory(width int) string {
	if len(m.history) == 0 {
		return renderPanel("Execution Time per Run", dimStyle.Render("no run yet"), width)
	}
	iter := make([]float64, len(m.history))
	rec := make([]float64, len(m.history))
	for i, r := range m.history {
		iter[i] = r.IterativeMillis()
		rec[i] = r.RecursiveMillis()
	}
	body := renderSeries(iter, rec, width) + "\n" + dimStyle.Render(fmt.Sprintf("%-10s runs 1..%d", "", len(m.history)))
	return renderPanel("Execution Time per Run", body, width)
}

func (m Model) renderTable(width int) string {
	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-19s %-3s %-9s %-9s %-7s %s",
		"Number", "Dig", "Iter ms", "Rec ms", "Repeat", "Winner")))
	rows := m.rows
	if len(rows) > maxTableRows {
		rows = rows[len(rows)-maxTableRows:]
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%-19d %-3d %-9s %-9s %-7s %s",
			r.Candidate, r.DigitCount,
			format.FormatMillis(r.IterativeMillis()), format.FormatMillis(r.RecursiveMillis()),
			fmt.Sprintf("%dx", r.Repeat),
			variantStyle(r.Winner).Render(variantLabel(r.Winner)))
	}
	return renderPanel("Results", b.String(), width)
}

func (m Model) renderTrend(width int) string {
	if len(m.trend) == 0 {
		return renderPanel("Reference Armstrong Numbers", dimStyle.Render("press r to time the reference set"), width)
	}
	iter := make([]float64, len(m.trend))
	rec := make([]float64, len(m.trend))
	digits := make([]string, len(m.trend))
	for i, t := range m.trend {
		iter[i] = t.IterativeMillis()
		rec[i] = t.RecursiveMillis()
		digits[i] = fmt.Sprintf("%d", t.DigitCount)
	}
	body := renderSeries(iter, rec, width) + "\n" +
		dimStyle.Render(fmt.Sprintf("%-10s digits %s", "", strings.Join(digits, " ")))
	return renderPanel("Reference Armstrong Numbers", body, width)
}
