package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/armcalc/internal/ui"
)

// Style variables for the dashboard, rebuilt from the ui theme by
// initTUIStyles.
var (
	panelStyle        lipgloss.Style
	panelTitleStyle   lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	dimStyle          lipgloss.Style
	accentStyle       lipgloss.Style
	iterativeStyle    lipgloss.Style
	recursiveStyle    lipgloss.Style
	successStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	inputStyle        lipgloss.Style
	inputFocusedStyle lipgloss.Style
	tableHeaderStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls
// it again after the app selected a theme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	accentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	iterativeStyle = lipgloss.NewStyle().Foreground(t.Iterative)
	recursiveStyle = lipgloss.NewStyle().Foreground(t.Recursive)
	successStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Dim).
		Padding(0, 1)

	inputFocusedStyle = inputStyle.BorderForeground(t.Accent)

	tableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Dim)
}
