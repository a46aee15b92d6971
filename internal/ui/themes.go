package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes for text output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is used for headings and the iterative series.
	Primary string
	// Secondary is used for labels and the recursive series.
	Secondary string
	// Success marks an Armstrong verdict and the winning variant.
	Success string
	// Warning marks durations and non-fatal notices.
	Warning string
	// Error marks failures and rejected input.
	Error string
	// Info is used for reference batch output.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;208m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;141m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;130m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;136m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;54m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables every escape code.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme is the lipgloss palette of the dashboard.
type TUITheme struct {
	Text      lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Accent    lipgloss.TerminalColor
	Iterative lipgloss.TerminalColor
	Recursive lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Dim       lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default dashboard palette.
	DarkTUITheme = TUITheme{
		Text:      lipgloss.Color("#E0E0E0"),
		Border:    lipgloss.Color("#4488FF"),
		Accent:    lipgloss.Color("#FFB347"),
		Iterative: lipgloss.Color("#4BC0C0"),
		Recursive: lipgloss.Color("#FF6384"),
		Success:   lipgloss.Color("#9ECE6A"),
		Error:     lipgloss.Color("#FF4444"),
		Dim:       lipgloss.Color("#666666"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:      lipgloss.NoColor{},
		Border:    lipgloss.NoColor{},
		Accent:    lipgloss.NoColor{},
		Iterative: lipgloss.NoColor{},
		Recursive: lipgloss.NoColor{},
		Success:   lipgloss.NoColor{},
		Error:     lipgloss.NoColor{},
		Dim:       lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the dashboard palette for the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name ("dark", "light" or "none").
// Unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case LightTheme.Name:
		currentTheme = LightTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// ColorDisabled reports whether colors are off, either by flag or through
// the NO_COLOR environment variable (https://no-color.org/).
func ColorDisabled(noColor bool) bool {
	if noColor {
		return true
	}
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// InitTheme selects the dark theme, or no colors when ColorDisabled.
func InitTheme(noColor bool) {
	if ColorDisabled(noColor) {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
