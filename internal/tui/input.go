package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/armcalc/internal/orchestration"
)

// Input field indexes.
const (
	fieldCandidate = iota
	fieldRepeat
	fieldCount
)

func newInput(placeholder, value string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 20
	ti.Width = width
	ti.Prompt = ""
	ti.SetValue(value)
	return ti
}

// isDigitKey reports whether msg types digits only. Letters are commands.
func isDigitKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isEditKey reports whether msg edits or moves within a text field.
func isEditKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	}
	return false
}

// focusField moves the focus to field i.
func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i % fieldCount
	var cmd tea.Cmd
	for f := range m.inputs {
		if f == m.focus {
			cmd = m.inputs[f].Focus()
			continue
		}
		m.inputs[f].Blur()
	}
	return cmd
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// request builds the run request from the fields. Unparsable values
// become zero so the orchestrator reports them as invalid input.
func (m Model) request() orchestration.Request {
	n, _ := strconv.ParseUint(strings.TrimSpace(m.inputs[fieldCandidate].Value()), 10, 64)
	r, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldRepeat].Value()))
	if r < 0 {
		r = 0
	}
	return orchestration.Request{Candidate: n, Repeat: r}
}

func (m Model) renderInputs() string {
	field := func(label string, i int) string {
		style := inputStyle
		if m.focus == i {
			style = inputFocusedStyle
		}
		box := style.Render(m.inputs[i].View())
		return lipgloss.JoinHorizontal(lipgloss.Center, dimStyle.Render(label), " ", box)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		field("Number", fieldCandidate), "  ", field("Repeat", fieldRepeat))
	if m.running {
		stage := m.stage
		if stage == "" {
			stage = "starting"
		}
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, "  ",
			accentStyle.Render(m.spinner.View()+" "+stage+" "+strconv.Itoa(int(m.progress*100))+"%"))
	}
	return row
}
