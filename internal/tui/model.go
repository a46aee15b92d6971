package tui

import (
	"context"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/config"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/orchestration"
	"github.com/agbru/armcalc/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	defaultWidth = 100
	tickInterval = time.Second
	// wideLayout is the width from which the panels sit in two columns.
	wideLayout = 140
)

// Model is the root bubbletea model of the dashboard.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	keymap  KeyMap
	help    help.Model
	spinner spinner.Model
	header  HeaderModel
	metrics MetricsModel

	orchestrator *orchestration.Orchestrator
	session      *orchestration.Session
	reference    []armstrong.ReferenceEntry
	ref          *programRef

	ctx    context.Context
	cancel context.CancelFunc

	status     *orchestration.EvaluationResult
	comparison *orchestration.EvaluationResult
	history    []orchestration.EvaluationResult
	rows       []orchestration.EvaluationResult
	trend      []orchestration.ReferenceTiming
	lastError  error

	running  bool
	stage    string
	progress float64

	width    int
	height   int
	quitting bool
	exitCode int
}

// NewModel creates the dashboard model. The candidate and repeat fields
// start with cfg.N (when set) and cfg.Repeat.
func NewModel(parentCtx context.Context, o *orchestration.Orchestrator, session *orchestration.Session, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	candidate := ""
	if cfg.HasCandidate() {
		candidate = strconv.FormatUint(cfg.N, 10)
	}
	repeat := cfg.Repeat
	if repeat <= 0 {
		repeat = config.DefaultRepeat
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	m := Model{
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
		header:       NewHeaderModel(version, sysmon.CPUModel()),
		metrics:      NewMetricsModel(),
		orchestrator: o,
		session:      session,
		reference:    cfg.ReferenceTable(),
		ref:          &programRef{},
		ctx:          ctx,
		cancel:       cancel,
		history:      session.History(),
		width:        defaultWidth,
		exitCode:     apperrors.ExitSuccess,
	}
	m.inputs[fieldCandidate] = newInput("e.g. 9474", candidate, 20)
	m.inputs[fieldRepeat] = newInput("runs", strconv.Itoa(repeat), 10)
	m.focusField(fieldCandidate)
	m.header.SetRuns(session.Len())
	return m
}

// Init starts the cursor blink, the sampling ticker and the context
// watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		tickCmd(),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.metrics.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case StatusMsg:
		res := msg.Result
		m.status = &res
		m.lastError = nil
		return m, nil

	case ComparisonMsg:
		res := msg.Result
		m.comparison = &res
		return m, nil

	case HistoryMsg:
		m.history = msg.History
		m.header.SetRuns(len(msg.History))
		return m, nil

	case TableRowMsg:
		m.rows = append(m.rows, msg.Result)
		return m, nil

	case ReferenceTrendMsg:
		m.trend = msg.Timings
		return m, nil

	case InvalidInputMsg:
		m.lastError = msg.Err
		return m, nil

	case ErrorMsg:
		m.lastError = msg.Err
		return m, nil

	case ProgressMsg:
		m.stage = msg.Update.Stage
		m.progress = msg.Update.Value()
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case RunDoneMsg:
		m.running = false
		m.stage = ""
		m.progress = 0
		if msg.Err != nil && !apperrors.IsValidationError(msg.Err) {
			m.lastError = msg.Err
		}
		return m, nil

	case ReferenceDoneMsg:
		m.running = false
		m.stage = ""
		m.progress = 0
		if msg.Err != nil {
			m.lastError = msg.Err
			return m, nil
		}
		m.trend = msg.Timings
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil

	case ContextCancelledMsg:
		if m.quitting {
			return m, nil
		}
		if apperrors.IsContextError(msg.Err) && m.exitCode == apperrors.ExitSuccess {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit
	}

	return m, m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()

	case key.Matches(msg, m.keymap.Run):
		if m.running {
			return m, nil
		}
		m.running = true
		m.lastError = nil
		return m, runCmd(m.ctx, m.ref, m.orchestrator, m.session, m.request(), m.reference)

	case key.Matches(msg, m.keymap.Switch):
		return m, m.focusField(m.focus + 1)

	case isDigitKey(msg), isEditKey(msg):
		return m, m.updateFocusedInput(msg)

	case key.Matches(msg, m.keymap.Reference):
		if m.running {
			return m, nil
		}
		repeat := m.request().Repeat
		if repeat <= 0 {
			m.lastError = apperrors.NewInvalidInput("repeat")
			return m, nil
		}
		m.running = true
		m.lastError = nil
		return m, referenceCmd(m.ctx, m.orchestrator, m.referenceOrDefault(), repeat)

	case key.Matches(msg, m.keymap.ClearError):
		m.lastError = nil
		return m, nil

	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// referenceOrDefault returns the configured table, or the canonical set
// when the reference batch was disabled for runs.
func (m Model) referenceOrDefault() []armstrong.ReferenceEntry {
	if len(m.reference) > 0 {
		return m.reference
	}
	return armstrong.ReferenceSet()
}

// View renders the dashboard.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.renderInputs(),
		m.renderStatus(),
	)

	var body string
	if width >= wideLayout {
		col := width / 2
		left := lipgloss.JoinVertical(lipgloss.Left, m.renderComparison(col), m.renderTable(col))
		right := lipgloss.JoinVertical(lipgloss.Left, m.renderHistory(width-col), m.renderTrend(width-col))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderComparison(width), m.renderHistory(width), m.renderTable(width), m.renderTrend(width))
	}

	system := renderPanel("System", m.metrics.View(), width)
	return lipgloss.JoinVertical(lipgloss.Left, top, body, system, m.help.View(m.keymap))
}

// ExitCode returns the exit code the dashboard ended with.
func (m Model) ExitCode() int {
	return m.exitCode
}

// Run starts the dashboard and blocks until it quits. Runs append to
// session.
func Run(ctx context.Context, o *orchestration.Orchestrator, session *orchestration.Session, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, o, session, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		if apperrors.IsContextError(err) || ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	if fm, ok := finalModel.(Model); ok {
		return fm.ExitCode()
	}
	return apperrors.ExitSuccess
}

// runCmd performs one orchestrated run. Presentation arrives as messages
// through ref before the returned RunDoneMsg.
func runCmd(ctx context.Context, ref *programRef, o *orchestration.Orchestrator, session *orchestration.Session, req orchestration.Request, reference []armstrong.ReferenceEntry) tea.Cmd {
	return func() tea.Msg {
		presenter := &TUIResultPresenter{ref: ref}
		opts := orchestration.RunOptions{
			Reference: reference,
			Reporter:  &TUIProgressReporter{ref: ref},
		}
		_, err := o.Run(ctx, session, req, presenter, opts, io.Discard)
		if err != nil && !apperrors.IsValidationError(err) {
			presenter.HandleError(err, io.Discard)
		}
		return RunDoneMsg{Err: err}
	}
}

// referenceCmd times the reference set without touching the session.
func referenceCmd(ctx context.Context, o *orchestration.Orchestrator, entries []armstrong.ReferenceEntry, repeat int) tea.Cmd {
	return func() tea.Msg {
		timings, err := o.RunReferenceBatch(ctx, entries, repeat)
		return ReferenceDoneMsg{Timings: timings, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			HeapAlloc:    ms.HeapAlloc,
			Sys:          ms.Sys,
			NumGC:        ms.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
