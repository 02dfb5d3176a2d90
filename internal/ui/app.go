package ui

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutor/internal/session"
	"github.com/five82/tutor/internal/state"
)

// focusArea is the pane receiving keystrokes.
type focusArea int

const (
	focusInput focusArea = iota
	focusAnswer
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Session *session.Session
	Store   *state.Store
	LogFile string // shown by the diagnostics overlay
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	session *session.Session
	store   *state.Store
	logFile string
	keys    keyMap

	// Data state
	snap state.Snapshot

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea

	// Components
	input   textarea.Model
	answer  viewport.Model
	spinner spinner.Model

	// Overlays
	modal           Modal
	showHelp        bool
	showDiagnostics bool
	warningsOnly    bool
	diagnostics     []string
	diagnosticsErr  error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	snap := opts.Store.Snapshot()
	keys := DefaultKeyMap()

	input := textarea.New()
	input.Placeholder = "Type your question here..."
	input.ShowLineNumbers = false
	input.Prompt = ""
	input.CharLimit = snap.QuestionLimit
	input.SetHeight(inputLines)
	input.KeyMap.InsertNewline = keys.Newline
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:     ctx,
		session: opts.Session,
		store:   opts.Store,
		logFile: opts.LogFile,
		keys:    keys,
		snap:    snap,
		focus:   focusInput,
		input:   input,
		answer:  viewport.New(0, 0),
		spinner: spin,
	}
	m.applyTheme()
	return m
}

// Snapshot returns the state the model is rendering.
func (m Model) Snapshot() state.Snapshot {
	return m.snap
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	// Probe the first candidate immediately on start
	return tea.Batch(requestProbeCmd, textarea.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshAnswer()
		return m, nil

	case probeRequestMsg:
		return m, m.startProbe()

	case probeResultMsg:
		return m.handleProbeResult(msg)

	case submitResultMsg:
		return m.handleSubmitResult(state.SubmitFinished(msg))

	case diagnosticsMsg:
		m.diagnostics = msg.lines
		m.diagnosticsErr = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.snap.Query.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showDiagnostics {
		return m.renderDiagnostics()
	}

	return m.renderMain()
}

// dispatch reduces ev into the store and keeps the rendered copy current.
func (m *Model) dispatch(ev state.Event) (prev, next state.Snapshot) {
	prev, next = m.store.Dispatch(ev)
	m.snap = next
	return prev, next
}

// startProbe marks the selected candidate as being checked and returns the
// command that probes it.
func (m *Model) startProbe() tea.Cmd {
	index, address := m.snap.Candidates.Index(), m.snap.Address()
	m.dispatch(state.ProbeStarted{Index: index})
	slog.Debug("probing server", "address", address, "index", index)
	return probeCmd(m.ctx, m.session, index, address)
}

// handleProbeResult reduces a probe outcome and probes again when the
// failure moved the selection to the next candidate.
func (m Model) handleProbeResult(msg probeResultMsg) (tea.Model, tea.Cmd) {
	prev, next := m.dispatch(msg.event)

	switch ev := msg.event.(type) {
	case state.ProbeSucceeded:
		if ev.Index == prev.Candidates.Index() {
			slog.Info("server connected", "address", next.Address())
		}
	case state.ProbeFailed:
		if ev.Index == prev.Candidates.Index() {
			slog.Warn("server probe failed",
				"address", prev.Address(),
				"error", ev.Err,
				"exhausted", next.Candidates.Exhausted(),
			)
		}
	}

	if state.ProbeNeeded(prev, next) {
		return m, m.startProbe()
	}
	return m, nil
}

// submit validates the question and starts the chat request.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.snap.CanSubmit() {
		return m, nil
	}

	question := m.snap.Query.Question
	if err := session.Validate(question); err != nil {
		m.dispatch(state.SubmitRejected{Message: err.Error()})
		m.modal = newAlertModal(m.snap.Alert)
		return m, nil
	}

	m.dispatch(state.SubmitStarted{})
	address := m.snap.Address()
	slog.Info("question submitted",
		"address", address,
		"status", m.snap.Status.String(),
		"length", utf8.RuneCountInString(question),
	)
	return m, tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.session, address, question))
}

// handleSubmitResult shows the outcome and re-checks the server after any
// failure.
func (m Model) handleSubmitResult(fin state.SubmitFinished) (tea.Model, tea.Cmd) {
	m.dispatch(fin)
	m.refreshAnswer()
	m.answer.GotoTop()

	if !fin.Failed {
		slog.Info("answer received", "length", utf8.RuneCountInString(fin.Answer))
		return m, nil
	}
	slog.Warn("question failed", "address", m.snap.Address(), "message", fin.Answer)
	if m.snap.Status == state.StatusChecking {
		return m, nil
	}
	return m, m.startProbe()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Overlays consume the key that closes them
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
			m.dispatch(state.AlertDismissed{})
			return m, cmd
		}
		m.modal = modal
		return m, cmd
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showDiagnostics {
		if key.Matches(msg, m.keys.WarnOnly) {
			m.warningsOnly = !m.warningsOnly
			return m, nil
		}
		m.showDiagnostics = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ToggleTheme):
		m.dispatch(state.ThemeToggled{})
		m.applyTheme()
		m.refreshAnswer()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		if m.snap.Status == state.StatusChecking {
			return m, nil
		}
		m.dispatch(state.RetryRequested{})
		return m, m.startProbe()

	case key.Matches(msg, m.keys.Clear):
		m.dispatch(state.InputCleared{})
		m.input.Reset()
		m.refreshAnswer()
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		m.diagnostics, m.diagnosticsErr = nil, nil
		return m, readLogCmd(m.logFile)

	case key.Matches(msg, m.keys.Help) && (msg.String() != "?" || m.focus == focusAnswer):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.focus == focusAnswer {
			m.toggleFocus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	if m.focus == focusAnswer {
		return m.handleAnswerKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleInputKey forwards editing keys to the question field.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.snap.Query.Question {
		m.dispatch(state.QuestionChanged{Text: value})
		if m.snap.Query.Question != value {
			m.input.SetValue(m.snap.Query.Question)
		}
	}
	return m, cmd
}

// handleAnswerKey scrolls the answer pane.
func (m Model) handleAnswerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.answer.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.answer.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.answer.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.answer.ViewDown()
	case key.Matches(msg, m.keys.Top):
		m.answer.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.answer.GotoBottom()
	}
	return m, nil
}

// toggleFocus moves keystrokes between the question and the answer.
func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusAnswer
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

// applyTheme restyles components after the dark mode flag changed.
func (m *Model) applyTheme() {
	m.theme = GetTheme(m.snap.DarkMode)
	styles := m.theme.Styles()

	m.input.FocusedStyle.Base = lipgloss.NewStyle()
	m.input.FocusedStyle.Text = styles.Text
	m.input.FocusedStyle.Placeholder = styles.FaintText
	m.input.FocusedStyle.CursorLine = styles.Text
	m.input.BlurredStyle.Base = lipgloss.NewStyle()
	m.input.BlurredStyle.Text = styles.MutedText
	m.input.BlurredStyle.Placeholder = styles.FaintText
	m.input.BlurredStyle.CursorLine = styles.MutedText
	m.spinner.Style = styles.AccentText
}

// layout sizes components to the terminal.
func (m *Model) layout() {
	inner := max(m.width-4, 10) // border and padding

	m.input.SetWidth(inner)

	fixed := headerHeight + statusHeight + commandBarHeight +
		(1 + inputLines + panelChrome) + (1 + panelChrome)
	m.answer.Width = inner
	m.answer.Height = max(m.height-fixed, minAnswerLines)
}

// refreshAnswer re-renders the answer text into the viewport.
func (m *Model) refreshAnswer() {
	if m.answer.Width <= 0 {
		return
	}
	styles := m.theme.Styles()
	m.answer.SetContent(styles.Text.Width(m.answer.Width).Render(m.snap.Query.Answer))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
