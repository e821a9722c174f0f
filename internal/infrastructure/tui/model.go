package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rios0rios0/gitbridge/internal/application"
)

const (
	maxOutcomeLines = 25
	inputCharLimit  = 256
)

// outcomeMsg delivers the result of a dispatched request.
type outcomeMsg struct {
	outcome application.Outcome
}

// Model is the terminal UI. One request runs at a time; its result replaces
// the previous one.
type Model struct {
	ctx     context.Context
	handler application.Handler

	tabs       []tab
	inputs     [][]textinput.Model
	active     int
	focusIndex int

	spinner spinner.Model
	busy    bool
	// pending is a destructive request waiting for y/n.
	pending *application.Request
	outcome *application.Outcome
}

// NewModel creates the UI on top of handler.
func NewModel(ctx context.Context, handler application.Handler) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = focusedStyle

	m := &Model{
		ctx:     ctx,
		handler: handler,
		tabs:    defaultTabs(),
		spinner: s,
	}

	m.inputs = make([][]textinput.Model, len(m.tabs))
	for i, t := range m.tabs {
		m.inputs[i] = make([]textinput.Model, len(t.fields))
		for j, f := range t.fields {
			input := textinput.New()
			input.Placeholder = f.placeholder
			input.CharLimit = inputCharLimit
			input.Cursor.Style = focusedStyle
			if f.secret {
				input.EchoMode = textinput.EchoPassword
				input.EchoCharacter = '*'
			}
			m.inputs[i][j] = input
		}
	}
	m.setFocus(0)
	return m
}

// Run starts the UI and blocks until the user quits.
func Run(ctx context.Context, handler application.Handler) error {
	program := tea.NewProgram(NewModel(ctx, handler), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		m.busy = false
		m.outcome = &msg.outcome
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if m.pending != nil {
			return m, m.answer(msg.String())
		}
		if cmd, handled := m.handleKey(msg.String()); handled {
			return m, cmd
		}
	}

	return m, m.updateInputs(msg)
}

// handleKey processes navigation and submission keys. Other keys are left
// to the focused input.
func (m *Model) handleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "esc":
		return tea.Quit, true

	case "ctrl+n", "ctrl+right":
		m.switchTab(m.active + 1)
		return nil, true

	case "ctrl+p", "ctrl+left":
		m.switchTab(m.active - 1)
		return nil, true

	case "tab", "down":
		return m.setFocus(m.focusIndex + 1), true

	case "shift+tab", "up":
		return m.setFocus(m.focusIndex - 1), true

	case "enter":
		if m.focusIndex < len(m.inputs[m.active]) {
			return m.setFocus(m.focusIndex + 1), true
		}
		return m.submit(), true
	}
	return nil, false
}

// answer resolves a pending confirmation. Only "y" confirms.
func (m *Model) answer(key string) tea.Cmd {
	request := *m.pending
	m.pending = nil

	if strings.EqualFold(key, "y") {
		request.Confirmed = true
		return m.dispatch(request)
	}

	cancelled := application.Cancelled(m.tabs[m.active].title)
	m.outcome = &cancelled
	return nil
}

func (m *Model) submit() tea.Cmd {
	t := m.tabs[m.active]
	request := application.Request{Operation: t.operation}
	for i, f := range t.fields {
		f.assign(&request, strings.TrimSpace(m.inputs[m.active][i].Value()))
	}

	if t.confirm != nil {
		m.pending = &request
		m.outcome = nil
		return nil
	}
	return m.dispatch(request)
}

func (m *Model) dispatch(request application.Request) tea.Cmd {
	m.busy = true
	m.outcome = nil

	ctx, handler := m.ctx, m.handler
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return outcomeMsg{outcome: handler.Dispatch(ctx, request)}
	})
}

func (m *Model) switchTab(index int) {
	count := len(m.tabs)
	m.active = (index%count + count) % count
	m.outcome = nil
	m.setFocus(0)
}

// setFocus moves the focus; the index past the last input is the submit
// button.
func (m *Model) setFocus(index int) tea.Cmd {
	inputs := m.inputs[m.active]
	positions := len(inputs) + 1
	m.focusIndex = (index%positions + positions) % positions

	var cmds []tea.Cmd
	for i := range m.inputs {
		for j := range m.inputs[i] {
			if i == m.active && j == m.focusIndex {
				cmds = append(cmds, m.inputs[i][j].Focus())
				m.inputs[i][j].PromptStyle = focusedStyle
				m.inputs[i][j].TextStyle = focusedStyle
				continue
			}
			m.inputs[i][j].Blur()
			m.inputs[i][j].PromptStyle = noStyle
			m.inputs[i][j].TextStyle = noStyle
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	inputs := m.inputs[m.active]
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		inputs[i], cmds[i] = inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gitbridge") + "\n\n")
	b.WriteString(m.tabBar() + "\n\n")

	t := m.tabs[m.active]
	for i, f := range t.fields {
		fmt.Fprintf(&b, " %s\n %s\n\n", blurredStyle.Render(f.label+":"), m.inputs[m.active][i].View())
	}

	button := blurredButton
	if m.focusIndex == len(t.fields) {
		button = focusedButton
	}
	fmt.Fprintf(&b, " %s\n\n", button)

	switch {
	case m.busy:
		fmt.Fprintf(&b, " %s Working...\n\n", m.spinner.View())
	case m.pending != nil:
		b.WriteString(" " + warningStyle.Render(t.confirm(*m.pending)+" [y/N]") + "\n\n")
	case m.outcome != nil:
		b.WriteString(renderOutcome(*m.outcome) + "\n")
	}

	b.WriteString(helpStyle.Render(
		" ctrl+n/ctrl+p: switch tab • tab/shift+tab: navigate • enter: submit • esc: quit",
	))
	return b.String()
}

func (m *Model) tabBar() string {
	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			titles[i] = activeTabStyle.Render(t.title)
		} else {
			titles[i] = inactiveTabStyle.Render(t.title)
		}
	}
	return strings.Join(titles, " ")
}

func renderOutcome(outcome application.Outcome) string {
	var b strings.Builder

	switch outcome.Status {
	case application.StatusSuccess:
		b.WriteString(" " + successStyle.Render("✓ "+outcome.Message) + "\n")
	case application.StatusPartial:
		b.WriteString(" " + partialStyle.Render("! PARTIAL: "+outcome.Message) + "\n")
	case application.StatusCancelled:
		b.WriteString(" " + blurredStyle.Render(outcome.Message) + "\n")
	default:
		b.WriteString(" " + failureStyle.Render("✗ "+outcome.Message) + "\n")
	}

	lines := outcome.Lines
	if len(lines) > maxOutcomeLines {
		hidden := len(lines) - maxOutcomeLines
		lines = append(lines[:maxOutcomeLines:maxOutcomeLines], fmt.Sprintf("... %d more", hidden))
	}
	for _, line := range lines {
		b.WriteString("   " + line + "\n")
	}
	return b.String()
}
