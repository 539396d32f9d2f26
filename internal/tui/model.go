package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ripasso/ripasso/internal/session"
)

// tickInterval is the timer republish period while a typing round runs.
const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model implements the Bubble Tea practice UI over a session controller.
type Model struct {
	ctrl *session.Controller

	width  int
	height int

	// Typing mode.
	input  textinput.Model
	missed bool
	tick   session.TickSnapshot

	// Conjugation mode. The grid inputs are laid out row-major matching
	// session.Cells.
	cells     []session.Cell
	gridInput []textinput.Model
	focus     int
	graded    *session.GradeResult
	wrongCell map[session.Cell]bool

	errMsg string
}

// NewModel constructs the practice UI and starts the first round.
func NewModel(ctrl *session.Controller) *Model {
	m := &Model{ctrl: ctrl}
	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.CharLimit = 64
	m.startRound()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickIfRunning())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		// Read-only republish of elapsed/WPM. The chain stops the moment
		// the typing session leaves running.
		m.tick = m.ctrl.Tick(time.Time(msg))
		if !m.tick.Running {
			return m, nil
		}
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		return m, m.switchMode()
	case "ctrl+r":
		return m, m.restartRound()
	}
	switch m.ctrl.Mode() {
	case session.ModeConjugation:
		return m.handleConjugationKey(msg)
	default:
		return m.handleTypingKey(msg)
	}
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.ctrl.Typing().Snapshot()
	if snap.State == session.TypingFinished {
		if msg.Type == tea.KeyEnter {
			return m, m.restartRound()
		}
		return m, nil
	}
	if snap.State != session.TypingRunning {
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		now := time.Now()
		outcome, err := m.ctrl.SubmitTypedWord(m.input.Value(), now)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if !outcome.Match {
			// Transient cue only; the session state is untouched.
			m.missed = true
			return m, nil
		}
		m.missed = false
		m.input.Reset()
		m.tick = m.ctrl.Tick(now)
		return m, nil
	}
	m.missed = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConjugationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.Conjugation().State()
	if state == session.ConjugationGraded {
		if msg.Type == tea.KeyEnter {
			return m, m.restartRound()
		}
		return m, nil
	}
	if state != session.ConjugationActive {
		return m, nil
	}
	switch msg.String() {
	case "tab", "down":
		m.focusCell(m.focus + 1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.focusCell(m.focus - 1)
		return m, textinput.Blink
	case "enter":
		if m.focus < len(m.gridInput)-1 {
			m.focusCell(m.focus + 1)
			return m, textinput.Blink
		}
		return m, m.submitGrid()
	}
	var cmd tea.Cmd
	m.gridInput[m.focus], cmd = m.gridInput[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) submitGrid() tea.Cmd {
	answers := make(map[session.Cell]string, len(m.cells))
	for i, cell := range m.cells {
		answers[cell] = m.gridInput[i].Value()
	}
	result, err := m.ctrl.SubmitConjugationGrid(answers)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.graded = &result
	m.wrongCell = make(map[session.Cell]bool, len(result.Mistakes))
	for _, mis := range result.Mistakes {
		m.wrongCell[session.Cell{Person: mis.Person, Form: mis.Form}] = true
	}
	for i := range m.gridInput {
		m.gridInput[i].Blur()
	}
	return nil
}

func (m *Model) switchMode() tea.Cmd {
	next := session.ModeConjugation
	if m.ctrl.Mode() == session.ModeConjugation {
		next = session.ModeTyping
	}
	if err := m.ctrl.SelectMode(next); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	return m.startRound()
}

func (m *Model) restartRound() tea.Cmd {
	m.ctrl.Reset()
	return m.startRound()
}

// startRound starts a fresh round in the active mode. Failures (empty
// dataset, malformed entry) surface as an inline error; the UI stays usable
// so the user can switch mode or retry.
func (m *Model) startRound() tea.Cmd {
	m.errMsg = ""
	m.missed = false
	m.graded = nil
	m.wrongCell = nil
	m.tick = session.TickSnapshot{}
	if err := m.ctrl.Start(time.Now()); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	switch m.ctrl.Mode() {
	case session.ModeConjugation:
		m.buildGrid()
		return textinput.Blink
	default:
		m.input.Reset()
		m.input.Focus()
		return tea.Batch(textinput.Blink, tickCmd())
	}
}

func (m *Model) buildGrid() {
	m.cells = m.ctrl.Conjugation().Cells()
	m.gridInput = make([]textinput.Model, len(m.cells))
	for i := range m.gridInput {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 40
		in.Width = gridCellWidth
		m.gridInput[i] = in
	}
	m.focus = 0
	if len(m.gridInput) > 0 {
		m.gridInput[0].Focus()
	}
}

func (m *Model) focusCell(idx int) {
	if len(m.gridInput) == 0 {
		return
	}
	if idx < 0 {
		idx = len(m.gridInput) - 1
	}
	if idx >= len(m.gridInput) {
		idx = 0
	}
	m.gridInput[m.focus].Blur()
	m.focus = idx
	m.gridInput[m.focus].Focus()
}

// tickIfRunning resumes the timer chain, used on program init.
func (m *Model) tickIfRunning() tea.Cmd {
	if m.ctrl.Typing().State() != session.TypingRunning {
		return nil
	}
	return tickCmd()
}
