// Package game provides the interactive TUI for playing the puzzle by
// hand. The functionality is split across files in the usual Elm shape:
//   - model.go: Types, Init, Update loop (this file)
//   - view.go: Rendering functions
package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"oddmass/cmd/oddmass/ui"
	"oddmass/internal/mass"
	"oddmass/internal/scale"
	"oddmass/internal/session"
	"oddmass/internal/solve"
)

// phase is the TUI state machine position within one play session.
type phase int

const (
	phasePickLeft phase = iota
	phasePickRight
	phaseOutcome
	phaseGuess
	phaseVerdict
)

// Model is the bubbletea model for a manual play session.
type Model struct {
	reg    *mass.Registry
	rng    *rand.Rand
	record *session.Record
	styles ui.Styles
	input  textinput.Model

	phase       phase
	remaining   int
	left        []mass.Label
	right       []mass.Label
	lastOutcome scale.Outcome
	steps       []solve.Step
	guess       string
	won         bool

	width    int
	height   int
	quitting bool
}

// New creates a play session model. A zero seed draws one from the clock.
func New(seed int64, styles ui.Styles) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	input := textinput.New()
	input.Placeholder = "e.g. ABCD"
	input.CharLimit = 32
	input.Focus()

	m := Model{
		rng:    rand.New(rand.NewSource(seed)),
		styles: styles,
		input:  input,
	}
	m.startRun()
	return m
}

// startRun begins a fresh puzzle against a new registry.
func (m *Model) startRun() {
	m.reg = mass.NewRegistry(m.rng)
	m.record = session.NewRecord(session.ModeManual)
	m.phase = phasePickLeft
	m.remaining = solve.MaxWeighings
	m.left = nil
	m.right = nil
	m.steps = nil
	m.guess = ""
	m.won = false
	m.input.SetValue("")
	m.input.Placeholder = "e.g. ABCD"
}

// Record returns the session record accumulated so far.
func (m Model) Record() *session.Record { return m.record }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.advance()
		}
		if m.phase == phaseOutcome || m.phase == phaseVerdict {
			return m.handleBareKey(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advance moves the state machine forward on Enter.
func (m Model) advance() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePickLeft:
		m.left = m.reg.ParseSelection(m.input.Value())
		m.input.SetValue("")
		m.phase = phasePickRight

	case phasePickRight:
		m.right = m.reg.ParseSelection(m.input.Value())
		m.input.SetValue("")
		m.lastOutcome = scale.Weigh(m.reg, m.left, m.right)
		step := solve.Step{Left: m.left, Right: m.right, Outcome: m.lastOutcome}
		m.steps = append(m.steps, step)
		m.record.Steps = append(m.record.Steps, step)
		m.remaining--
		m.phase = phaseOutcome

	case phaseOutcome:
		if m.remaining == 0 {
			m.input.Placeholder = "one letter"
			m.phase = phaseGuess
		} else {
			m.phase = phasePickLeft
		}

	case phaseGuess:
		m.guess = strings.ToUpper(strings.TrimSpace(m.input.Value()))
		m.input.SetValue("")
		m.won = m.guess == m.reg.OddLabel().String()
		m.record.Finish(m.guess, m.reg.OddLabel(), m.won)
		m.phase = phaseVerdict

	case phaseVerdict:
		m.startRun()
	}
	return m, nil
}

// handleBareKey handles single-key shortcuts on the read-only screens.
func (m Model) handleBareKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "p":
		if m.phase == phaseVerdict {
			m.startRun()
		}
	}
	return m, nil
}
