// Package game tests drive the Update loop directly with key messages,
// the same way a terminal session would.
package game

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"oddmass/cmd/oddmass/ui"
	"oddmass/internal/solve"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel() Model {
	return New(99, ui.NewStyles(ui.LightTheme()))
}

// typeLine feeds a string followed by Enter into the model.
func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	if line != "" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
		m = next.(Model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	result := next.(Model)

	if result.width != 120 {
		t.Errorf("Expected width 120, got %d", result.width)
	}
	if result.height != 40 {
		t.Errorf("Expected height 40, got %d", result.height)
	}
}

func TestUpdate_EscQuits(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	result := next.(Model)

	if !result.quitting {
		t.Error("esc should set quitting")
	}
	if cmd == nil {
		t.Error("esc should return a quit command")
	}
}

func TestUpdate_FullSession(t *testing.T) {
	m := newTestModel()
	odd := m.reg.OddLabel()

	for i := 0; i < solve.MaxWeighings; i++ {
		m = typeLine(t, m, "ABCD") // left pan
		if m.phase != phasePickRight {
			t.Fatalf("weighing %d: expected phasePickRight, got %d", i+1, m.phase)
		}
		m = typeLine(t, m, "EFGH") // right pan
		if m.phase != phaseOutcome {
			t.Fatalf("weighing %d: expected phaseOutcome, got %d", i+1, m.phase)
		}
		m = typeLine(t, m, "") // acknowledge the reading
	}

	if m.phase != phaseGuess {
		t.Fatalf("expected phaseGuess after %d weighings, got %d", solve.MaxWeighings, m.phase)
	}
	if m.remaining != 0 {
		t.Errorf("expected 0 weighings left, got %d", m.remaining)
	}
	if len(m.steps) != solve.MaxWeighings {
		t.Errorf("expected %d recorded steps, got %d", solve.MaxWeighings, len(m.steps))
	}

	m = typeLine(t, m, strings.ToLower(odd.String()))
	if m.phase != phaseVerdict {
		t.Fatalf("expected phaseVerdict, got %d", m.phase)
	}
	if !m.won {
		t.Error("correct lower-case guess should win")
	}
	if rec := m.Record(); !rec.Won || rec.Guess != odd.String() {
		t.Errorf("record not finalized: %+v", rec)
	}
}

func TestUpdate_PlayAgainResets(t *testing.T) {
	m := newTestModel()

	for i := 0; i < solve.MaxWeighings; i++ {
		m = typeLine(t, m, "AB")
		m = typeLine(t, m, "CD")
		m = typeLine(t, m, "")
	}
	m = typeLine(t, m, "A")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = next.(Model)

	if m.phase != phasePickLeft {
		t.Errorf("play again should restart at phasePickLeft, got %d", m.phase)
	}
	if m.remaining != solve.MaxWeighings {
		t.Errorf("play again should reset weighings, got %d", m.remaining)
	}
	if len(m.steps) != 0 {
		t.Errorf("play again should clear steps, got %d", len(m.steps))
	}
}

func TestView_ShowsWeighingsLeft(t *testing.T) {
	m := newTestModel()
	view := m.View()
	if !strings.Contains(view, "Weighings left: 3") {
		t.Errorf("view missing weighing counter:\n%s", view)
	}
}

func TestView_VerdictRevealsAnswer(t *testing.T) {
	m := newTestModel()
	odd := m.reg.OddLabel()

	for i := 0; i < solve.MaxWeighings; i++ {
		m = typeLine(t, m, "")
		m = typeLine(t, m, "")
		m = typeLine(t, m, "")
	}
	m = typeLine(t, m, "?") // wrong guess

	view := m.View()
	if !strings.Contains(view, "The odd mass was: ") {
		t.Errorf("verdict view must reveal the answer:\n%s", view)
	}
	if !strings.Contains(view, odd.String()) {
		t.Errorf("verdict view missing %s:\n%s", odd, view)
	}
}
