package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"oddmass/internal/mass"
	"oddmass/internal/scale"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("12 Masses Puzzle"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Twelve masses, one odd, three weighings."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Weighings left: %d", m.remaining)))
	b.WriteString("\n\n")

	switch m.phase {
	case phasePickLeft:
		b.WriteString(m.styles.Prompt.Render("Which masses go on the left pan?"))
		b.WriteString("\n")
		b.WriteString(m.input.View())

	case phasePickRight:
		b.WriteString(m.styles.Body.Render("Left pan: "))
		b.WriteString(m.styles.MassLabel.Render(mass.Names(m.left)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Prompt.Render("Which masses go on the right pan?"))
		b.WriteString("\n")
		b.WriteString(m.input.View())

	case phaseOutcome:
		b.WriteString(m.styles.Body.Render("Left pan:  "))
		b.WriteString(m.styles.MassLabel.Render(mass.Names(m.left)))
		b.WriteString("\n")
		b.WriteString(m.styles.Body.Render("Right pan: "))
		b.WriteString(m.styles.MassLabel.Render(mass.Names(m.right)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Body.Render("The balance reads: "))
		b.WriteString(m.outcomeStyle().Render(m.lastOutcome.String()))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("press enter to continue"))

	case phaseGuess:
		b.WriteString(m.renderHistory())
		b.WriteString(m.styles.Prompt.Render("No weighings left. Which mass is the odd one?"))
		b.WriteString("\n")
		b.WriteString(m.input.View())

	case phaseVerdict:
		b.WriteString(m.renderHistory())
		if m.won {
			b.WriteString(m.styles.Win.Render("You found the odd mass!"))
		} else {
			b.WriteString(m.styles.Lose.Render("That is not the odd mass."))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Body.Render("The odd mass was: "))
		b.WriteString(m.styles.MassLabel.Render(m.reg.OddLabel().String()))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Muted.Render("p: play again  q: quit"))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// renderHistory shows the three completed weighings.
func (m Model) renderHistory() string {
	var b strings.Builder
	for i, step := range m.steps {
		line := fmt.Sprintf("%d. %s vs %s: %s",
			i+1, mass.Names(step.Left), mass.Names(step.Right), step.Outcome)
		b.WriteString(m.styles.Muted.Render(line))
		b.WriteString("\n")
	}
	if len(m.steps) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// outcomeStyle picks the style matching the last balance reading.
func (m Model) outcomeStyle() lipgloss.Style {
	switch m.lastOutcome {
	case scale.LeftHeavy:
		return m.styles.LeftHeavy
	case scale.RightHeavy:
		return m.styles.RightHeavy
	default:
		return m.styles.Balanced
	}
}
