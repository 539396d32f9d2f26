package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ripasso/ripasso/internal/session"
)

const gridCellWidth = 14

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	resultStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.ctrl.Mode() {
	case session.ModeConjugation:
		body = m.renderConjugation()
	default:
		body = m.renderTyping()
	}

	sections := []string{m.renderModeLine(), "", body}
	if m.errMsg != "" {
		sections = append(sections, "", errorStyle.Render(m.errMsg))
	}
	sections = append(sections, "", m.renderFooter())
	content := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderModeLine() string {
	typing := "typing"
	conjugation := "conjugation"
	if m.ctrl.Mode() == session.ModeConjugation {
		conjugation = headerStyle.Render(conjugation)
		typing = pendingStyle.Render(typing)
	} else {
		typing = headerStyle.Render(typing)
		conjugation = pendingStyle.Render(conjugation)
	}
	return typing + pendingStyle.Render(" · ") + conjugation
}

func (m *Model) renderTyping() string {
	snap := m.ctrl.Typing().Snapshot()
	if snap.State == session.TypingFinished {
		return m.renderTypingResult()
	}
	if snap.State != session.TypingRunning {
		return pendingStyle.Render("no round in progress")
	}

	words := m.ctrl.Typing().Words()
	styled := make([]styledWord, 0, len(words))
	for i, w := range words {
		switch {
		case i < snap.Index:
			styled = append(styled, newStyledWord(w, correctStyle.Render(w)))
		case i == snap.Index:
			styled = append(styled, newStyledWord(w, currentWordStyle.Render(w)))
		default:
			styled = append(styled, newStyledWord(w, pendingStyle.Render(w)))
		}
	}
	queue := wrapWords(styled, m.contentWidth())

	input := m.input.View()
	if m.missed {
		input += "  " + incorrectStyle.Render("✗")
	}
	return queue + "\n\n" + input
}

func (m *Model) renderTypingResult() string {
	result, err := m.ctrl.Typing().Finish()
	if err != nil {
		return pendingStyle.Render("no round in progress")
	}
	lines := []string{
		resultStyle.Render("Round complete"),
		"",
		fmt.Sprintf("Words     %d/%d", result.Correct, result.RoundSize),
		fmt.Sprintf("Time      %.1fs", result.ElapsedSeconds),
		fmt.Sprintf("WPM       %d", result.WPM),
		fmt.Sprintf("Accuracy  %d%%", result.Accuracy),
		"",
		footerStyle.Render("enter: new round"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderConjugation() string {
	conj := m.ctrl.Conjugation()
	if conj.State() == session.ConjugationIdle {
		return pendingStyle.Render("no round in progress")
	}

	persons := conj.Persons()
	forms := conj.Forms()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Conjugate: " + conj.Verb()))
	b.WriteString("\n\n")

	labelWidth := maxLen(persons) + 2
	b.WriteString(strings.Repeat(" ", labelWidth))
	for _, form := range forms {
		b.WriteString(labelStyle.Render(pad(form, gridCellWidth+2)))
	}
	b.WriteString("\n")

	for pi, person := range persons {
		b.WriteString(labelStyle.Render(pad(person, labelWidth)))
		for fi := range forms {
			idx := pi*len(forms) + fi
			b.WriteString(padStyled(m.renderGridCell(idx), gridCellWidth+2))
		}
		b.WriteString("\n")
	}

	if m.graded != nil {
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(fmt.Sprintf("Score %d/%d", m.graded.Correct, m.graded.Total)))
		for _, mis := range m.graded.Mistakes {
			b.WriteString("\n")
			b.WriteString(incorrectStyle.Render(fmt.Sprintf("  %s %s → %s", mis.Person, mis.Form, mis.Expected)))
		}
		b.WriteString("\n\n")
		b.WriteString(footerStyle.Render("enter: new round"))
	}
	return b.String()
}

func (m *Model) renderGridCell(idx int) string {
	if idx >= len(m.cells) {
		return ""
	}
	if m.graded == nil {
		return m.gridInput[idx].View()
	}
	value := m.gridInput[idx].Value()
	if m.wrongCell[m.cells[idx]] {
		if strings.TrimSpace(value) == "" {
			value = "—"
		}
		return incorrectStyle.Render(value)
	}
	return correctStyle.Render(value)
}

func (m *Model) renderFooter() string {
	var segments []string
	if m.ctrl.Mode() == session.ModeTyping {
		snap := m.ctrl.Typing().Snapshot()
		if snap.State == session.TypingRunning {
			segments = append(segments,
				fmt.Sprintf("Progress %d/%d", snap.Index, snap.RoundSize),
				fmt.Sprintf("%.1fs", m.tick.ElapsedSeconds),
				fmt.Sprintf("%d WPM", m.tick.WPM),
			)
		}
	}
	segments = append(segments, "ctrl+t: mode", "ctrl+r: restart", "ctrl+c: quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func maxLen(values []string) int {
	max := 0
	for _, v := range values {
		if w := runewidth.StringWidth(v); w > max {
			max = w
		}
	}
	return max
}

// pad right-pads plain text to width.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padStyled right-pads styled text using its visible width.
func padStyled(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
