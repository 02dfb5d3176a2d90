package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderInputPanel())
	b.WriteString("\n")
	b.WriteString(m.renderAnswerPanel())

	return b.String()
}

// panelStyle returns the bordered style for a pane, highlighted when focused.
func (m Model) panelStyle(focused bool) lipgloss.Style {
	styles := m.theme.Styles()
	if focused {
		return styles.FocusedPanel.Width(m.width - 2)
	}
	return styles.Panel.Width(m.width - 2)
}

// renderInputPanel renders the question field with its length counter.
func (m Model) renderInputPanel() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Render("Question")
	counter := styles.FaintText.Render(
		formatCount(len([]rune(m.snap.Query.Question)), m.snap.QuestionLimit),
	)
	gap := max(m.width-6-lipgloss.Width(title)-lipgloss.Width(counter), 1)
	heading := title + strings.Repeat(" ", gap) + counter

	body := heading + "\n" + m.input.View()
	return m.panelStyle(m.focus == focusInput).Render(body)
}

// renderAnswerPanel renders the answer, a busy indicator or a placeholder.
func (m Model) renderAnswerPanel() string {
	styles := m.theme.Styles()

	heading := styles.AccentText.Render("Answer")
	if !m.snap.Query.Submitting && m.snap.Query.Answer != "" && m.answer.TotalLineCount() > m.answer.Height {
		heading += styles.FaintText.Render(formatScroll(m.answer.ScrollPercent()))
	}

	var body string
	switch {
	case m.snap.Query.Submitting:
		body = m.spinner.View() + " " + styles.MutedText.Render("Thinking...")
		body += strings.Repeat("\n", max(m.answer.Height-1, 0))
	case m.snap.Query.Answer == "":
		body = styles.FaintText.Render("Your answer will appear here.")
		body += strings.Repeat("\n", max(m.answer.Height-1, 0))
	default:
		body = m.answer.View()
	}

	return m.panelStyle(m.focus == focusAnswer).Render(heading + "\n" + body)
}
