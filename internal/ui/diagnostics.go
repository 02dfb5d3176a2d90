package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutor/internal/logtail"
)

// renderDiagnostics renders the tail of the log file over the main view.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	inner := max(m.width-8, 20)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Log"))
	if m.warningsOnly {
		b.WriteString(styles.MutedText.Render(" (WARN+)"))
	}
	b.WriteString(" ")
	b.WriteString(styles.MutedText.Render(truncateMiddle(m.logFile, inner-4)))
	b.WriteString("\n\n")

	// Title, blank line, footer and chrome
	room := max(m.height-10, 1)
	lines := m.visibleLogLines()
	switch {
	case m.diagnosticsErr != nil:
		b.WriteString(styles.DangerText.Render(m.diagnosticsErr.Error()))
	case len(lines) == 0:
		b.WriteString(styles.FaintText.Render("No log entries yet."))
	default:
		if len(lines) > room {
			lines = lines[len(lines)-room:]
		}
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.levelStyle(logtail.Level(line)).Render(truncate(line, inner)))
		}
	}
	b.WriteString("\n\n")
	footer := "w warnings only · any other key closes"
	if m.warningsOnly {
		footer = "w all levels · any other key closes"
	}
	b.WriteString(styles.FaintText.Render(footer))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1).
		Width(m.width - 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// visibleLogLines returns the tail lines the overlay shows.
func (m Model) visibleLogLines() []string {
	if m.warningsOnly {
		return logtail.Filter(m.diagnostics, "warn")
	}
	return m.diagnostics
}

// levelStyle colors a log line by its level.
func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.Text
	}
}
