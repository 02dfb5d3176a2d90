package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutor/internal/state"
)

// statusLabels are the indicator texts for each connectivity status.
var statusLabels = map[state.Status]string{
	state.StatusUnknown:   "Server status unknown",
	state.StatusChecking:  "Checking server...",
	state.StatusConnected: "Server connected",
	state.StatusError:     "Server connection failed",
}

// statusLabel returns the indicator text for status.
func statusLabel(status state.Status) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return statusLabels[state.StatusUnknown]
}

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	title := "AI Tutor"
	mode := "☀ " + ThemeLight
	if m.snap.DarkMode {
		mode = "☾ " + ThemeDark
	}

	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(mode)-2, 1)
	return styles.Header.Width(m.width).Render(title + strings.Repeat(" ", gap) + mode)
}

// renderStatus renders the connectivity indicator and the selected address.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	line := m.theme.statusBar(m.width, 2)
	compact := m.width < LayoutCompactWidth

	status := m.snap.Status
	line.add("● "+statusLabel(status), styles.StatusDot(status))

	if status == state.StatusError {
		if reason := classifyConnectionError(m.snap.LastProbeError); reason != "" {
			line.add(reason, styles.DangerText)
		}
	}

	addrLimit := 48
	if compact {
		addrLimit = 24
	}
	addr := truncateMiddle(m.snap.Address(), addrLimit)
	if n := m.snap.Candidates.Len(); n > 1 {
		addr = fmt.Sprintf("%s (%d/%d)", addr, m.snap.Candidates.Index()+1, n)
	}
	line.add(addr, styles.MutedText)

	if status == state.StatusError && m.snap.Candidates.Exhausted() && !compact {
		line.add("ctrl+r to retry", styles.FaintText)
	}

	return line.String()
}

// classifyConnectionError returns a short label for the last probe failure.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	case strings.Contains(msg, "status"):
		return "BAD STATUS"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	line := m.theme.statusBar(m.width, 2)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"enter", "Ask"},
		{"ctrl+l", "Clear"},
		{"ctrl+r", "Retry"},
		{"ctrl+t", "Theme"},
		{"tab", "Focus"},
		{"f1", "Help"},
	}
	if m.snap.Query.Submitting {
		commands[0].desc = "Waiting"
	}
	if m.width < LayoutCompactWidth {
		commands = commands[:3]
	}

	for _, c := range commands {
		keyStyle := styles.AccentText
		if c.desc == "Waiting" {
			keyStyle = styles.FaintText
		}
		line.hint(c.key, keyStyle, c.desc, styles.MutedText)
	}
	return line.String()
}
