package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 80
)

// Fixed heights of the stacked regions.
const (
	headerHeight     = 1
	statusHeight     = 1
	commandBarHeight = 1

	// inputLines is the visible height of the question field.
	inputLines = 3

	// panelChrome is the border rows around a panel.
	panelChrome = 2

	// minAnswerLines keeps the answer pane usable on short terminals.
	minAnswerLines = 3
)

// Diagnostics overlay limits.
const (
	// DiagnosticsLineLimit is the number of log lines read for the overlay.
	DiagnosticsLineLimit = 200
)
