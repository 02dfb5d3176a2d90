package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutor/internal/state"
)

// Theme defines colors for the UI. There are exactly two palettes, selected
// by the dark mode flag.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Panels (status, answer)
	SurfaceAlt string // Input field
	Header     string // Title bar

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string // Primary action color
	Success string
	Warning string
	Danger  string

	// Connectivity indicator colors
	StatusColors map[state.Status]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Header)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusedPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		statusColors: t.StatusColors,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	// Components
	Header       lipgloss.Style
	Footer       lipgloss.Style
	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style

	statusColors map[state.Status]string
	muted        string
}

// StatusDot returns the style of the connectivity indicator for status.
func (s Styles) StatusDot(status state.Status) lipgloss.Style {
	color := s.statusColors[status]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// Theme names.
const (
	ThemeLight = "Light"
	ThemeDark  = "Dark"
)

// indicatorColors are shared by both palettes.
var indicatorColors = map[state.Status]string{
	state.StatusUnknown:   "#FFC107",
	state.StatusChecking:  "#999999",
	state.StatusConnected: "#4CAF50",
	state.StatusError:     "#F44336",
}

// GetTheme returns the dark or light palette.
func GetTheme(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return []string{ThemeLight, ThemeDark}
}

func lightTheme() Theme {
	return Theme{
		Name: ThemeLight,

		Background: "#F5F7FA",
		Surface:    "#FFFFFF",
		SurfaceAlt: "#FFFFFF",
		Header:     "#4776E6",

		Border:      "#C9D2E3",
		BorderFocus: "#4776E6",

		Text:    "#333333",
		Muted:   "#666666",
		Faint:   "#999999",
		Accent:  "#4776E6",
		Success: "#4CAF50",
		Warning: "#8E54E9",
		Danger:  "#E53935",

		StatusColors: indicatorColors,
	}
}

func darkTheme() Theme {
	return Theme{
		Name: ThemeDark,

		Background: "#121212",
		Surface:    "#1E1E1E",
		SurfaceAlt: "#2A2A2A",
		Header:     "#141E30",

		Border:      "#243B55",
		BorderFocus: "#3D5AFE",

		Text:    "#FFFFFF",
		Muted:   "#BBBBBB",
		Faint:   "#777777",
		Accent:  "#3D5AFE",
		Success: "#4CAF50",
		Warning: "#FFC107",
		Danger:  "#FF6E6E",

		StatusColors: indicatorColors,
	}
}
