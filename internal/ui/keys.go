package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Diagnostics key.Binding
	WarnOnly    key.Binding
	Tab         key.Binding
	Escape      key.Binding

	// Question
	Submit  key.Binding
	Newline key.Binding
	Clear   key.Binding
	Retry   key.Binding

	// Answer scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "?"),
			key.WithHelp("f1/?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Toggle light/dark"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "Show log tail"),
		),
		WarnOnly: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Log tail: warnings only"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch question/answer"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay"),
		),

		// Question
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Ask"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "New line"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Clear"),
		),
		Retry: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "Retry connection"),
		),

		// Answer scrolling
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "Scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/pgdn", "Page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/G", "Top/bottom"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
		),
	}
}

// helpGroups returns bindings grouped for the help overlay.
func (k keyMap) helpGroups() []helpSection {
	return []helpSection{
		{title: "Question", bindings: []key.Binding{k.Submit, k.Newline, k.Clear, k.Retry}},
		{title: "Answer", bindings: []key.Binding{k.Up, k.PageUp, k.Top}},
		{title: "General", bindings: []key.Binding{k.Tab, k.ToggleTheme, k.Diagnostics, k.WarnOnly, k.Help, k.Escape, k.Quit}},
	}
}
