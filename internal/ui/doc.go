// Package ui provides the terminal user interface for tutor.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds a copy of the current
// state.Snapshot and a pointer to the state.Store; every change goes through
// Store.Dispatch so the rendered snapshot and the store never diverge.
// Network calls run as tea.Cmds and come back as messages, so probe and
// chat completions are reduced on the event loop like key presses.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key handling and the Run function
//   - commands.go: messages and the probe, submit and log tail commands
//   - header.go: title bar, connectivity indicator and command bar
//   - bar.go: full-width lines painted on the theme surface
//   - panels.go: question and answer panes
//   - help.go, modal.go, diagnostics.go: overlays
//   - theme.go: the light and dark palettes
//   - keys.go: key bindings
//
// # Screen Layout
//
//	┌──────────────────────────────────────────────┐
//	│ AI Tutor                             ☀ Light │
//	│ ● Server connected  http://localhost:8000    │
//	│ enter Ask  ctrl+l Clear  ctrl+r Retry ...    │
//	│ ╭ Question ─────────────────────── 12/200 ╮  │
//	│ │ What is 2+2?                            │  │
//	│ ╰─────────────────────────────────────────╯  │
//	│ ╭ Answer ─────────────────────────────────╮  │
//	│ │ 4                                       │  │
//	│ ╰─────────────────────────────────────────╯  │
//	└──────────────────────────────────────────────┘
//
// # Connectivity
//
// Init probes the first candidate. When a probe result moves the selection
// (state.ProbeNeeded), the next candidate is probed at once; after the last
// candidate fails the indicator stays red until ctrl+r. A failed question
// re-probes the current address.
//
// # Usage
//
//	err := ui.Run(ui.Options{
//		Context: ctx,
//		Session: sess,
//		Store:   state.NewStore(initial),
//		LogFile: cfg.LogFile,
//	})
package ui
