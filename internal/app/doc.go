// Package app provides the orchestration layer for the tutor application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the HTTP
// session and the UI. It serves as the composition root where all
// dependencies are initialized and connected, and it also hosts the headless
// drivers used by the `tutor ask` and `tutor probe` commands.
//
// # Architecture
//
//  1. Load ~/.config/tutor/config.toml (candidate URLs, timeouts, limits)
//  2. Apply command-line overrides (--server, --log-level, --log-file)
//  3. Open the log file and install it as the slog default
//  4. Read preferences and resolve the initial theme (termenv in auto mode)
//  5. Build the tutor.Client, session.Session and initial state.Snapshot
//  6. Hand everything to ui.Run, or to Connect/Ask for headless use
//
// # Components
//
//   - app.go: Options, Setup and the TUI Run function
//   - connect.go: the fallback chain driver used by headless commands
//   - ask.go: one-shot question submission
//
// # Connect Chain
//
//	┌────────────────────────────────────────┐
//	│ Connect()                              │
//	│  ├─> store.Dispatch(ProbeStarted)      │
//	│  ├─> session.Probe(current address)    │
//	│  ├─> store.Dispatch(result)            │
//	│  └─> ProbeNeeded(prev, next)?          │
//	│        yes: probe the new address      │
//	│        no:  connected or exhausted     │
//	└────────────────────────────────────────┘
//
// The TUI follows the same rule inside its Update loop: after reducing a probe
// result it probes again whenever the selected index changed.
//
// # Error Handling
//
// Fatal errors (returned from Setup/Run):
//   - Configuration file unreadable or invalid
//   - Server URL overrides that are not absolute http(s) URLs
//   - Log file cannot be created
//
// Everything after startup is recoverable: failed probes move through the
// candidate list and failed submissions become answer text.
//
// # Dependencies
//
//   - config: Loads and validates the configuration file
//   - prefs: Reads the initial theme preference
//   - logging: slog setup
//   - tutor: HTTP client for the inference server
//   - session: Probe and submit lifecycles with deadlines
//   - state: Snapshot, reducer and Store
//   - ui: Terminal user interface (TUI) implementation
package app
