// Package config handles loading and parsing the tutor configuration file.
//
// # Overview
//
// The configuration tells tutor where the inference server may be reached and
// how long to wait for it. Everything has a sensible default so the file is
// optional; most users never create one.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tutor/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/tutor/config.toml
//   - Server URLs: http://localhost:8000, http://127.0.0.1:8000
//     (android: http://localhost:8000 only)
//   - Probe timeout: 5s
//   - Chat timeout: 600s
//   - Max question length: 200 characters
//   - Log file: ~/.local/state/tutor/tutor.log
//
// # Candidate Order
//
// server_urls is an ordered candidate list. The first entry is preferred;
// when a reachability probe fails the client moves to the next entry and never
// wraps back to the start. Entries without a scheme get http:// and trailing
// slashes are removed so paths can be appended directly.
//
// # TOML Format
//
//	server_urls = ["http://localhost:8000", "http://127.0.0.1:8000"]
//	probe_timeout = "5s"
//	chat_timeout = "10m"
//	max_question_length = 200
//	log_level = "info"
//	log_file = "~/.local/state/tutor/tutor.log"
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML, unparsable
// or non-positive durations and non-http(s) server URLs are returned as errors
// so the CLI can refuse to start with a broken configuration.
package config
