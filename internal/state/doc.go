// Package state models the tutor client state as immutable snapshots.
//
// # Overview
//
// All client state fits in one small record: the candidate server addresses
// with the selected index, the connectivity status, the question and answer,
// the busy flag, the theme and a pending validation alert. Instead of mutating
// fields from wherever an event happens, every change goes through one
// function:
//
//	next := state.Reduce(prev, event)
//
// Reduce is pure. Store is a mutex-guarded holder around it; the Bubble Tea
// model dispatches into a Store from its Update method, and the headless
// commands (tutor ask, tutor probe) share the same Store type.
//
// # Candidates
//
// Candidates is the fallback state machine:
//
//	index 0 ──probe fails──> index 1 ──probe fails──> ... ──> last (exhausted)
//
// Advance moves one step and returns false at the last address, where the
// list is marked exhausted. It never wraps. A retry or a successful probe
// re-arms the exhausted flag.
//
// # Status
//
//	Unknown ──ProbeStarted──> Checking ──ProbeSucceeded──> Connected
//	                              └──────ProbeFailed─────> Error (+ Advance)
//
// Only probe events change the status, and only ProbeFailed moves the index.
// Probe events carry the index they probed; an event for an index that is no
// longer selected is stale and ignored.
//
// ProbeNeeded(prev, next) reports that the selected index changed, which is
// the signal for the caller to probe the new address.
//
// # Query
//
//	QuestionChanged ── edits (capped at QuestionLimit runes)
//	SubmitRejected  ── validation alert, nothing else changes
//	SubmitStarted   ── Submitting = true (trigger disabled)
//	SubmitFinished  ── Answer set, Submitting = false on every outcome
//	InputCleared    ── question and answer emptied
//
// # Theme
//
// ThemeToggled flips DarkMode. Toggling twice yields the original snapshot.
package state
