// Package session runs the two network operations of the tutor client and
// maps their outcomes to state events.
//
// Probe wraps a reachability check in a 5 second deadline and returns
// ProbeSucceeded or ProbeFailed for the probed candidate index. Submit wraps a
// chat request in a 600 second deadline and always returns a SubmitFinished
// whose Answer is what the user sees:
//
//	success with response text   -> the text, unchanged
//	success without response     -> "Sorry, could not get an answer."
//	deadline elapsed             -> the timeout message
//	non-2xx or transport failure -> "Request failed: <reason>. ..."
//
// SubmitFinished.Failed tells the caller to re-probe the current address.
// Validation of the question happens before Submit, in Validate.
package session
