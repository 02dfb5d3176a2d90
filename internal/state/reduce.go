package state

// Event is something that happened to the client: a user action or the
// completion of a network call.
type Event interface {
	isEvent()
}

// ProbeStarted marks the start of a reachability probe against Index.
type ProbeStarted struct{ Index int }

// ProbeSucceeded reports a 2xx reply from the candidate at Index.
type ProbeSucceeded struct{ Index int }

// ProbeFailed reports a failed probe of the candidate at Index.
type ProbeFailed struct {
	Index int
	Err   error
}

// QuestionChanged carries the edited question text.
type QuestionChanged struct{ Text string }

// SubmitRejected reports a submission refused before any request was sent.
type SubmitRejected struct{ Message string }

// SubmitStarted marks a chat request in flight.
type SubmitStarted struct{}

// SubmitFinished carries the text to display once the chat request ended.
// Failed is set when the outcome was an error of any kind.
type SubmitFinished struct {
	Answer string
	Failed bool
}

// ThemeToggled flips between the light and dark palettes.
type ThemeToggled struct{}

// InputCleared empties both the question and the answer.
type InputCleared struct{}

// AlertDismissed closes the validation alert.
type AlertDismissed struct{}

// RetryRequested is the user asking to probe the current address again.
type RetryRequested struct{}

func (ProbeStarted) isEvent()    {}
func (ProbeSucceeded) isEvent()  {}
func (ProbeFailed) isEvent()     {}
func (QuestionChanged) isEvent() {}
func (SubmitRejected) isEvent()  {}
func (SubmitStarted) isEvent()   {}
func (SubmitFinished) isEvent()  {}
func (ThemeToggled) isEvent()    {}
func (InputCleared) isEvent()    {}
func (AlertDismissed) isEvent()  {}
func (RetryRequested) isEvent()  {}

// Reduce applies ev to s and returns the resulting snapshot.
//
// Probe events for an index other than the selected one are stale (a probe
// overlapped with a fallback advance) and leave the snapshot unchanged.
func Reduce(s Snapshot, ev Event) Snapshot {
	switch ev := ev.(type) {
	case ProbeStarted:
		if ev.Index != s.Candidates.Index() {
			return s
		}
		s.Status = StatusChecking

	case ProbeSucceeded:
		if ev.Index != s.Candidates.Index() {
			return s
		}
		s.Status = StatusConnected
		s.LastProbeError = nil
		s.Candidates.exhausted = false

	case ProbeFailed:
		if ev.Index != s.Candidates.Index() {
			return s
		}
		s.Status = StatusError
		s.LastProbeError = ev.Err
		s.Candidates, _ = s.Candidates.Advance()

	case QuestionChanged:
		s.Query.Question = truncateRunes(ev.Text, s.QuestionLimit)

	case SubmitRejected:
		s.Alert = ev.Message

	case SubmitStarted:
		s.Query.Submitting = true

	case SubmitFinished:
		s.Query.Answer = ev.Answer
		s.Query.Submitting = false

	case ThemeToggled:
		s.DarkMode = !s.DarkMode

	case InputCleared:
		s.Query.Question = ""
		s.Query.Answer = ""

	case AlertDismissed:
		s.Alert = ""

	case RetryRequested:
		s.Candidates.exhausted = false
	}
	return s
}
