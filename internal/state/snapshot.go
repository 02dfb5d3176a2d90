package state

import "unicode/utf8"

// Status is the server connectivity status shown by the UI.
type Status int

const (
	StatusUnknown Status = iota
	StatusChecking
	StatusConnected
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusConnected:
		return "connected"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Query holds the question being edited and the last rendered result.
type Query struct {
	Question   string
	Answer     string
	Submitting bool
}

// DefaultQuestionLimit caps question length when no limit is configured.
const DefaultQuestionLimit = 200

// Snapshot is one immutable view of the client state. Reduce never modifies
// its input; it returns a new Snapshot.
type Snapshot struct {
	Candidates     Candidates
	Status         Status
	LastProbeError error
	Query          Query
	QuestionLimit  int
	DarkMode       bool
	Alert          string // pending validation alert, empty when none
}

// New returns the initial snapshot: first candidate selected, status unknown.
func New(candidates Candidates, darkMode bool, questionLimit int) Snapshot {
	if questionLimit <= 0 {
		questionLimit = DefaultQuestionLimit
	}
	return Snapshot{
		Candidates:    candidates,
		Status:        StatusUnknown,
		QuestionLimit: questionLimit,
		DarkMode:      darkMode,
	}
}

// Address returns the currently selected server address.
func (s Snapshot) Address() string {
	return s.Candidates.Current()
}

// CanSubmit reports whether the submit trigger is enabled.
func (s Snapshot) CanSubmit() bool {
	return !s.Query.Submitting
}

// ProbeNeeded reports whether moving from prev to next changed the selected
// address, which is what re-runs the prober.
func ProbeNeeded(prev, next Snapshot) bool {
	return prev.Candidates.Index() != next.Candidates.Index()
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
