package state

import "errors"

// ErrNoCandidates is returned when a candidate list is empty.
var ErrNoCandidates = errors.New("candidate address list is empty")

// Candidates is the ordered server address list plus the selected index.
// The first address is preferred. The index only moves forward and stops at
// the last address.
type Candidates struct {
	urls      []string
	index     int
	exhausted bool
}

// NewCandidates returns a list selecting the first address.
func NewCandidates(urls []string) (Candidates, error) {
	if len(urls) == 0 {
		return Candidates{}, ErrNoCandidates
	}
	dup := make([]string, len(urls))
	copy(dup, urls)
	return Candidates{urls: dup}, nil
}

// Current returns the selected address.
func (c Candidates) Current() string {
	if len(c.urls) == 0 {
		return ""
	}
	return c.urls[c.index]
}

// Index returns the selected position.
func (c Candidates) Index() int {
	return c.index
}

// Len returns the number of candidates.
func (c Candidates) Len() int {
	return len(c.urls)
}

// IsLast reports whether the last candidate is selected.
func (c Candidates) IsLast() bool {
	return c.index >= len(c.urls)-1
}

// Exhausted reports whether an advance was refused at the last candidate.
func (c Candidates) Exhausted() bool {
	return c.exhausted
}

// Advance selects the next candidate. At the last candidate it returns the
// list marked exhausted and false.
func (c Candidates) Advance() (Candidates, bool) {
	if c.IsLast() {
		c.exhausted = true
		return c, false
	}
	c.index++
	return c, true
}
