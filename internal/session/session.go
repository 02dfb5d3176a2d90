package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/tutor/internal/state"
	"github.com/five82/tutor/internal/tutor"
)

// Texts shown in the answer area and the validation alert.
const (
	MsgEmptyQuestion = "Please enter a question"
	MsgNoAnswer      = "Sorry, could not get an answer."
	MsgTimeout       = "Request timed out. The server might be busy processing your question. Try a shorter question or try again later."
	MsgUnexpected    = "An unexpected error occurred. Please try again."

	requestFailedFormat = "Request failed: %s. Please check your connection and try again."
)

const (
	DefaultProbeTimeout = 5 * time.Second
	DefaultChatTimeout  = 600 * time.Second
)

// ErrEmptyQuestion rejects a blank or whitespace-only question.
var ErrEmptyQuestion = errors.New(MsgEmptyQuestion)

// Session runs probes and submissions against a tutor server, each under its
// own deadline, and turns their outcomes into state events.
type Session struct {
	api          tutor.API
	probeTimeout time.Duration
	chatTimeout  time.Duration
}

// New returns a Session. Non-positive timeouts use the defaults.
func New(api tutor.API, probeTimeout, chatTimeout time.Duration) *Session {
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	if chatTimeout <= 0 {
		chatTimeout = DefaultChatTimeout
	}
	return &Session{api: api, probeTimeout: probeTimeout, chatTimeout: chatTimeout}
}

// Probe checks address (the candidate at index) and reports the outcome.
// Non-2xx replies, transport failures and the elapsed deadline all produce
// ProbeFailed.
func (s *Session) Probe(ctx context.Context, index int, address string) state.Event {
	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	if err := s.api.Probe(ctx, address); err != nil {
		if tutor.IsTimeout(err) {
			err = fmt.Errorf("connection timeout: %w", err)
		}
		return state.ProbeFailed{Index: index, Err: err}
	}
	return state.ProbeSucceeded{Index: index}
}

// Validate rejects questions that are empty after trimming whitespace.
func Validate(question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	return nil
}

// Submit sends question to address and returns the text to display. It
// always returns, so the caller's busy flag is cleared on every path. The
// question is sent as typed; callers validate it first.
func (s *Session) Submit(ctx context.Context, address, question string) state.SubmitFinished {
	ctx, cancel := context.WithTimeout(ctx, s.chatTimeout)
	defer cancel()

	text, err := s.api.Ask(ctx, address, question)
	answer, failed := AnswerText(text, err)
	return state.SubmitFinished{Answer: answer, Failed: failed}
}

// AnswerText maps a chat outcome to the answer shown to the user. failed is
// true for outcomes that should trigger a reconnection probe; a reply
// without a response field is a soft failure and does not.
func AnswerText(text string, err error) (answer string, failed bool) {
	switch {
	case err == nil:
		return text, false
	case errors.Is(err, tutor.ErrNoResponse):
		return MsgNoAnswer, false
	case tutor.IsTimeout(err):
		return MsgTimeout, true
	}

	desc := strings.TrimSpace(tutor.Describe(err))
	if desc == "" {
		return MsgUnexpected, true
	}
	return fmt.Sprintf(requestFailedFormat, desc), true
}
