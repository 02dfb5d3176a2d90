package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/five82/tutor/internal/session"
	"github.com/five82/tutor/internal/state"
)

// ErrSubmitFailed reports that a headless submission ended in an error
// outcome. The error text was already written as the answer.
var ErrSubmitFailed = errors.New("submission failed")

// ErrQuestionTooLong rejects headless questions over the configured limit
// instead of sending a shortened question.
var ErrQuestionTooLong = errors.New("question is too long")

// Ask runs the connect chain once, submits question to the selected address
// and writes the answer text to w. The question is sent even when no
// candidate answered the probe. Questions over the limit are rejected, not
// shortened.
func Ask(ctx context.Context, env *Env, question string, w io.Writer) error {
	store := state.NewStore(env.Initial)

	if n, limit := utf8.RuneCountInString(question), env.Initial.QuestionLimit; n > limit {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrQuestionTooLong, n, limit)
	}
	_, typed := store.Dispatch(state.QuestionChanged{Text: question})

	if err := session.Validate(typed.Query.Question); err != nil {
		store.Dispatch(state.SubmitRejected{Message: err.Error()})
		return err
	}

	Connect(ctx, store, env.Session, nil)

	snap := store.Snapshot()
	store.Dispatch(state.SubmitStarted{})
	result := env.Session.Submit(ctx, snap.Address(), snap.Query.Question)
	_, done := store.Dispatch(result)

	if _, err := fmt.Fprintln(w, done.Query.Answer); err != nil {
		return fmt.Errorf("write answer: %w", err)
	}
	if result.Failed {
		return ErrSubmitFailed
	}
	return nil
}
