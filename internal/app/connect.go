package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/tutor/internal/session"
	"github.com/five82/tutor/internal/state"
)

// Attempt describes one probe of the connect chain.
type Attempt struct {
	Index   int
	Address string
	Err     error
	Elapsed time.Duration
}

// Connect probes the selected candidate and, while probes fail and the
// selection advances, the following ones. It stops at the first reachable
// address or when the list is exhausted and returns the final snapshot.
// onAttempt, when non-nil, is called after every probe.
func Connect(ctx context.Context, store *state.Store, sess *session.Session, onAttempt func(Attempt)) state.Snapshot {
	for {
		snap := store.Snapshot()
		index, address := snap.Candidates.Index(), snap.Address()

		store.Dispatch(state.ProbeStarted{Index: index})
		start := time.Now()
		ev := sess.Probe(ctx, index, address)
		prev, next := store.Dispatch(ev)

		attempt := Attempt{Index: index, Address: address, Elapsed: time.Since(start)}
		if failed, ok := ev.(state.ProbeFailed); ok {
			attempt.Err = failed.Err
		}
		if onAttempt != nil {
			onAttempt(attempt)
		}

		if !state.ProbeNeeded(prev, next) {
			if next.Status != state.StatusConnected {
				slog.Warn("no reachable server", "last_address", address, "error", attempt.Err)
			}
			return next
		}
		if ctx.Err() != nil {
			return next
		}
		slog.Info("trying alternative server url", "address", next.Address())
	}
}
