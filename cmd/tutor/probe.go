package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/five82/tutor/internal/app"
	"github.com/five82/tutor/internal/state"
)

// errUnreachable makes the probe command exit non-zero.
var errUnreachable = errors.New("no server reachable")

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "check which configured server answers, trying each in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			env, err := app.Setup(options())
			if err != nil {
				return err
			}
			defer env.Close()

			out := termenv.NewOutput(cmd.OutOrStdout())
			store := state.NewStore(env.Initial)
			snap := app.Connect(ctx, store, env.Session, func(a app.Attempt) {
				reportAttempt(out, a)
			})
			if snap.Status != state.StatusConnected {
				fmt.Fprintln(out, paint(out, failedStyle, "all servers unreachable"))
				return errUnreachable
			}
			fmt.Fprintf(out, "using %s\n", paint(out, addressStyle, snap.Address()))
			return nil
		},
	}
}

// reportAttempt prints one line per probed address.
func reportAttempt(out *termenv.Output, a app.Attempt) {
	addr := paint(out, addressStyle, a.Address)
	elapsed := a.Elapsed.Round(time.Millisecond)
	if a.Err != nil {
		fmt.Fprintf(out, "%s %s %s (%s)\n",
			paint(out, failedStyle, "✗"), addr, a.Err, elapsed)
		return
	}
	fmt.Fprintf(out, "%s %s (%s)\n", paint(out, connectedStyle, "✓"), addr, elapsed)
}
