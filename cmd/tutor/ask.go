package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/five82/tutor/internal/app"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask question...",
		Short: "ask a single question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			env, err := app.Setup(options())
			if err != nil {
				return err
			}
			defer env.Close()

			errOut := termenv.NewOutput(cmd.ErrOrStderr())
			fmt.Fprintln(errOut, paint(errOut, checkingStyle, "asking..."))

			return app.Ask(ctx, env, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}
