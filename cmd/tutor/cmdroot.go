package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/tutor/internal/app"
)

var (
	configPath *string
	prefsPath  *string
	serverURLs *[]string
	logLevel   *string
	logFile    *string
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:          "tutor",
		Short:        "tutor asks questions of a local AI tutoring server from the terminal",
		Version:      "0.1",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return app.Run(ctx, options())
		},
	}
	// Sets up the flags.
	configPath = rootCmd.PersistentFlags().String(
		"config", "", "config file (default ~/.config/tutor/config.toml)")
	prefsPath = rootCmd.PersistentFlags().String(
		"prefs", "", "preferences file (default ~/.config/tutor/prefs.toml)")
	serverURLs = rootCmd.PersistentFlags().StringSlice(
		"server", nil, "server base URL to try, in order (repeatable)")
	logLevel = rootCmd.PersistentFlags().String(
		"log-level", "", "log level: debug, info, warn or error")
	logFile = rootCmd.PersistentFlags().String(
		"log-file", "", "log file (default ~/.local/state/tutor/tutor.log)")

	rootCmd.AddCommand(newProbeCmd(), newAskCmd())
	return
}

// options collects the persistent flags into app options.
func options() app.Options {
	return app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		ServerURLs: *serverURLs,
		LogLevel:   *logLevel,
		LogFile:    *logFile,
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
