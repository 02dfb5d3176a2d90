package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/five82/tutor/internal/config"
	"github.com/five82/tutor/internal/logging"
	"github.com/five82/tutor/internal/prefs"
	"github.com/five82/tutor/internal/session"
	"github.com/five82/tutor/internal/state"
	"github.com/five82/tutor/internal/tutor"
	"github.com/five82/tutor/internal/ui"
)

// Options configure the tutor application.
type Options struct {
	ConfigPath string
	PrefsPath  string   // empty uses default ~/.config/tutor/prefs.toml
	ServerURLs []string // non-empty replaces the configured candidates
	LogLevel   string   // empty uses the configured level
	LogFile    string   // empty uses the configured file
}

// Env is everything the front ends share once startup succeeded.
type Env struct {
	Config  config.Config
	Session *session.Session
	Initial state.Snapshot

	closer io.Closer
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil || e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// Setup loads configuration and preferences, installs logging and builds
// the client session and initial state.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithServerURLs(opts.ServerURLs)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("server urls: %w", err)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	cfg = cfg.WithLogFile(opts.LogFile)

	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	candidates, err := state.NewCandidates(cfg.ServerURLs)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	dark := userPrefs.DarkMode(termenv.HasDarkBackground)

	client := tutor.NewClient().WithLogger(slog.Default())
	slog.Info("tutor starting",
		"candidates", strings.Join(cfg.ServerURLs, ","),
		"probe_timeout", cfg.ProbeTimeout,
		"chat_timeout", cfg.ChatTimeout,
		"theme", userPrefs.Theme,
	)

	return &Env{
		Config:  cfg,
		Session: session.New(client, cfg.ProbeTimeout, cfg.ChatTimeout),
		Initial: state.New(candidates, dark, cfg.MaxQuestionLength),
		closer:  closer,
	}, nil
}

// Run boots the tutor TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	return ui.Run(ui.Options{
		Context: ctx,
		Session: env.Session,
		Store:   state.NewStore(env.Initial),
		LogFile: env.Config.LogFile,
	})
}
