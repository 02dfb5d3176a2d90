package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything tutor needs to reach the inference server.
type Config struct {
	ServerURLs        []string
	ProbeTimeout      time.Duration
	ChatTimeout       time.Duration
	MaxQuestionLength int
	LogLevel          string
	LogFile           string
}

const (
	defaultConfigPath        = "~/.config/tutor/config.toml"
	defaultLogFile           = "~/.local/state/tutor/tutor.log"
	defaultLogLevel          = "info"
	defaultProbeTimeout      = 5 * time.Second
	defaultChatTimeout       = 600 * time.Second
	defaultMaxQuestionLength = 200
)

// DefaultServerURLs returns the candidate list for the given GOOS value.
// Android devices reach the host through adb reverse, which only forwards
// the localhost name.
func DefaultServerURLs(goos string) []string {
	switch goos {
	case "android":
		return []string{"http://localhost:8000"}
	default:
		return []string{"http://localhost:8000", "http://127.0.0.1:8000"}
	}
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ServerURLs:        DefaultServerURLs(runtime.GOOS),
		ProbeTimeout:      defaultProbeTimeout,
		ChatTimeout:       defaultChatTimeout,
		MaxQuestionLength: defaultMaxQuestionLength,
		LogLevel:          defaultLogLevel,
		LogFile:           mustExpand(defaultLogFile),
	}
}

// Load locates and parses the tutor config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURLs        []string `toml:"server_urls"`
		ProbeTimeout      string   `toml:"probe_timeout"`
		ChatTimeout       string   `toml:"chat_timeout"`
		MaxQuestionLength int      `toml:"max_question_length"`
		LogLevel          string   `toml:"log_level"`
		LogFile           string   `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if urls := cleanURLs(raw.ServerURLs); len(urls) > 0 {
		cfg.ServerURLs = urls
	}
	if cfg.ProbeTimeout, err = parseDuration(raw.ProbeTimeout, defaultProbeTimeout); err != nil {
		return Config{}, fmt.Errorf("parse probe_timeout: %w", err)
	}
	if cfg.ChatTimeout, err = parseDuration(raw.ChatTimeout, defaultChatTimeout); err != nil {
		return Config{}, fmt.Errorf("parse chat_timeout: %w", err)
	}
	if raw.MaxQuestionLength > 0 {
		cfg.MaxQuestionLength = raw.MaxQuestionLength
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithServerURLs returns a copy of the config using urls as the candidate
// list. Blank entries are dropped; an empty result keeps the current list.
func (c Config) WithServerURLs(urls []string) Config {
	if cleaned := cleanURLs(urls); len(cleaned) > 0 {
		c.ServerURLs = cleaned
	}
	return c
}

// WithLogFile returns a copy of the config logging to path, expanded the
// same way as log_file in the config file. A blank path keeps the current
// file.
func (c Config) WithLogFile(path string) Config {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		c.LogFile = mustExpand(trimmed)
	}
	return c
}

// Validate checks that every candidate is an absolute http(s) URL.
func (c Config) Validate() error {
	if len(c.ServerURLs) == 0 {
		return fmt.Errorf("server_urls is empty")
	}
	for _, raw := range c.ServerURLs {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("server url %q: %w", raw, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("server url %q: scheme must be http or https", raw)
		}
		if u.Host == "" {
			return fmt.Errorf("server url %q: missing host", raw)
		}
	}
	return nil
}

func cleanURLs(values []string) []string {
	var out []string
	for _, v := range values {
		trimmed := strings.TrimRight(strings.TrimSpace(v), "/")
		if trimmed == "" {
			continue
		}
		if !strings.Contains(trimmed, "://") {
			trimmed = "http://" + trimmed
		}
		out = append(out, trimmed)
	}
	return out
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", trimmed)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
