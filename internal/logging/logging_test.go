package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "address", "http://localhost:8000")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("output %q contains info record", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "address=http://localhost:8000") {
		t.Fatalf("output %q missing warn record", out)
	}
}

func TestSetup_CreatesFileAndDirs(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "nested", "tutor.log")
	closer, err := Setup(path, "info")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	slog.Info("probe succeeded")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "probe succeeded") {
		t.Fatalf("log file = %q, want record", data)
	}
}
