package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path.
// A missing file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 || path == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Level extracts the level of a slog text handler line ("level=WARN").
// Lines without a level field return "".
func Level(line string) string {
	for _, field := range strings.Fields(line) {
		value, ok := strings.CutPrefix(field, "level=")
		if !ok {
			continue
		}
		// slog renders offsets from the base levels as "INFO+2"
		if i := strings.IndexAny(value, "+-"); i > 0 {
			value = value[:i]
		}
		switch value {
		case "DEBUG", "INFO", "WARN", "ERROR":
			return value
		}
		return ""
	}
	return ""
}

// Filter keeps the lines whose level is at or above minLevel.
// Lines without a level are continuation output and are always kept.
func Filter(lines []string, minLevel string) []string {
	floor := rank(minLevel)
	if floor <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		lvl := Level(line)
		if lvl == "" || rank(lvl) >= floor {
			out = append(out, line)
		}
	}
	return out
}

func rank(level string) int {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return 1
	case "INFO":
		return 2
	case "WARN":
		return 3
	case "ERROR":
		return 4
	default:
		return 0
	}
}
