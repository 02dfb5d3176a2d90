package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tutor/internal/state"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme(false).Name; got != ThemeLight {
		t.Fatalf("GetTheme(false).Name = %q, want %q", got, ThemeLight)
	}
	if got := GetTheme(true).Name; got != ThemeDark {
		t.Fatalf("GetTheme(true).Name = %q, want %q", got, ThemeDark)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != ThemeLight || names[1] != ThemeDark {
		t.Fatalf("ThemeNames() = %v, want [Light Dark]", names)
	}
}

func TestPalettesDiffer(t *testing.T) {
	light, dark := GetTheme(false), GetTheme(true)
	if light.Background == dark.Background || light.Text == dark.Text {
		t.Fatalf("light and dark palettes share base colors")
	}
}

func TestGetTheme_IsDeterministic(t *testing.T) {
	for _, dark := range []bool{false, true} {
		if !reflect.DeepEqual(GetTheme(dark), GetTheme(dark)) {
			t.Fatalf("GetTheme(%v) returned different palettes", dark)
		}
	}
}

func TestStatusColors(t *testing.T) {
	th := GetTheme(false)
	want := map[state.Status]string{
		state.StatusConnected: "#4CAF50",
		state.StatusError:     "#F44336",
		state.StatusUnknown:   "#FFC107",
		state.StatusChecking:  "#999999",
	}
	for status, color := range want {
		if got := th.StatusColors[status]; got != color {
			t.Fatalf("StatusColors[%v] = %q, want %q", status, got, color)
		}
	}
}

func TestStatusBarFillsWidth(t *testing.T) {
	theme := GetTheme(false)
	styles := theme.Styles()
	line := theme.statusBar(40, 2)
	line.add("● Server connected", styles.Text)
	line.add("", styles.Text)
	line.hint("ctrl+r", styles.AccentText, "Retry", styles.MutedText)

	got := line.String()
	if w := lipgloss.Width(got); w != 40 {
		t.Fatalf("width = %d, want 40", w)
	}
	if !strings.Contains(got, "● Server connected  ctrl+r Retry") {
		t.Fatalf("segments not joined by the gap: %q", got)
	}
}
