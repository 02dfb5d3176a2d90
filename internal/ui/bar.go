package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bar is a single full-width line of styled segments on the theme surface.
// Separators and padding carry the surface color too, so no terminal
// default background shows between segments.
type bar struct {
	bg    lipgloss.Color
	width int
	gap   int
	segs  []string
}

// statusBar starts an empty line of the given width whose segments are set gap
// spaces apart.
func (t Theme) statusBar(width, gap int) *bar {
	return &bar{bg: lipgloss.Color(t.Surface), width: width, gap: gap}
}

func (b *bar) paint(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Background(b.bg).Render(text)
}

// add appends text as one segment.
func (b *bar) add(text string, style lipgloss.Style) {
	if s := b.paint(text, style); s != "" {
		b.segs = append(b.segs, s)
	}
}

// hint appends a "key desc" pair as one segment.
func (b *bar) hint(key string, keyStyle lipgloss.Style, desc string, descStyle lipgloss.Style) {
	b.segs = append(b.segs, b.paint(key, keyStyle)+b.paint(" ", descStyle)+b.paint(desc, descStyle))
}

// String renders the segments after a one-space margin and pads the line.
func (b *bar) String() string {
	fill := lipgloss.NewStyle().Background(b.bg)
	sep := fill.Render(strings.Repeat(" ", b.gap))
	return fill.Width(b.width).Render(fill.Render(" ") + strings.Join(b.segs, sep))
}
