package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chipBar lays out header and footer segments on the surface color. Each
// segment and gap carries the background itself: a styled segment ends with
// a reset, which would leave the rest of an outer background unpainted.
type chipBar struct {
	bg    lipgloss.Color
	gap   string
	chips []string
}

func newChipBar(surface string, gap int) *chipBar {
	bg := lipgloss.Color(surface)
	return &chipBar{
		bg:  bg,
		gap: lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap)),
	}
}

// add paints text in style on the bar. Empty text adds no chip.
func (b *chipBar) add(text string, style lipgloss.Style) {
	if text == "" {
		return
	}
	b.chips = append(b.chips, style.Background(b.bg).Render(text))
}

// addRendered appends a segment that brings its own styling, like the help line.
func (b *chipBar) addRendered(s string) {
	if s != "" {
		b.chips = append(b.chips, s)
	}
}

func (b *chipBar) String() string {
	return strings.Join(b.chips, b.gap)
}
