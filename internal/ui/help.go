package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"tab/l", "Next tab"},
				{"shift+tab/h", "Previous tab"},
				{"j/k", "Move down/up"},
				{"g/G", "Go to top/bottom"},
			},
		},
		{
			title: "Records",
			items: []helpItem{
				{"a", "Log a flight"},
				{"x", "Delete selected"},
				{"c", "Battery +1 cycle"},
				{"D", "Maintenance done"},
				{"y", "Duplicate stock item"},
				{"+/-", "Stock quantity"},
				{"s/r", "Sort key/direction"},
				{"p", "Numberless batteries first/last"},
			},
		},
		{
			title: "Models",
			items: []helpItem{
				{"m", "Next model"},
				{"N", "New model"},
				{"R", "Rename model"},
				{"X", "Delete model"},
				{"T/C", "Preset/custom color"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"[/]", "Move tab (settings)"},
				{"e", "Export (backup)"},
				{"P", "Next terminal palette"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(14)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
