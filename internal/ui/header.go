package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/hangar/internal/logbook"
)

// renderHeader renders the title bar: model name, headline stats and the
// model switcher hint.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bar := newChipBar(m.theme.Surface, 2)

	stats := m.data.stats
	bar.add(strings.ToUpper(m.data.model.Name), styles.AccentText)
	bar.add(fmt.Sprintf("%s flights", humanize.Comma(int64(stats.Flights))), styles.Text)
	bar.add(formatMinutes(stats.Minutes), styles.Text)
	bar.add(fmt.Sprintf("%d batteries", stats.Batteries), styles.Text)
	if n := len(m.data.models); n > 1 {
		bar.add(fmt.Sprintf("model %d/%d", m.activeModelPos()+1, n), styles.MutedText)
	}
	if m.data.saveErr != nil {
		bar.add("NOT SAVED", styles.DangerText)
	}

	return styles.Header.Width(m.width).Render(bar.String())
}

// renderTabs renders the tab bar in the user's tab order.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(m.data.settings.TabOrder))
	for _, id := range m.data.settings.TabOrder {
		label := logbook.TabLabel(id)
		if id == m.tab {
			parts = append(parts, styles.ActiveTab.Render(label))
			continue
		}
		parts = append(parts, styles.Tab.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().
		Width(m.width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(m.theme.BorderMuted)).
		Render(bar)
}

// renderFooter shows the last action outcome and the short help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bar := newChipBar(m.theme.Surface, 3)

	switch {
	case m.statusErr:
		bar.add(m.status, styles.DangerText)
	case m.status != "":
		bar.add(m.status, styles.SuccessText)
	case m.data.saveErr != nil:
		bar.add("save failed: "+m.data.saveErr.Error(), styles.DangerText)
	}
	bar.addRendered(m.help.ShortHelpView(m.keys.ShortHelp()))

	return styles.Footer.Width(m.width).Render(bar.String())
}

func (m Model) activeModelPos() int {
	for i, ref := range m.data.models {
		if ref.Active {
			return i
		}
	}
	return 0
}

// formatMinutes renders a flight time total as "1h 05m" or "12.5 min".
func formatMinutes(minutes float64) string {
	if minutes < 60 {
		return number(minutes) + " min"
	}
	total := int(minutes + 0.5)
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
