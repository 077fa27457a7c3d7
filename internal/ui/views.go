package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/hangar/internal/logbook"
)

// renderMain renders header, tab bar, the current tab and the footer.
func (m Model) renderMain() string {
	header := m.renderHeader()
	tabs := m.renderTabs()
	footer := m.renderFooter()

	height := m.height - lipgloss.Height(header) - lipgloss.Height(tabs) - lipgloss.Height(footer)
	height = max(height, 3)

	body := lipgloss.NewStyle().
		Padding(0, 1).
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(m.renderTab(height))

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, body, footer)
}

func (m Model) renderTab(height int) string {
	cursor := m.cursor[m.tab]
	switch m.tab {
	case logbook.TabFlights:
		return m.renderFlights(cursor, height)
	case logbook.TabBatteries:
		return m.renderBatteries(cursor, height)
	case logbook.TabMaintenance:
		return m.renderMaintenance(cursor, height)
	case logbook.TabStock:
		return m.renderStock(cursor, height)
	case logbook.TabPurchases:
		return m.renderPurchases(cursor, height)
	case logbook.TabBackup:
		return m.renderBackup()
	case logbook.TabSettings:
		return m.renderSettings(cursor, height)
	}
	return ""
}

func (m Model) renderFlights(cursor, height int) string {
	labels := make(map[string]string, len(m.data.batteries))
	for _, b := range m.data.batteries {
		labels[b.ID] = b.Label()
	}

	columns := []tableColumn{
		{label: "Date", width: 10},
		{label: "Duration", width: 9, right: true},
		{label: "Battery"},
		{label: "Notes"},
	}
	rows := make([]tableRow, 0, len(m.data.flights))
	for _, f := range m.data.flights {
		battery, tone := "", toneNormal
		if f.BatteryID != "" {
			var ok bool
			if battery, ok = labels[f.BatteryID]; !ok {
				battery, tone = "?", toneMuted
			}
		}
		rows = append(rows, tableRow{
			cells: []string{f.Date, number(f.Duration) + " min", battery, f.Notes},
			tone:  tone,
		})
	}
	return m.renderTable(columns, rows, cursor, height)
}

func (m Model) renderBatteries(cursor, height int) string {
	columns := []tableColumn{
		{label: "No.", width: 6},
		{label: "Name"},
		{label: "Capacity", width: 9, right: true},
		{label: "Cells", width: 5, right: true},
		{label: "Voltage", width: 8, right: true},
		{label: "C", width: 4, right: true},
		{label: "Cycles", width: 6, right: true},
		{label: "Last used", width: 10},
	}
	rows := make([]tableRow, 0, len(m.data.batteries))
	for _, b := range m.data.batteries {
		cells := ""
		if b.Cells != nil {
			cells = strconv.Itoa(*b.Cells) + "S"
		}
		lastUsed := ""
		if b.LastUsed != nil {
			lastUsed = *b.LastUsed
		}
		rows = append(rows, tableRow{cells: []string{
			b.Number,
			b.Name,
			optionalNumber(b.Capacity, " mAh"),
			cells,
			optionalNumber(b.EffectiveVoltage(), " V"),
			optionalNumber(b.DischargeRate, ""),
			humanize.Comma(int64(b.Cycles)),
			lastUsed,
		}})
	}

	styles := m.theme.Styles()
	set := m.data.settings
	caption := styles.FaintText.Render(fmt.Sprintf("sorted by %s %s, numberless %s",
		set.StockBatterySort.Key, set.StockBatterySort.Dir, set.StockBatteryNumberPlacement))
	return m.renderTable(columns, rows, cursor, height-1) + "\n" + caption
}

func (m Model) renderMaintenance(cursor, height int) string {
	columns := []tableColumn{
		{label: "Task"},
		{label: "Every", width: 16},
		{label: "Last done", width: 10},
		{label: "Next", width: 20},
		{label: "Status", width: 6},
	}
	rows := make([]tableRow, 0, len(m.data.maintenance))
	for _, v := range m.data.maintenance {
		t := v.Task

		var every []string
		if t.IntervalDays > 0 {
			every = append(every, fmt.Sprintf("%d d", t.IntervalDays))
		}
		if t.IntervalFlights > 0 {
			every = append(every, fmt.Sprintf("%d fl", t.IntervalFlights))
		}

		last := "never"
		if t.LastDoneDate != nil {
			last = *t.LastDoneDate
		}

		var next []string
		if v.Status.NextDate != nil {
			next = append(next, v.Status.NextDate.Format(logbook.DateLayout))
		}
		if v.Status.NextFlightCount != nil {
			next = append(next, fmt.Sprintf("%d fl", *v.Status.NextFlightCount))
		}

		tone := toneNormal
		if v.Status.IsDue {
			tone = toneDanger
		}
		rows = append(rows, tableRow{
			cells: []string{
				t.Title,
				strings.Join(every, " / "),
				last,
				strings.Join(next, " / "),
				ternary(v.Status.IsDue, "DUE", "ok"),
			},
			tone: tone,
		})
	}
	return m.renderTable(columns, rows, cursor, height)
}

func (m Model) renderStock(cursor, height int) string {
	columns := []tableColumn{
		{label: "Reference", width: 14},
		{label: "Name"},
		{label: "Qty", width: 5, right: true},
		{label: "Min", width: 5, right: true},
		{label: "Location"},
	}
	rows := make([]tableRow, 0, len(m.data.stock))
	low := 0
	for _, s := range m.data.stock {
		tone := toneNormal
		if s.IsLow() {
			tone = toneWarning
			low++
		}
		rows = append(rows, tableRow{
			cells: []string{s.Reference, s.Name, number(s.Quantity), number(s.Minimum), s.Location},
			tone:  tone,
		})
	}

	styles := m.theme.Styles()
	sort := m.data.settings.StockSort
	caption := styles.FaintText.Render(fmt.Sprintf("sorted by %s %s", sort.Key, sort.Dir))
	if low > 0 {
		caption += "  " + styles.WarningText.Render(fmt.Sprintf("%d low", low))
	}
	return m.renderTable(columns, rows, cursor, height-1) + "\n" + caption
}

func (m Model) renderPurchases(cursor, height int) string {
	columns := []tableColumn{
		{label: "Date", width: 10},
		{label: "Name"},
		{label: "Reference", width: 14},
		{label: "Qty", width: 4, right: true},
		{label: "Price", width: 9, right: true},
		{label: "Notes"},
	}
	rows := make([]tableRow, 0, len(m.data.purchases))
	var total float64
	for _, p := range m.data.purchases {
		if p.Price != nil {
			total += *p.Price
		}
		rows = append(rows, tableRow{cells: []string{
			p.Date, p.Name, p.Reference, number(p.Quantity), optionalNumber(p.Price, ""), p.Notes,
		}})
	}

	styles := m.theme.Styles()
	caption := styles.FaintText.Render("total " + humanize.CommafWithDigits(total, 2))
	return m.renderTable(columns, rows, cursor, height-1) + "\n" + caption
}

func (m Model) renderBackup() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Render("Backup"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d\n", styles.MutedText.Render(padRight("Models", 14)), len(m.data.models))
	fmt.Fprintf(&b, "%s %s\n", styles.MutedText.Render(padRight("Flights", 14)), humanize.Comma(int64(m.data.stats.Flights)))
	if m.exportPath != "" {
		fmt.Fprintf(&b, "%s %s\n", styles.MutedText.Render(padRight("Export file", 14)), m.exportPath)
	}
	b.WriteString("\n")
	b.WriteString(styles.Text.Render("Press e to export every model and the settings as JSON."))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Import a file from the command line: hangar import FILE"))
	if m.data.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render("Last save failed: " + m.data.saveErr.Error()))
	}
	return b.String()
}

func (m Model) renderSettings(cursor, height int) string {
	columns := []tableColumn{
		{label: "#", width: 3, right: true},
		{label: "Tab"},
	}
	order := m.data.settings.TabOrder
	rows := make([]tableRow, 0, len(order))
	for i, id := range order {
		rows = append(rows, tableRow{cells: []string{strconv.Itoa(i + 1), logbook.TabLabel(id)}})
	}

	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Models"))
	b.WriteString("\n")
	for _, ref := range m.data.models {
		marker := ternary(ref.Active, "● ", "  ")
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(ref.ThemeColor)).Render("■")
		fmt.Fprintf(&b, "%s%s %s\n", marker, swatch, ref.Name)
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("[ and ] move the selected tab"))
	models := b.String()

	table := m.renderTable(columns, rows, cursor, height-lipgloss.Height(models)-1)
	return table + "\n\n" + models
}

// number formats v with at most two decimals and no trailing zeros.
func number(v float64) string {
	return humanize.FtoaWithDigits(v, 2)
}

func optionalNumber(v *float64, unit string) string {
	if v == nil {
		return ""
	}
	return number(*v) + unit
}
