package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tableColumn defines a column in a record table. A column with width 0
// takes whatever space the fixed columns leave.
type tableColumn struct {
	label string
	width int
	right bool
}

// rowTone colors a whole row.
type rowTone int

const (
	toneNormal rowTone = iota
	toneMuted
	toneWarning
	toneDanger
)

type tableRow struct {
	cells []string
	tone  rowTone
}

// renderTable renders rows under a header, keeping the cursor row visible
// within height lines.
func (m Model) renderTable(columns []tableColumn, rows []tableRow, cursor, height int) string {
	styles := m.theme.Styles()
	widths := columnWidths(columns, m.width-2)

	var b strings.Builder
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = alignCell(col.label, widths[i], col.right)
	}
	b.WriteString(styles.MutedText.Bold(true).Render(strings.Join(header, " ")))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(styles.FaintText.Render("Nothing here yet."))
		return b.String()
	}

	visible := max(height-1, 1)
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	for i := start; i < end; i++ {
		row := rows[i]
		cells := make([]string, len(columns))
		for c, col := range columns {
			value := ""
			if c < len(row.cells) {
				value = row.cells[c]
			}
			cells[c] = alignCell(truncate(value, widths[c]), widths[c], col.right)
		}
		line := strings.Join(cells, " ")
		style := m.toneStyle(row.tone, styles)
		if i == cursor {
			style = styles.Selected
		}
		b.WriteString(style.Render(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) toneStyle(t rowTone, styles Styles) lipgloss.Style {
	switch t {
	case toneMuted:
		return styles.MutedText
	case toneWarning:
		return styles.WarningText
	case toneDanger:
		return styles.DangerText
	}
	return styles.Text
}

// columnWidths gives flexible columns an equal share of the space the fixed
// columns leave, never less than 8.
func columnWidths(columns []tableColumn, total int) []int {
	widths := make([]int, len(columns))
	fixed, flex := 0, 0
	for i, col := range columns {
		widths[i] = col.width
		fixed += col.width
		if col.width == 0 {
			flex++
		}
	}
	if flex == 0 {
		return widths
	}
	spare := total - fixed - (len(columns) - 1)
	share := max(spare/flex, 8)
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = share
		}
	}
	return widths
}

func alignCell(s string, width int, right bool) string {
	if right {
		return padLeft(s, width)
	}
	return padRight(s, width)
}
