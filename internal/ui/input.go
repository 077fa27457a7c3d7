package ui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/state"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		cmd := m.switchTab(1)
		return m, cmd

	case key.Matches(msg, m.keys.ShiftTab):
		cmd := m.switchTab(-1)
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor[m.tab] = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.cursor[m.tab] = m.rowCount(m.tab) - 1
		m.clampCursor(m.tab)
		return m, nil

	case key.Matches(msg, m.keys.NextModel):
		return m, m.nextModel()

	case key.Matches(msg, m.keys.NextPreset):
		color := nextPreset(m.data.model.ThemeColor)
		return m, m.dispatch(state.SetThemeColor{Color: color}, "Color "+color)

	case key.Matches(msg, m.keys.Palette):
		name := cycle(ThemeNames(), m.palette.Name)
		m.palette = GetTheme(name)
		m.theme = m.palette.WithAccent(m.data.model.ThemeColor)
		return m, savePaletteCmd(m.prefsPath, name)

	case key.Matches(msg, m.keys.RenameModel):
		id := m.data.model.ID
		m.modal = newPromptModal("Rename model", "Model name", m.data.model.Name, func(name string) tea.Cmd {
			return m.dispatch(state.RenameModel{ID: id, Name: name}, "Renamed to "+name)
		})
		return m, nil

	case key.Matches(msg, m.keys.NewModel):
		m.modal = newPromptModal("Add model", "Model name", "", func(name string) tea.Cmd {
			return m.dispatch(state.AddModel{Name: name}, "Added "+name)
		})
		return m, nil

	case key.Matches(msg, m.keys.DeleteModel):
		ref := m.data.model
		m.modal = newConfirmModal(fmt.Sprintf("Delete model %q and all of its records?", ref.Name),
			m.dispatch(state.DeleteModel{ID: ref.ID}, "Deleted "+ref.Name))
		return m, nil

	case key.Matches(msg, m.keys.SetColor):
		m.modal = newPromptModal("Theme color", "#c0501a", m.data.model.ThemeColor, func(color string) tea.Cmd {
			if color != "" && !validColor(color) {
				return reportCmd(fmt.Errorf("%q is not a hex color", color))
			}
			return m.dispatch(state.SetThemeColor{Color: color}, "Color updated")
		})
		return m, nil
	}

	return m.handleTabKey(msg)
}

// handleTabKey processes keys whose meaning depends on the current tab.
func (m Model) handleTabKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.cursor[m.tab]

	switch m.tab {
	case logbook.TabFlights:
		switch {
		case key.Matches(msg, m.keys.Add):
			batteries := m.data.batteries
			m.modal = newPromptModal("Log a flight", "minutes [battery] e.g. 6.5 B2", "", func(text string) tea.Cmd {
				in, err := parseFlightInput(text, batteries)
				if err != nil {
					return reportCmd(err)
				}
				return m.dispatch(state.AddFlight{Input: in}, "Flight logged")
			})
		case key.Matches(msg, m.keys.Delete) && row < len(m.data.flights):
			f := m.data.flights[row]
			m.modal = newConfirmModal(fmt.Sprintf("Delete the flight of %s?", f.Date),
				m.dispatch(state.DeleteFlight{ID: f.ID}, "Flight deleted"))
		}

	case logbook.TabBatteries:
		set := m.data.settings
		switch {
		case key.Matches(msg, m.keys.Cycle) && row < len(m.data.batteries):
			b := m.data.batteries[row]
			return m, m.dispatch(state.IncrementCycle{ID: b.ID}, b.Label()+" +1 cycle")
		case key.Matches(msg, m.keys.Delete) && row < len(m.data.batteries):
			b := m.data.batteries[row]
			m.modal = newConfirmModal(fmt.Sprintf("Delete battery %s?", b.Label()),
				m.dispatch(state.DeleteBattery{ID: b.ID}, "Battery deleted"))
		case key.Matches(msg, m.keys.SortKey):
			next := cycle([]string{logbook.KeyNumber, logbook.KeyName}, set.StockBatterySort.Key)
			return m, m.dispatch(state.SetBatterySort{Key: next, Dir: set.StockBatterySort.Dir}, "Sorted by "+next)
		case key.Matches(msg, m.keys.SortDir):
			dir := flipDir(set.StockBatterySort.Dir)
			return m, m.dispatch(state.SetBatterySort{Key: set.StockBatterySort.Key, Dir: dir}, "Direction "+dir)
		case key.Matches(msg, m.keys.Placement):
			p := logbook.PlacementLast
			if set.StockBatteryNumberPlacement == logbook.PlacementLast {
				p = logbook.PlacementFirst
			}
			return m, m.dispatch(state.SetBatteryNumberPlacement{Placement: p}, "Numberless batteries "+p)
		}

	case logbook.TabMaintenance:
		if row >= len(m.data.maintenance) {
			break
		}
		t := m.data.maintenance[row].Task
		switch {
		case key.Matches(msg, m.keys.Done):
			return m, m.dispatch(state.MarkMaintenanceDone{ID: t.ID}, t.Title+" done")
		case key.Matches(msg, m.keys.Delete):
			m.modal = newConfirmModal(fmt.Sprintf("Delete task %q?", t.Title),
				m.dispatch(state.DeleteMaintenance{ID: t.ID}, "Task deleted"))
		}

	case logbook.TabStock:
		set := m.data.settings
		switch {
		case key.Matches(msg, m.keys.SortKey):
			next := cycle([]string{logbook.KeyReference, logbook.KeyName, logbook.KeyQuantity}, set.StockSort.Key)
			return m, m.dispatch(state.SetStockSort{Key: next, Dir: set.StockSort.Dir}, "Sorted by "+next)
		case key.Matches(msg, m.keys.SortDir):
			dir := flipDir(set.StockSort.Dir)
			return m, m.dispatch(state.SetStockSort{Key: set.StockSort.Key, Dir: dir}, "Direction "+dir)
		}
		if row >= len(m.data.stock) {
			break
		}
		item := m.data.stock[row]
		switch {
		case key.Matches(msg, m.keys.Duplicate):
			return m, m.dispatch(state.DuplicateStock{ID: item.ID}, item.Name+" duplicated")
		case key.Matches(msg, m.keys.More):
			return m, m.dispatch(adjustStock(item, 1), item.Name+" +1")
		case key.Matches(msg, m.keys.Less):
			return m, m.dispatch(adjustStock(item, -1), item.Name+" -1")
		case key.Matches(msg, m.keys.Delete):
			m.modal = newConfirmModal(fmt.Sprintf("Delete stock item %q?", item.Name),
				m.dispatch(state.DeleteStock{ID: item.ID}, "Stock item deleted"))
		}

	case logbook.TabPurchases:
		if key.Matches(msg, m.keys.Delete) && row < len(m.data.purchases) {
			p := m.data.purchases[row]
			m.modal = newConfirmModal(fmt.Sprintf("Delete purchase %q?", p.Name),
				m.dispatch(state.DeletePurchase{ID: p.ID}, "Purchase deleted"))
		}

	case logbook.TabBackup:
		if key.Matches(msg, m.keys.Export) && m.exportPath != "" && m.store != nil {
			return m, exportCmd(m.store, m.exportPath)
		}

	case logbook.TabSettings:
		order := m.data.settings.TabOrder
		if row >= len(order) {
			break
		}
		delta := 0
		switch {
		case key.Matches(msg, m.keys.MoveLeft):
			delta = -1
		case key.Matches(msg, m.keys.MoveRight):
			delta = 1
		}
		if delta != 0 {
			m.cursor[m.tab] = row + delta
			m.clampCursor(m.tab)
			return m, m.dispatch(state.MoveTab{Tab: order[row], Delta: delta}, "")
		}
	}

	return m, nil
}

// dispatch applies a command through the store, or does nothing without one.
func (m Model) dispatch(cmd state.Command, label string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	return dispatchCmd(m.store, cmd, label)
}

func reportCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{err: err}
	}
}

func (m *Model) switchTab(delta int) tea.Cmd {
	order := m.data.settings.TabOrder
	if len(order) == 0 {
		return nil
	}
	i := slices.Index(order, m.tab)
	if i < 0 {
		i = 0
	}
	n := len(order)
	m.tab = order[((i+delta)%n+n)%n]
	return m.dispatch(state.SetLastTab{Tab: m.tab}, "")
}

func (m *Model) nextModel() tea.Cmd {
	models := m.data.models
	if len(models) < 2 {
		return nil
	}
	i := slices.IndexFunc(models, func(r state.ModelRef) bool { return r.Active })
	next := models[(i+1)%len(models)]
	return m.dispatch(state.SetActiveModel{ID: next.ID}, next.Name)
}

func (m *Model) rowCount(tab string) int {
	switch tab {
	case logbook.TabFlights:
		return len(m.data.flights)
	case logbook.TabBatteries:
		return len(m.data.batteries)
	case logbook.TabMaintenance:
		return len(m.data.maintenance)
	case logbook.TabStock:
		return len(m.data.stock)
	case logbook.TabPurchases:
		return len(m.data.purchases)
	case logbook.TabSettings:
		return len(m.data.settings.TabOrder)
	}
	return 0
}

func (m *Model) moveCursor(delta int) {
	m.cursor[m.tab] += delta
	m.clampCursor(m.tab)
}

func (m *Model) clampCursor(tab string) {
	n := m.rowCount(tab)
	c := m.cursor[tab]
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	m.cursor[tab] = c
}

// nextPreset returns the preset after color, or the first preset.
func nextPreset(color string) string {
	presets := logbook.ThemePresets()
	for i, p := range presets {
		if strings.EqualFold(p.Color, color) {
			return presets[(i+1)%len(presets)].Color
		}
	}
	return presets[0].Color
}

func cycle(values []string, current string) string {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func flipDir(dir string) string {
	if dir == logbook.DirDesc {
		return logbook.DirAsc
	}
	return logbook.DirDesc
}

func adjustStock(item logbook.StockItem, delta float64) state.Command {
	return state.UpdateStock{ID: item.ID, Input: state.StockInput{
		Name:      item.Name,
		Reference: item.Reference,
		Quantity:  max(item.Quantity+delta, 0),
		Minimum:   item.Minimum,
		Location:  item.Location,
	}}
}

var errNoDuration = errors.New("enter the flight duration in minutes")

// parseFlightInput reads "minutes [battery]" where battery matches a battery
// number or name, ignoring case. A comma decimal separator is accepted.
func parseFlightInput(text string, batteries []logbook.Battery) (state.FlightInput, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return state.FlightInput{}, errNoDuration
	}
	minutes, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil || minutes < 0 {
		return state.FlightInput{}, fmt.Errorf("invalid duration %q: %w", fields[0], errNoDuration)
	}
	in := state.FlightInput{Duration: minutes}
	if len(fields) > 1 {
		ref := strings.Join(fields[1:], " ")
		i := slices.IndexFunc(batteries, func(b logbook.Battery) bool {
			return strings.EqualFold(b.Number, ref) || strings.EqualFold(b.Name, ref)
		})
		if i < 0 {
			return state.FlightInput{}, fmt.Errorf("no battery %q", ref)
		}
		in.BatteryID = batteries[i].ID
	}
	return in, nil
}
