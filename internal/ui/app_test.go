package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/prefs"
	"github.com/five82/hangar/internal/state"
	"github.com/five82/hangar/internal/storage"
)

func newTestModel(t *testing.T) (Model, *state.Store) {
	t.Helper()
	fs := storage.New(filepath.Join(t.TempDir(), storage.FileName))
	store := state.New(fs, state.Options{Now: func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}})
	m := New(Options{Store: store})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and feeds every resulting message back until the command
// chain settles.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for i := 0; cmd != nil && i < 4; i++ {
		out := cmd()
		if out == nil {
			break
		}
		next, cmd = m.Update(out)
		m = next.(Model)
	}
	return m
}

func TestNew_StartsOnLastTab(t *testing.T) {
	fs := storage.New(filepath.Join(t.TempDir(), storage.FileName))
	store := state.New(fs, state.Options{})
	if err := store.SetLastTab(logbook.TabStock); err != nil {
		t.Fatalf("SetLastTab: %v", err)
	}

	m := New(Options{Store: store})
	if m.tab != logbook.TabStock {
		t.Fatalf("tab = %q, want %q", m.tab, logbook.TabStock)
	}
}

func TestTabSwitchPersistsLastTab(t *testing.T) {
	m, store := newTestModel(t)
	if m.tab != logbook.TabFlights {
		t.Fatalf("initial tab = %q", m.tab)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != logbook.TabBatteries {
		t.Fatalf("tab = %q, want batteries", m.tab)
	}
	if got := store.Settings().LastTab; got != logbook.TabBatteries {
		t.Fatalf("LastTab = %q, want batteries", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != logbook.TabSettings {
		t.Fatalf("tab after wrap = %q, want settings", m.tab)
	}
}

func TestDeleteFlightAsksForConfirmation(t *testing.T) {
	m, store := newTestModel(t)
	if _, err := store.AddFlight(state.FlightInput{Duration: 5}); err != nil {
		t.Fatalf("AddFlight: %v", err)
	}
	m = press(t, m, dataMsg(load(store)))

	m = press(t, m, runes("x"))
	if m.modal == nil {
		t.Fatalf("expected confirmation modal")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != nil || len(store.Flights()) != 1 {
		t.Fatalf("cancel should keep the flight")
	}

	m = press(t, m, runes("x"))
	m = press(t, m, runes("y"))
	if len(store.Flights()) != 0 {
		t.Fatalf("flight not deleted")
	}
	if m.status != "Flight deleted" || m.statusErr {
		t.Fatalf("status = %q (err %v)", m.status, m.statusErr)
	}
	if len(m.data.flights) != 0 {
		t.Fatalf("view data not reloaded")
	}
}

func TestLogFlightPrompt(t *testing.T) {
	m, store := newTestModel(t)
	b, err := store.AddBattery(state.BatteryInput{Name: "Pack", Number: "B1"})
	if err != nil {
		t.Fatalf("AddBattery: %v", err)
	}
	m = press(t, m, dataMsg(load(store)))

	m = press(t, m, runes("a"))
	if m.modal == nil {
		t.Fatalf("expected prompt")
	}
	m = press(t, m, runes("6.5 b1"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	flights := store.Flights()
	if len(flights) != 1 || flights[0].Duration != 6.5 || flights[0].BatteryID != b.ID {
		t.Fatalf("flights = %+v", flights)
	}
	if got := store.Batteries()[0].Cycles; got != 1 {
		t.Fatalf("cycles = %d, want 1", got)
	}
	if m.data.stats.Flights != 1 {
		t.Fatalf("stats not reloaded: %+v", m.data.stats)
	}
}

func TestInvalidPromptReportsError(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, runes("a"))
	m = press(t, m, runes("soon"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.statusErr {
		t.Fatalf("expected error status, got %q", m.status)
	}
	if len(store.Flights()) != 0 {
		t.Fatalf("invalid input logged a flight")
	}
}

func TestStockQuantityKeys(t *testing.T) {
	m, store := newTestModel(t)
	if _, err := store.AddStock(state.StockInput{Name: "Blade", Quantity: 1}); err != nil {
		t.Fatalf("AddStock: %v", err)
	}
	if err := store.SetLastTab(logbook.TabStock); err != nil {
		t.Fatalf("SetLastTab: %v", err)
	}
	m = New(Options{Store: store})

	m = press(t, m, runes("+"))
	if got := store.Stock()[0].Quantity; got != 2 {
		t.Fatalf("quantity = %v, want 2", got)
	}
	m = press(t, m, runes("-"))
	m = press(t, m, runes("-"))
	m = press(t, m, runes("-"))
	if got := store.Stock()[0].Quantity; got != 0 {
		t.Fatalf("quantity = %v, want 0 (never negative)", got)
	}
}

func TestDeleteLastModelIsRefused(t *testing.T) {
	m, store := newTestModel(t)

	m = press(t, m, runes("X"))
	m = press(t, m, runes("y"))

	if len(store.Models()) != 1 {
		t.Fatalf("last model deleted")
	}
	if !m.statusErr {
		t.Fatalf("expected error status")
	}
}

func TestModelSwitchAndAccent(t *testing.T) {
	m, store := newTestModel(t)
	if _, err := store.AddModel("Goblin", "#1f6aa5"); err != nil {
		t.Fatalf("AddModel: %v", err)
	}
	m = press(t, m, dataMsg(load(store)))
	if m.theme.Accent != "#1f6aa5" {
		t.Fatalf("accent = %q, want new model color", m.theme.Accent)
	}

	m = press(t, m, runes("m"))
	if got := store.ActiveModel().Name; got != logbook.DefaultModelName {
		t.Fatalf("active = %q, want %q", got, logbook.DefaultModelName)
	}
	if m.theme.Accent != logbook.DefaultTheme {
		t.Fatalf("accent = %q, want %q", m.theme.Accent, logbook.DefaultTheme)
	}
}

func TestSettingsMoveTab(t *testing.T) {
	m, store := newTestModel(t)
	if err := store.SetLastTab(logbook.TabSettings); err != nil {
		t.Fatalf("SetLastTab: %v", err)
	}
	m = New(Options{Store: store})

	// cursor on "flights", move it one step right
	m = press(t, m, runes("]"))
	order := store.Settings().TabOrder
	if order[0] != logbook.TabBatteries || order[1] != logbook.TabFlights {
		t.Fatalf("order = %v", order)
	}
	if m.cursor[logbook.TabSettings] != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor[logbook.TabSettings])
	}
}

func TestHelpAndView(t *testing.T) {
	m, _ := newTestModel(t)

	if !strings.Contains(m.View(), strings.ToUpper(logbook.DefaultModelName)) {
		t.Fatalf("view missing model name")
	}

	m = press(t, m, runes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help not shown")
	}
	m = press(t, m, runes("j"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestViewEveryTab(t *testing.T) {
	m, store := newTestModel(t)
	if _, err := store.AddMaintenance(state.MaintenanceInput{Title: "Check blades", IntervalFlights: 10}); err != nil {
		t.Fatalf("AddMaintenance: %v", err)
	}
	m = press(t, m, dataMsg(load(store)))

	for _, tab := range m.data.settings.TabOrder {
		m.tab = tab
		if m.View() == "" {
			t.Fatalf("empty view for %s", tab)
		}
	}
	m.tab = logbook.TabMaintenance
	if !strings.Contains(m.View(), "DUE") {
		t.Fatalf("never-done task should render as due")
	}
}

func TestPaletteKeySavesPreference(t *testing.T) {
	_, store := newTestModel(t)
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{Store: store, Palette: "Nightfox", PrefsPath: path})

	m = press(t, m, runes("P"))
	if m.palette.Name != "Kanagawa" {
		t.Fatalf("palette = %q, want Kanagawa", m.palette.Name)
	}
	if m.theme.Accent != logbook.DefaultTheme {
		t.Fatalf("accent = %q, want model color kept", m.theme.Accent)
	}
	if got := prefs.Load(path).Palette; got != "Kanagawa" {
		t.Fatalf("saved palette = %q, want Kanagawa", got)
	}
}
