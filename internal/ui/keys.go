package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit     key.Binding
	Help     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Escape   key.Binding
	Confirm  key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Records
	Add       key.Binding
	Delete    key.Binding
	Cycle     key.Binding
	Done      key.Binding
	Duplicate key.Binding
	More      key.Binding
	Less      key.Binding

	// Sorting
	SortKey   key.Binding
	SortDir   key.Binding
	Placement key.Binding

	// Models and settings
	NextModel   key.Binding
	NextPreset  key.Binding
	RenameModel key.Binding
	NewModel    key.Binding
	DeleteModel key.Binding
	SetColor    key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	Export      key.Binding
	Palette     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "Next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Records
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Log a flight"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Delete"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Battery +1 cycle"),
		),
		Done: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Mark maintenance done"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Duplicate stock item"),
		),
		More: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "Stock quantity +1"),
		),
		Less: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Stock quantity -1"),
		),

		// Sorting
		SortKey: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sort key"),
		),
		SortDir: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Sort direction"),
		),
		Placement: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Numberless first/last"),
		),

		// Models and settings
		NextModel: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Next model"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Next color preset"),
		),
		RenameModel: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Rename model"),
		),
		NewModel: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "Add model"),
		),
		DeleteModel: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Delete model"),
		),
		SetColor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Set hex color"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Move tab up"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Move tab down"),
		),
		Palette: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "Next terminal palette"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Export backup"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Up, k.Down, k.Delete, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Tab, k.ShiftTab, k.Up, k.Down, k.Top, k.Bottom},
		// Records
		{k.Add, k.Delete, k.Cycle, k.Done, k.Duplicate, k.More, k.Less},
		// Sorting
		{k.SortKey, k.SortDir, k.Placement},
		// Models
		{k.NextModel, k.NextPreset, k.RenameModel, k.NewModel, k.DeleteModel, k.SetColor},
		// General
		{k.MoveLeft, k.MoveRight, k.Export, k.Palette, k.Help, k.Quit},
	}
}
