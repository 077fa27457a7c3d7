package ui

import (
	"context"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/prefs"
	"github.com/five82/hangar/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Palette    string // terminal palette name; empty uses Nightfox
	ExportPath string // file written by the backup tab
	PrefsPath  string // empty uses prefs.DefaultPath
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	exportPath string
	prefsPath  string
	keys       keyMap
	help       help.Model

	// UI state
	palette  Theme
	theme    Theme
	tab      string
	width    int
	height   int
	ready    bool
	cursor   map[string]int
	showHelp bool
	modal    Modal

	// Last action outcome shown in the footer
	status    string
	statusErr bool

	// Data state
	data viewData
}

// viewData is everything the views read, loaded from the store in one go.
type viewData struct {
	model       logbook.Model
	models      []state.ModelRef
	settings    logbook.Settings
	stats       logbook.Stats
	flights     []logbook.Flight
	batteries   []logbook.Battery
	maintenance []state.MaintenanceView
	stock       []logbook.StockItem
	purchases   []logbook.Purchase
	saveErr     error
	loaded      time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	palette := GetTheme(opts.Palette)
	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		exportPath: opts.ExportPath,
		prefsPath:  opts.PrefsPath,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		palette:    palette,
		theme:      palette,
		cursor:     make(map[string]int),
	}
	if m.store != nil {
		m.applyData(load(m.store))
		m.tab = m.data.settings.LastTab
	}
	if !logbook.IsTab(m.tab) {
		m.tab = logbook.TabFlights
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, watchContext(m.ctx))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case dataMsg:
		m.applyData(viewData(msg))
		return m, nil

	case resultMsg:
		m.status = msg.label
		m.statusErr = msg.err != nil
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, loadCmd(m.store)

	case contextDoneMsg:
		return m, tea.Quit
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
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

func (m *Model) applyData(d viewData) {
	m.data = d
	m.theme = m.palette.WithAccent(d.model.ThemeColor)
	if len(d.settings.TabOrder) > 0 && !slices.Contains(d.settings.TabOrder, m.tab) {
		m.tab = d.settings.TabOrder[0]
	}
	for tab := range m.cursor {
		m.clampCursor(tab)
	}
}

// Messages

type dataMsg viewData

type resultMsg struct {
	label string
	err   error
}

type contextDoneMsg struct{}

// Commands

func load(store *state.Store) viewData {
	return viewData{
		model:       store.ActiveModel(),
		models:      store.Models(),
		settings:    store.Settings(),
		stats:       store.Stats(),
		flights:     store.Flights(),
		batteries:   store.Batteries(),
		maintenance: store.Maintenance(),
		stock:       store.Stock(),
		purchases:   store.Purchases(),
		saveErr:     store.LastSaveError(),
		loaded:      time.Now(),
	}
}

func loadCmd(store *state.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return dataMsg(load(store))
	}
}

// dispatchCmd applies cmd off the UI goroutine and reports the outcome.
func dispatchCmd(store *state.Store, cmd state.Command, label string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{label: label, err: store.Dispatch(cmd)}
	}
}

func exportCmd(store *state.Store, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return resultMsg{err: err}
		}
		err = store.Export(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return resultMsg{label: "Exported to " + path, err: err}
	}
}

func savePaletteCmd(path, name string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{label: "Palette " + name, err: prefs.Save(path, prefs.Prefs{Palette: name})}
	}
}

func watchContext(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return contextDoneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
