package logbook

// Document is the complete persisted state.
type Document struct {
	Models        []Model  `json:"models"`
	ActiveModelID string   `json:"activeModelId"`
	Settings      Settings `json:"settings"`
}

// Model is one physical craft and all of its records.
type Model struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	ThemeColor  string            `json:"themeColor"`
	Flights     []Flight          `json:"flights"`
	Batteries   []Battery         `json:"batteries"`
	Maintenance []MaintenanceTask `json:"maintenance"`
	Stock       []StockItem       `json:"stock"`
	Purchases   []Purchase        `json:"purchases"`
}

// Flight is a logged flight. BatteryID is a weak reference to a Battery of the
// same Model and is empty when no battery was used.
type Flight struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Duration  float64 `json:"duration"` // minutes
	BatteryID string  `json:"batteryId"`
	Notes     string  `json:"notes"`
}

// Battery is a flight pack.
type Battery struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Number        string   `json:"number"`
	Capacity      *float64 `json:"capacity"`      // mAh
	DischargeRate *float64 `json:"dischargeRate"` // C rating
	Cells         *int     `json:"cells"`
	Voltage       *float64 `json:"voltage"`
	Notes         string   `json:"notes"`
	Cycles        int      `json:"cycles"`
	LastUsed      *string  `json:"lastUsed"`
}

// EffectiveVoltage returns the stored voltage, or the nominal voltage derived
// from the cell count when none was stored.
func (b Battery) EffectiveVoltage() *float64 {
	if b.Voltage != nil {
		return b.Voltage
	}
	if b.Cells == nil {
		return nil
	}
	return VoltageFromCells(*b.Cells)
}

// MaintenanceTask is a recurring maintenance job. A zero interval is unused.
type MaintenanceTask struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	IntervalDays    int     `json:"intervalDays"`
	IntervalFlights int     `json:"intervalFlights"`
	Notes           string  `json:"notes"`
	LastDoneDate    *string `json:"lastDoneDate"`
	LastDoneFlights int     `json:"lastDoneFlights"`
}

// StockItem is a spare part on hand.
type StockItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Reference string  `json:"reference"`
	Quantity  float64 `json:"quantity"`
	Minimum   float64 `json:"minimum"`
	Location  string  `json:"location"`
}

// IsLow reports whether the item is at or below its minimum.
func (s StockItem) IsLow() bool {
	return s.Quantity <= s.Minimum
}

// Purchase is a purchase history entry.
type Purchase struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Name      string   `json:"name"`
	Reference string   `json:"reference"`
	Quantity  float64  `json:"quantity"`
	Price     *float64 `json:"price"`
	Notes     string   `json:"notes"`
}

// SortSpec selects a sort key and direction ("asc" or "desc").
type SortSpec struct {
	Key string `json:"key"`
	Dir string `json:"dir"`
}

// Settings are global, shared by every Model.
type Settings struct {
	TabOrder                    []string `json:"tabOrder"`
	StockSort                   SortSpec `json:"stockSort"`
	StockBatterySort            SortSpec `json:"stockBatterySort"`
	StockBatteryNumberPlacement string   `json:"stockBatteryNumberPlacement"`
	LastTab                     string   `json:"lastTab"`
}

// Sort directions and number placements.
const (
	DirAsc  = "asc"
	DirDesc = "desc"

	PlacementFirst = "first"
	PlacementLast  = "last"
)

// Sort keys.
const (
	KeyName      = "name"
	KeyNumber    = "number"
	KeyReference = "reference"
	KeyQuantity  = "quantity"
)

// Model defaults.
const (
	DefaultModelName  = "ALIGN TREX 150 DFC"
	FallbackModelName = "Modele"
	DefaultTheme      = "#c0501a"
)

// Tab identifies a section of the interface.
type Tab struct {
	ID    string
	Label string
}

// Tab ids in canonical order.
const (
	TabFlights     = "flights"
	TabBatteries   = "batteries"
	TabMaintenance = "maintenance"
	TabStock       = "stock"
	TabPurchases   = "purchases"
	TabBackup      = "backup"
	TabSettings    = "settings"
)

var tabs = []Tab{
	{ID: TabFlights, Label: "Vols"},
	{ID: TabBatteries, Label: "Batteries"},
	{ID: TabMaintenance, Label: "Maintenance"},
	{ID: TabStock, Label: "Stock"},
	{ID: TabPurchases, Label: "Achats"},
	{ID: TabBackup, Label: "Sauvegarde"},
	{ID: TabSettings, Label: "Reglages"},
}

// Tabs returns the fixed tab set in canonical order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// TabLabel returns the display label for a tab id, or the id itself.
func TabLabel(id string) string {
	for _, t := range tabs {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

// ThemePreset is a named accent color.
type ThemePreset struct {
	Name  string
	Color string
}

// ThemePresets lists the built-in accent colors.
func ThemePresets() []ThemePreset {
	return []ThemePreset{
		{Name: "Copper", Color: "#c0501a"},
		{Name: "Ocean", Color: "#1f6aa5"},
		{Name: "Forest", Color: "#2a7b50"},
		{Name: "Cobalt", Color: "#2d4aa1"},
		{Name: "Crimson", Color: "#a22a2a"},
		{Name: "Amber", Color: "#d88b1f"},
	}
}

// DefaultSettings returns a fresh copy of the default settings.
func DefaultSettings() Settings {
	order := make([]string, len(tabs))
	for i, t := range tabs {
		order[i] = t.ID
	}
	return Settings{
		TabOrder:                    order,
		StockSort:                   SortSpec{Key: KeyReference, Dir: DirAsc},
		StockBatterySort:            SortSpec{Key: KeyNumber, Dir: DirAsc},
		StockBatteryNumberPlacement: PlacementFirst,
		LastTab:                     TabFlights,
	}
}

// NewModel returns an empty Model with a fresh id.
func NewModel(name, themeColor string) Model {
	return Model{
		ID:          NewID(),
		Name:        name,
		ThemeColor:  themeColor,
		Flights:     []Flight{},
		Batteries:   []Battery{},
		Maintenance: []MaintenanceTask{},
		Stock:       []StockItem{},
		Purchases:   []Purchase{},
	}
}

// NewDocument returns a document holding one default Model.
func NewDocument() Document {
	m := NewModel(DefaultModelName, DefaultTheme)
	return Document{
		Models:        []Model{m},
		ActiveModelID: m.ID,
		Settings:      DefaultSettings(),
	}
}

// Active returns the index of the active Model, falling back to the first
// Model. It returns -1 only for a document without models.
func (d Document) Active() int {
	for i, m := range d.Models {
		if m.ID == d.ActiveModelID {
			return i
		}
	}
	if len(d.Models) == 0 {
		return -1
	}
	return 0
}

// ModelIndex returns the index of the Model with the given id, or -1.
func (d Document) ModelIndex(id string) int {
	for i, m := range d.Models {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		ActiveModelID: d.ActiveModelID,
		Settings:      d.Settings.Clone(),
	}
	if d.Models != nil {
		out.Models = make([]Model, len(d.Models))
		for i, m := range d.Models {
			out.Models[i] = m.Clone()
		}
	}
	return out
}

// Clone returns a copy of the settings that shares no slices.
func (s Settings) Clone() Settings {
	out := s
	if s.TabOrder != nil {
		out.TabOrder = append([]string(nil), s.TabOrder...)
	}
	return out
}

// Clone returns a deep copy of the model.
func (m Model) Clone() Model {
	out := m
	out.Flights = append([]Flight{}, m.Flights...)
	out.Maintenance = make([]MaintenanceTask, len(m.Maintenance))
	for i, t := range m.Maintenance {
		t.LastDoneDate = cloneString(t.LastDoneDate)
		out.Maintenance[i] = t
	}
	out.Batteries = make([]Battery, len(m.Batteries))
	for i, b := range m.Batteries {
		out.Batteries[i] = b.Clone()
	}
	out.Stock = append([]StockItem{}, m.Stock...)
	out.Purchases = make([]Purchase, len(m.Purchases))
	for i, p := range m.Purchases {
		p.Price = cloneFloat(p.Price)
		out.Purchases[i] = p
	}
	return out
}

// Clone returns a copy of the battery that shares no pointers.
func (b Battery) Clone() Battery {
	b.Capacity = cloneFloat(b.Capacity)
	b.DischargeRate = cloneFloat(b.DischargeRate)
	b.Voltage = cloneFloat(b.Voltage)
	b.LastUsed = cloneString(b.LastUsed)
	if b.Cells != nil {
		c := *b.Cells
		b.Cells = &c
	}
	return b
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
