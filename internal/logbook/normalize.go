package logbook

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrMalformed reports input that is not parseable JSON.
var ErrMalformed = errors.New("malformed document")

// Parse decodes and normalizes a persisted or imported document. It fails only
// when data is not valid JSON.
func Parse(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, ErrMalformed
	}
	return Normalize(gjson.ParseBytes(data)), nil
}

// Normalize maps any JSON value onto a valid Document. Both the multi-model
// shape and the legacy single-model shape are accepted.
func Normalize(raw gjson.Result) Document {
	if !raw.IsObject() {
		raw = gjson.Result{}
	}
	settings := NormalizeSettings(raw.Get("settings"))

	if models := raw.Get("models"); models.IsArray() {
		var out []Model
		for _, el := range models.Array() {
			out = append(out, NormalizeModel(el))
		}
		if len(out) == 0 {
			out = []Model{NewModel(DefaultModelName, DefaultTheme)}
		}
		doc := Document{Models: out, ActiveModelID: out[0].ID, Settings: settings}
		if want := text(raw.Get("activeModelId")); want != "" && doc.ModelIndex(want) >= 0 {
			doc.ActiveModelID = want
		}
		return doc
	}

	m := legacyModel(raw)
	return Document{Models: []Model{m}, ActiveModelID: m.ID, Settings: settings}
}

// legacyModel builds the single Model of a pre-multi-model document. The
// accent color lived in the settings object in that format.
func legacyModel(raw gjson.Result) Model {
	name := text(raw.Get("modelName"))
	if name == "" {
		name = DefaultModelName
	}
	theme := text(raw.Get("settings.themeColor"))
	if theme == "" {
		theme = DefaultTheme
	}
	m := NewModel(name, theme)
	m.Flights = decodeFlights(raw.Get("flights"))
	m.Batteries = decodeBatteries(raw.Get("batteries"))
	m.Maintenance = decodeMaintenance(raw.Get("maintenance"))
	// Legacy stock items predate the reference field; the decoder leaves it
	// empty when absent.
	m.Stock = decodeStock(raw.Get("stock"))
	m.Purchases = decodePurchases(raw.Get("purchases"))
	return m
}

// NormalizeModel fills missing identity fields and coerces the five lists to
// empty lists when they are not list-shaped.
func NormalizeModel(raw gjson.Result) Model {
	m := Model{
		ID:          text(raw.Get("id")),
		Name:        text(raw.Get("name")),
		ThemeColor:  text(raw.Get("themeColor")),
		Flights:     decodeFlights(raw.Get("flights")),
		Batteries:   decodeBatteries(raw.Get("batteries")),
		Maintenance: decodeMaintenance(raw.Get("maintenance")),
		Stock:       decodeStock(raw.Get("stock")),
		Purchases:   decodePurchases(raw.Get("purchases")),
	}
	if m.ID == "" {
		m.ID = NewID()
	}
	if m.Name == "" {
		m.Name = FallbackModelName
	}
	if m.ThemeColor == "" {
		m.ThemeColor = DefaultTheme
	}
	return m
}

// NormalizeSettings merges raw settings onto the defaults field by field.
func NormalizeSettings(raw gjson.Result) Settings {
	s := DefaultSettings()
	if !raw.IsObject() {
		return s
	}
	s.StockSort = mergeSort(s.StockSort, raw.Get("stockSort"))
	s.StockBatterySort = mergeSort(s.StockBatterySort, raw.Get("stockBatterySort"))
	if p := text(raw.Get("stockBatteryNumberPlacement")); p != "" {
		s.StockBatteryNumberPlacement = p
	}
	if order := raw.Get("tabOrder"); order.IsArray() {
		var ids []string
		for _, el := range order.Array() {
			if el.Type == gjson.String {
				ids = append(ids, el.Str)
			}
		}
		s.TabOrder = NormalizeTabOrder(ids)
	}
	if last := text(raw.Get("lastTab")); IsTab(last) {
		s.LastTab = last
	}
	return s
}

// mergeSort overrides key and dir independently when raw supplies them.
func mergeSort(def SortSpec, raw gjson.Result) SortSpec {
	if !raw.IsObject() {
		return def
	}
	if k := raw.Get("key"); k.Exists() {
		def.Key = k.String()
	}
	if d := raw.Get("dir"); d.Exists() {
		def.Dir = d.String()
	}
	return def
}

// NormalizeTabOrder keeps known tab ids in their given order, drops unknown
// ids and duplicates, then appends missing ids in canonical order. The result
// is always a permutation of the tab set.
func NormalizeTabOrder(ids []string) []string {
	seen := make(map[string]bool, len(tabs))
	out := make([]string, 0, len(tabs))
	for _, id := range ids {
		if IsTab(id) && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, t := range tabs {
		if !seen[t.ID] {
			out = append(out, t.ID)
		}
	}
	return out
}

// IsTab reports whether id names one of the fixed tabs.
func IsTab(id string) bool {
	for _, t := range tabs {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Repair restores the document invariants on an already typed document: at
// least one model, nil lists replaced by empty ones, a valid active model and
// a complete tab order.
func (d Document) Repair() Document {
	out := d.Clone()
	if len(out.Models) == 0 {
		out.Models = []Model{NewModel(DefaultModelName, DefaultTheme)}
	}
	for i := range out.Models {
		m := &out.Models[i]
		if m.ID == "" {
			m.ID = NewID()
		}
		if m.Name == "" {
			m.Name = FallbackModelName
		}
		if m.ThemeColor == "" {
			m.ThemeColor = DefaultTheme
		}
	}
	out.ActiveModelID = out.Models[out.Active()].ID
	out.Settings.TabOrder = NormalizeTabOrder(out.Settings.TabOrder)
	def := DefaultSettings()
	if out.Settings.StockSort.Key == "" && out.Settings.StockSort.Dir == "" {
		out.Settings.StockSort = def.StockSort
	}
	if out.Settings.StockBatterySort.Key == "" && out.Settings.StockBatterySort.Dir == "" {
		out.Settings.StockBatterySort = def.StockBatterySort
	}
	if out.Settings.StockBatteryNumberPlacement == "" {
		out.Settings.StockBatteryNumberPlacement = def.StockBatteryNumberPlacement
	}
	if !IsTab(out.Settings.LastTab) {
		out.Settings.LastTab = def.LastTab
	}
	return out
}
