package logbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
	assert.NotEmpty(t, fallbackID())
}

func TestVoltageFromCells(t *testing.T) {
	v := VoltageFromCells(3)
	require.NotNil(t, v)
	assert.Equal(t, 11.1, *v)

	v = VoltageFromCells(6)
	require.NotNil(t, v)
	assert.Equal(t, 22.2, *v)

	assert.Nil(t, VoltageFromCells(0))
	assert.Nil(t, VoltageFromCells(-2))
}

func TestBattery_EffectiveVoltage(t *testing.T) {
	cells := 2
	b := Battery{Cells: &cells}
	require.NotNil(t, b.EffectiveVoltage())
	assert.Equal(t, 7.4, *b.EffectiveVoltage())

	stored := 8.4
	b.Voltage = &stored
	assert.Equal(t, 8.4, *b.EffectiveVoltage())

	assert.Nil(t, Battery{}.EffectiveVoltage())
}

func TestDocument_CloneIsDeep(t *testing.T) {
	doc := NewDocument()
	cells := 3
	doc.Models[0].Batteries = []Battery{{ID: "b1", Cells: &cells}}

	dup := doc.Clone()
	*dup.Models[0].Batteries[0].Cells = 6
	dup.Models[0].Name = "changed"
	dup.Settings.TabOrder[0] = "settings"

	assert.Equal(t, 3, *doc.Models[0].Batteries[0].Cells)
	assert.Equal(t, DefaultModelName, doc.Models[0].Name)
	assert.Equal(t, TabFlights, doc.Settings.TabOrder[0])
}

func TestDocument_Active(t *testing.T) {
	doc := Document{Models: []Model{{ID: "a"}, {ID: "b"}}, ActiveModelID: "b"}
	assert.Equal(t, 1, doc.Active())

	doc.ActiveModelID = "missing"
	assert.Equal(t, 0, doc.Active())

	assert.Equal(t, -1, Document{}.Active())
}

func TestModel_Stats(t *testing.T) {
	m := Model{
		Flights:   []Flight{{Duration: 5}, {Duration: 6.5}},
		Batteries: []Battery{{}, {}, {}},
	}
	assert.Equal(t, Stats{Flights: 2, Minutes: 11.5, Batteries: 3}, m.Stats())
}

func TestStockItem_IsLow(t *testing.T) {
	assert.True(t, StockItem{Quantity: 1, Minimum: 1}.IsLow())
	assert.False(t, StockItem{Quantity: 2, Minimum: 1}.IsLow())
}

func TestTabLabel(t *testing.T) {
	assert.Equal(t, "Achats", TabLabel(TabPurchases))
	assert.Equal(t, "unknown", TabLabel("unknown"))
	assert.Len(t, Tabs(), 7)
}

func TestDocument_Repair(t *testing.T) {
	doc := Document{}.Repair()
	require.Len(t, doc.Models, 1)
	assert.Equal(t, doc.Models[0].ID, doc.ActiveModelID)
	assert.Equal(t, DefaultSettings(), doc.Settings)

	doc = Document{
		Models:        []Model{{ID: "a"}, {ID: "b", Name: "Blade"}},
		ActiveModelID: "gone",
		Settings:      Settings{TabOrder: []string{"stock"}, LastTab: "stock", StockBatteryNumberPlacement: PlacementLast},
	}.Repair()
	assert.Equal(t, "a", doc.ActiveModelID)
	assert.Equal(t, FallbackModelName, doc.Models[0].Name)
	assert.NotNil(t, doc.Models[0].Flights)
	assert.Equal(t, "stock", doc.Settings.TabOrder[0])
	assert.Len(t, doc.Settings.TabOrder, 7)
	assert.Equal(t, PlacementLast, doc.Settings.StockBatteryNumberPlacement)
	assert.Equal(t, TabStock, doc.Settings.LastTab)
}
