package logbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func batteryLabels(items []Battery) []string {
	out := make([]string, len(items))
	for i, b := range items {
		out[i] = b.Name + "/" + b.Number
	}
	return out
}

func stockNames(items []StockItem) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Name
	}
	return out
}

func TestSortBatteries_NumberFirstPlacement(t *testing.T) {
	s := NewSorter("fr-FR")
	in := []Battery{
		{Name: "Z", Number: ""},
		{Name: "A", Number: "B10"},
		{Name: "A", Number: "B2"},
	}

	got := s.SortBatteries(in, SortSpec{Key: KeyNumber, Dir: DirAsc}, PlacementFirst)
	assert.Equal(t, []string{"Z/", "A/B2", "A/B10"}, batteryLabels(got))

	// input untouched
	assert.Equal(t, "Z", in[0].Name)
}

func TestSortBatteries_NumberLastPlacement(t *testing.T) {
	s := NewSorter("fr-FR")
	in := []Battery{
		{Name: "Z", Number: "  "},
		{Name: "A", Number: "B10"},
		{Name: "A", Number: "b2"},
	}

	got := s.SortBatteries(in, SortSpec{Key: KeyNumber, Dir: DirAsc}, PlacementLast)
	assert.Equal(t, []string{"A/b2", "A/B10", "Z/  "}, batteryLabels(got))
}

func TestSortBatteries_DescFlipsPlacement(t *testing.T) {
	s := NewSorter("fr-FR")
	in := []Battery{
		{Name: "Z"},
		{Name: "A", Number: "B2"},
		{Name: "A", Number: "B10"},
	}

	got := s.SortBatteries(in, SortSpec{Key: KeyNumber, Dir: DirDesc}, PlacementFirst)
	assert.Equal(t, []string{"A/B10", "A/B2", "Z/"}, batteryLabels(got))
}

func TestSortBatteries_ByNameThenNumber(t *testing.T) {
	s := NewSorter("fr-FR")
	in := []Battery{
		{Name: "pack 10", Number: "1"},
		{Name: "Pack 2", Number: "7"},
		{Name: "Pack 2", Number: ""},
		{Name: "Pack 2", Number: "3"},
	}

	got := s.SortBatteries(in, SortSpec{Key: KeyName, Dir: DirAsc}, PlacementLast)
	assert.Equal(t, []string{"Pack 2/3", "Pack 2/7", "Pack 2/", "pack 10/1"}, batteryLabels(got))
}

func TestSortBatteries_NumberTieBrokenByName(t *testing.T) {
	s := NewSorter("fr-FR")
	in := []Battery{
		{Name: "Zeta", Number: "B1"},
		{Name: "alpha", Number: "b1"},
	}

	got := s.SortBatteries(in, SortSpec{Key: KeyNumber, Dir: DirAsc}, PlacementFirst)
	assert.Equal(t, []string{"alpha/b1", "Zeta/B1"}, batteryLabels(got))
}

func TestSortStock(t *testing.T) {
	s := NewSorter("fr-FR")
	items := []StockItem{
		{Name: "Pinion", Reference: "H0120", Quantity: 3},
		{Name: "Blade", Reference: "", Quantity: 1},
		{Name: "Canopy", Reference: "H0011", Quantity: 2},
	}

	tests := []struct {
		name string
		spec SortSpec
		want []string
	}{
		{"quantity desc", SortSpec{Key: KeyQuantity, Dir: DirDesc}, []string{"Pinion", "Canopy", "Blade"}},
		{"quantity asc", SortSpec{Key: KeyQuantity, Dir: DirAsc}, []string{"Blade", "Canopy", "Pinion"}},
		{"reference asc", SortSpec{Key: KeyReference, Dir: DirAsc}, []string{"Blade", "Canopy", "Pinion"}},
		{"name desc", SortSpec{Key: KeyName, Dir: DirDesc}, []string{"Pinion", "Canopy", "Blade"}},
		{"unknown key sorts by name", SortSpec{Key: "colour", Dir: DirAsc}, []string{"Blade", "Canopy", "Pinion"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stockNames(s.SortStock(items, tt.spec)))
		})
	}
}

func TestSortFlightsAndPurchases_NewestFirst(t *testing.T) {
	flights := SortFlights([]Flight{{ID: "a", Date: "2024-01-05"}, {ID: "b", Date: "2024-03-01"}, {ID: "c", Date: "2023-12-31"}})
	assert.Equal(t, "b", flights[0].ID)
	assert.Equal(t, "c", flights[2].ID)

	purchases := SortPurchases([]Purchase{{ID: "a", Date: "2022-01-01"}, {ID: "b", Date: "2024-01-01"}})
	assert.Equal(t, "b", purchases[0].ID)
}

func TestNewSorter_BadLocaleFallsBack(t *testing.T) {
	s := NewSorter("not a locale!!")
	got := s.SortBatteries([]Battery{{Number: "B10"}, {Number: "B9"}}, SortSpec{Key: KeyNumber}, PlacementFirst)
	assert.Equal(t, "B9", got[0].Number)
}
