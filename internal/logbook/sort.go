package logbook

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used when none is configured.
const DefaultLocale = "fr-FR"

// Sorter orders lists for display. Collators are not safe for concurrent use,
// so a Sorter must not be shared between goroutines.
type Sorter struct {
	text   *collate.Collator // plain locale comparison
	labels *collate.Collator // numeric, case and accent insensitive
}

// NewSorter returns a Sorter for a BCP 47 locale such as "fr-FR". An
// unparseable locale falls back to DefaultLocale.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Sorter{
		text:   collate.New(tag),
		labels: collate.New(tag, collate.Numeric, collate.Loose),
	}
}

// SortStock returns the stock items ordered by spec. Quantity compares
// numerically, any other key compares reference or name text. A "desc"
// direction reverses the whole ordering.
func (s *Sorter) SortStock(items []StockItem, spec SortSpec) []StockItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b StockItem) int {
		switch spec.Key {
		case KeyQuantity:
			return cmp.Compare(a.Quantity, b.Quantity)
		case KeyReference:
			return s.text.CompareString(a.Reference, b.Reference)
		default:
			return s.text.CompareString(a.Name, b.Name)
		}
	})
	if spec.Dir == DirDesc {
		slices.Reverse(out)
	}
	return out
}

// SortBatteries returns the batteries ordered by spec. Labels compare
// numerically ("B2" before "B10") and case-insensitively. When exactly one of
// two batteries has a number, placement decides: "first" puts the numberless
// battery before the numbered one, anything else after. The placement rule
// applies before a "desc" reversal and is therefore flipped by it.
func (s *Sorter) SortBatteries(items []Battery, spec SortSpec, placement string) []Battery {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Battery) int {
		numA, numB := strings.TrimSpace(a.Number), strings.TrimSpace(b.Number)
		nameA, nameB := strings.TrimSpace(a.Name), strings.TrimSpace(b.Name)

		if spec.Key == KeyName {
			if c := s.labels.CompareString(nameA, nameB); c != 0 {
				return c
			}
		}
		if c := s.compareNumbers(numA, numB, placement); c != 0 {
			return c
		}
		if spec.Key != KeyName {
			return s.labels.CompareString(nameA, nameB)
		}
		return 0
	})
	if spec.Dir == DirDesc {
		slices.Reverse(out)
	}
	return out
}

func (s *Sorter) compareNumbers(a, b, placement string) int {
	hasA, hasB := a != "", b != ""
	switch {
	case hasA && hasB:
		return s.labels.CompareString(a, b)
	case hasA == hasB:
		return 0
	}
	numberlessFirst := placement == PlacementFirst
	if hasA == numberlessFirst {
		return 1
	}
	return -1
}

// SortFlights returns the flights newest first. Dates are ISO strings, so
// text order is date order.
func SortFlights(items []Flight) []Flight {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Flight) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}

// SortPurchases returns the purchases newest first.
func SortPurchases(items []Purchase) []Purchase {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Purchase) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}
