package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/state"
)

var errAmbiguous = errors.New("ambiguous reference")

// minPrefix is the shortest id prefix accepted as a reference.
const minPrefix = 4

// resolve finds the item ref points to: an exact id first, then an exact
// natural key ignoring case, then a unique id prefix.
func resolve[T any](kind string, items []T, ref string, id func(T) string, keys ...func(T) string) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, fmt.Errorf("%w: empty %s reference", state.ErrNotFound, kind)
	}

	for _, it := range items {
		if id(it) == ref {
			return it, nil
		}
	}

	var matches []T
	for _, it := range items {
		for _, key := range keys {
			if k := key(it); k != "" && strings.EqualFold(k, ref) {
				matches = append(matches, it)
				break
			}
		}
	}
	if len(matches) == 0 && len(ref) >= minPrefix {
		for _, it := range items {
			if strings.HasPrefix(id(it), ref) {
				matches = append(matches, it)
			}
		}
	}

	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("%w: %s %q", state.ErrNotFound, kind, ref)
	case 1:
		return matches[0], nil
	}
	return zero, fmt.Errorf("%w: %d matches for %s %q", errAmbiguous, len(matches), kind, ref)
}

func resolveFlight(s *state.Store, ref string) (logbook.Flight, error) {
	return resolve("flight", s.Flights(), ref, func(f logbook.Flight) string { return f.ID })
}

func resolveBattery(s *state.Store, ref string) (logbook.Battery, error) {
	return resolve("battery", s.Batteries(), ref,
		func(b logbook.Battery) string { return b.ID },
		func(b logbook.Battery) string { return b.Number },
		func(b logbook.Battery) string { return b.Name },
	)
}

func resolveTask(s *state.Store, ref string) (logbook.MaintenanceTask, error) {
	tasks := make([]logbook.MaintenanceTask, 0)
	for _, v := range s.Maintenance() {
		tasks = append(tasks, v.Task)
	}
	return resolve("task", tasks, ref,
		func(t logbook.MaintenanceTask) string { return t.ID },
		func(t logbook.MaintenanceTask) string { return t.Title },
	)
}

func resolveStock(s *state.Store, ref string) (logbook.StockItem, error) {
	return resolve("stock item", s.Stock(), ref,
		func(i logbook.StockItem) string { return i.ID },
		func(i logbook.StockItem) string { return i.Reference },
		func(i logbook.StockItem) string { return i.Name },
	)
}

func resolvePurchase(s *state.Store, ref string) (logbook.Purchase, error) {
	return resolve("purchase", s.Purchases(), ref, func(p logbook.Purchase) string { return p.ID })
}

func resolveModel(s *state.Store, ref string) (state.ModelRef, error) {
	return resolve("model", s.Models(), ref,
		func(m state.ModelRef) string { return m.ID },
		func(m state.ModelRef) string { return m.Name },
	)
}
