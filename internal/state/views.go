package state

import (
	"github.com/five82/hangar/internal/logbook"
)

// MaintenanceView pairs a task with its due status at read time.
type MaintenanceView struct {
	Task   logbook.MaintenanceTask
	Status logbook.DueStatus
}

// Document returns a deep copy of the whole document.
func (s *Store) Document() logbook.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// ActiveModel returns a deep copy of the active model.
func (s *Store) ActiveModel() logbook.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Models[s.doc.Active()].Clone()
}

// Models lists every model in document order.
func (s *Store) Models() []ModelRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := s.doc.Active()
	out := make([]ModelRef, len(s.doc.Models))
	for i, m := range s.doc.Models {
		out[i] = ModelRef{ID: m.ID, Name: m.Name, ThemeColor: m.ThemeColor, Active: i == active}
	}
	return out
}

// Settings returns a copy of the global settings.
func (s *Store) Settings() logbook.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Settings.Clone()
}

// Locale returns the collation locale used by the sorted views.
func (s *Store) Locale() string {
	return s.locale
}

// Flights returns the active model's flights, newest first.
func (s *Store) Flights() []logbook.Flight {
	return logbook.SortFlights(s.ActiveModel().Flights)
}

// Batteries returns the active model's batteries in the configured order.
func (s *Store) Batteries() []logbook.Battery {
	m := s.ActiveModel()
	set := s.Settings()
	return logbook.NewSorter(s.locale).SortBatteries(m.Batteries, set.StockBatterySort, set.StockBatteryNumberPlacement)
}

// Stock returns the active model's stock in the configured order.
func (s *Store) Stock() []logbook.StockItem {
	m := s.ActiveModel()
	return logbook.NewSorter(s.locale).SortStock(m.Stock, s.Settings().StockSort)
}

// Purchases returns the active model's purchases, newest first.
func (s *Store) Purchases() []logbook.Purchase {
	return logbook.SortPurchases(s.ActiveModel().Purchases)
}

// Maintenance returns the active model's tasks with their due status.
func (s *Store) Maintenance() []MaintenanceView {
	m := s.ActiveModel()
	now := s.now()
	out := make([]MaintenanceView, len(m.Maintenance))
	for i, t := range m.Maintenance {
		out[i] = MaintenanceView{Task: t, Status: logbook.Due(t, len(m.Flights), now)}
	}
	return out
}

// Stats returns the active model's counters.
func (s *Store) Stats() logbook.Stats {
	return s.ActiveModel().Stats()
}
