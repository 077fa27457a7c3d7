package state

import (
	"strings"

	"github.com/five82/hangar/internal/logbook"
)

// FlightInput holds the fields of a new flight. An empty Date means today.
type FlightInput struct {
	Date      string
	Duration  float64
	BatteryID string
	Notes     string
}

// BatteryInput holds the fields of a new battery. Zero numbers are stored as
// null; the voltage is derived from Cells.
type BatteryInput struct {
	Name          string
	Number        string
	Capacity      float64
	DischargeRate float64
	Cells         int
	Notes         string
}

// MaintenanceInput holds the fields of a new maintenance task.
type MaintenanceInput struct {
	Title           string
	IntervalDays    int
	IntervalFlights int
	Notes           string
}

// StockInput holds the editable fields of a stock item.
type StockInput struct {
	Name      string
	Reference string
	Quantity  float64
	Minimum   float64
	Location  string
}

// PurchaseInput holds the fields of a new purchase. A zero Quantity means 1.
type PurchaseInput struct {
	Date      string
	Name      string
	Reference string
	Quantity  float64
	Price     *float64
	Notes     string
}

// AddFlight logs a flight on the active model. When the flight references a
// battery of the model, that battery gains a cycle and its last-used date
// becomes the flight date.
func (s *Store) AddFlight(in FlightInput) (logbook.Flight, error) {
	f := logbook.Flight{
		ID:        logbook.NewID(),
		Date:      strings.TrimSpace(in.Date),
		Duration:  in.Duration,
		BatteryID: strings.TrimSpace(in.BatteryID),
		Notes:     strings.TrimSpace(in.Notes),
	}
	if f.Date == "" {
		f.Date = s.today()
	}
	if f.Duration < 0 {
		f.Duration = 0
	}
	err := s.updateActive(func(m *logbook.Model) error {
		m.Flights = append(m.Flights, f)
		if i := index(m.Batteries, f.BatteryID, batteryID); i >= 0 {
			b := &m.Batteries[i]
			b.Cycles++
			date := f.Date
			b.LastUsed = &date
		}
		return nil
	})
	return f, err
}

// DeleteFlight removes a flight from the active model.
func (s *Store) DeleteFlight(id string) error {
	return s.updateActive(func(m *logbook.Model) error {
		var ok bool
		if m.Flights, ok = remove(m.Flights, id, flightID); !ok {
			return notFound("flight", id)
		}
		return nil
	})
}

// AddBattery adds a battery to the active model.
func (s *Store) AddBattery(in BatteryInput) (logbook.Battery, error) {
	b := logbook.Battery{
		ID:            logbook.NewID(),
		Name:          strings.TrimSpace(in.Name),
		Number:        strings.TrimSpace(in.Number),
		Capacity:      nonZero(in.Capacity),
		DischargeRate: nonZero(in.DischargeRate),
		Cells:         nonZero(in.Cells),
		Notes:         strings.TrimSpace(in.Notes),
	}
	if b.Cells != nil {
		b.Voltage = logbook.VoltageFromCells(*b.Cells)
	}
	err := s.updateActive(func(m *logbook.Model) error {
		m.Batteries = append(m.Batteries, b)
		return nil
	})
	return b.Clone(), err
}

// IncrementCycle records one manual use of a battery today.
func (s *Store) IncrementCycle(id string) error {
	today := s.today()
	return s.updateActive(func(m *logbook.Model) error {
		i := index(m.Batteries, id, batteryID)
		if i < 0 {
			return notFound("battery", id)
		}
		m.Batteries[i].Cycles++
		m.Batteries[i].LastUsed = &today
		return nil
	})
}

// DeleteBattery removes a battery. Flights that used it keep their record
// with the battery reference cleared.
func (s *Store) DeleteBattery(id string) error {
	return s.updateActive(func(m *logbook.Model) error {
		var ok bool
		if m.Batteries, ok = remove(m.Batteries, id, batteryID); !ok {
			return notFound("battery", id)
		}
		for i := range m.Flights {
			if m.Flights[i].BatteryID == id {
				m.Flights[i].BatteryID = ""
			}
		}
		return nil
	})
}

// DuplicateBattery returns a prefilled BatteryInput copied from an existing
// battery. Nothing is stored until the draft is passed to AddBattery.
func (s *Store) DuplicateBattery(id string) (BatteryInput, error) {
	m := s.ActiveModel()
	b, ok := m.Battery(id)
	if !ok || id == "" {
		return BatteryInput{}, notFound("battery", id)
	}
	in := BatteryInput{Number: b.Number, Notes: b.Notes}
	if b.Name != "" {
		in.Name = copySuffix(b.Name)
	}
	if b.Capacity != nil {
		in.Capacity = *b.Capacity
	}
	if b.DischargeRate != nil {
		in.DischargeRate = *b.DischargeRate
	}
	if b.Cells != nil {
		in.Cells = *b.Cells
	}
	return in, nil
}

// AddMaintenance adds a maintenance task that has never been done.
func (s *Store) AddMaintenance(in MaintenanceInput) (logbook.MaintenanceTask, error) {
	t := logbook.MaintenanceTask{
		ID:              logbook.NewID(),
		Title:           strings.TrimSpace(in.Title),
		IntervalDays:    max(in.IntervalDays, 0),
		IntervalFlights: max(in.IntervalFlights, 0),
		Notes:           strings.TrimSpace(in.Notes),
	}
	err := s.updateActive(func(m *logbook.Model) error {
		m.Maintenance = append(m.Maintenance, t)
		return nil
	})
	return t, err
}

// MarkMaintenanceDone stamps today's date and the model's current flight count.
func (s *Store) MarkMaintenanceDone(id string) error {
	today := s.today()
	return s.updateActive(func(m *logbook.Model) error {
		i := index(m.Maintenance, id, taskID)
		if i < 0 {
			return notFound("maintenance task", id)
		}
		m.Maintenance[i].LastDoneDate = &today
		m.Maintenance[i].LastDoneFlights = len(m.Flights)
		return nil
	})
}

// DeleteMaintenance removes a maintenance task.
func (s *Store) DeleteMaintenance(id string) error {
	return s.updateActive(func(m *logbook.Model) error {
		var ok bool
		if m.Maintenance, ok = remove(m.Maintenance, id, taskID); !ok {
			return notFound("maintenance task", id)
		}
		return nil
	})
}

func (in StockInput) apply(item *logbook.StockItem) {
	item.Name = strings.TrimSpace(in.Name)
	item.Reference = strings.TrimSpace(in.Reference)
	item.Quantity = in.Quantity
	item.Minimum = in.Minimum
	item.Location = strings.TrimSpace(in.Location)
}

// AddStock adds a stock item.
func (s *Store) AddStock(in StockInput) (logbook.StockItem, error) {
	item := logbook.StockItem{ID: logbook.NewID()}
	in.apply(&item)
	err := s.updateActive(func(m *logbook.Model) error {
		m.Stock = append(m.Stock, item)
		return nil
	})
	return item, err
}

// UpdateStock replaces the editable fields of a stock item in place.
func (s *Store) UpdateStock(id string, in StockInput) error {
	return s.updateActive(func(m *logbook.Model) error {
		i := index(m.Stock, id, stockID)
		if i < 0 {
			return notFound("stock item", id)
		}
		in.apply(&m.Stock[i])
		return nil
	})
}

// DuplicateStock stores a copy of a stock item under a new id.
func (s *Store) DuplicateStock(id string) (logbook.StockItem, error) {
	var dup logbook.StockItem
	err := s.updateActive(func(m *logbook.Model) error {
		i := index(m.Stock, id, stockID)
		if i < 0 {
			return notFound("stock item", id)
		}
		dup = m.Stock[i]
		dup.ID = logbook.NewID()
		dup.Name = copySuffix(dup.Name)
		m.Stock = append(m.Stock, dup)
		return nil
	})
	return dup, err
}

// DeleteStock removes a stock item.
func (s *Store) DeleteStock(id string) error {
	return s.updateActive(func(m *logbook.Model) error {
		var ok bool
		if m.Stock, ok = remove(m.Stock, id, stockID); !ok {
			return notFound("stock item", id)
		}
		return nil
	})
}

// AddPurchase records a purchase. An empty Date means today.
func (s *Store) AddPurchase(in PurchaseInput) (logbook.Purchase, error) {
	p := logbook.Purchase{
		ID:        logbook.NewID(),
		Date:      strings.TrimSpace(in.Date),
		Name:      strings.TrimSpace(in.Name),
		Reference: strings.TrimSpace(in.Reference),
		Quantity:  in.Quantity,
		Notes:     strings.TrimSpace(in.Notes),
	}
	if p.Date == "" {
		p.Date = s.today()
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if in.Price != nil {
		price := *in.Price
		p.Price = &price
	}
	err := s.updateActive(func(m *logbook.Model) error {
		m.Purchases = append(m.Purchases, p)
		return nil
	})
	return p, err
}

// DeletePurchase removes a purchase.
func (s *Store) DeletePurchase(id string) error {
	return s.updateActive(func(m *logbook.Model) error {
		var ok bool
		if m.Purchases, ok = remove(m.Purchases, id, purchaseID); !ok {
			return notFound("purchase", id)
		}
		return nil
	})
}
