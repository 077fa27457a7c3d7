package logbook

// Stats aggregates a model's headline numbers.
type Stats struct {
	Flights   int
	Minutes   float64
	Batteries int
}

// Stats returns the flight count, total flight minutes and battery count.
func (m Model) Stats() Stats {
	st := Stats{Flights: len(m.Flights), Batteries: len(m.Batteries)}
	for _, f := range m.Flights {
		st.Minutes += f.Duration
	}
	return st
}

// Battery returns the battery with the given id.
func (m Model) Battery(id string) (Battery, bool) {
	for _, b := range m.Batteries {
		if b.ID == id {
			return b, true
		}
	}
	return Battery{}, false
}

// Label names the battery as "Name #Number", or whichever part is set.
func (b Battery) Label() string {
	switch {
	case b.Number == "":
		return b.Name
	case b.Name == "":
		return b.Number
	default:
		return b.Name + " #" + b.Number
	}
}
