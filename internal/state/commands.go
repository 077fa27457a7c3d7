package state

// Command is a user action applied to a Store. The TUI and CLI build commands
// and hand them to Dispatch rather than calling store methods directly.
type Command interface {
	Apply(s *Store) error
}

// Dispatch applies cmd.
func (s *Store) Dispatch(cmd Command) error {
	return cmd.Apply(s)
}

// Commands, one per Store mutation.
type (
	AddFlight    struct{ Input FlightInput }
	DeleteFlight struct{ ID string }

	AddBattery     struct{ Input BatteryInput }
	IncrementCycle struct{ ID string }
	DeleteBattery  struct{ ID string }

	AddMaintenance      struct{ Input MaintenanceInput }
	MarkMaintenanceDone struct{ ID string }
	DeleteMaintenance   struct{ ID string }

	AddStock       struct{ Input StockInput }
	DuplicateStock struct{ ID string }
	DeleteStock    struct{ ID string }

	UpdateStock struct {
		ID    string
		Input StockInput
	}

	AddPurchase    struct{ Input PurchaseInput }
	DeletePurchase struct{ ID string }

	AddModel struct {
		Name  string
		Color string
	}

	RenameModel struct {
		ID   string
		Name string
	}

	DeleteModel    struct{ ID string }
	SetActiveModel struct{ ID string }
	SetThemeColor  struct{ Color string }

	SetStockSort struct {
		Key string
		Dir string
	}

	SetBatterySort struct {
		Key string
		Dir string
	}

	SetBatteryNumberPlacement struct{ Placement string }

	MoveTab struct {
		Tab   string
		Delta int
	}

	SetLastTab struct{ Tab string }
)

func (c AddFlight) Apply(s *Store) error {
	_, err := s.AddFlight(c.Input)
	return err
}

func (c DeleteFlight) Apply(s *Store) error { return s.DeleteFlight(c.ID) }

func (c AddBattery) Apply(s *Store) error {
	_, err := s.AddBattery(c.Input)
	return err
}

func (c IncrementCycle) Apply(s *Store) error { return s.IncrementCycle(c.ID) }
func (c DeleteBattery) Apply(s *Store) error  { return s.DeleteBattery(c.ID) }

func (c AddMaintenance) Apply(s *Store) error {
	_, err := s.AddMaintenance(c.Input)
	return err
}

func (c MarkMaintenanceDone) Apply(s *Store) error { return s.MarkMaintenanceDone(c.ID) }
func (c DeleteMaintenance) Apply(s *Store) error   { return s.DeleteMaintenance(c.ID) }

func (c AddStock) Apply(s *Store) error {
	_, err := s.AddStock(c.Input)
	return err
}

func (c UpdateStock) Apply(s *Store) error { return s.UpdateStock(c.ID, c.Input) }

func (c DuplicateStock) Apply(s *Store) error {
	_, err := s.DuplicateStock(c.ID)
	return err
}

func (c DeleteStock) Apply(s *Store) error { return s.DeleteStock(c.ID) }

func (c AddPurchase) Apply(s *Store) error {
	_, err := s.AddPurchase(c.Input)
	return err
}

func (c DeletePurchase) Apply(s *Store) error { return s.DeletePurchase(c.ID) }

func (c AddModel) Apply(s *Store) error {
	_, err := s.AddModel(c.Name, c.Color)
	return err
}

func (c RenameModel) Apply(s *Store) error    { return s.RenameModel(c.ID, c.Name) }
func (c DeleteModel) Apply(s *Store) error    { return s.DeleteModel(c.ID) }
func (c SetActiveModel) Apply(s *Store) error { return s.SetActiveModel(c.ID) }
func (c SetThemeColor) Apply(s *Store) error  { return s.SetThemeColor(c.Color) }
func (c SetStockSort) Apply(s *Store) error   { return s.SetStockSort(c.Key, c.Dir) }
func (c SetBatterySort) Apply(s *Store) error { return s.SetBatterySort(c.Key, c.Dir) }

func (c SetBatteryNumberPlacement) Apply(s *Store) error {
	return s.SetBatteryNumberPlacement(c.Placement)
}

func (c MoveTab) Apply(s *Store) error    { return s.MoveTab(c.Tab, c.Delta) }
func (c SetLastTab) Apply(s *Store) error { return s.SetLastTab(c.Tab) }
