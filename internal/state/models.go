package state

import (
	"slices"
	"strings"

	"github.com/five82/hangar/internal/logbook"
)

// ModelRef is a lightweight view of a model for pickers.
type ModelRef struct {
	ID         string
	Name       string
	ThemeColor string
	Active     bool
}

// AddModel creates an empty model and makes it active. An empty color uses
// the default theme.
func (s *Store) AddModel(name, color string) (ModelRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ModelRef{}, ErrEmptyName
	}
	color = themeOrDefault(color)
	m := logbook.NewModel(name, color)
	err := s.update(func(doc *logbook.Document) error {
		doc.Models = append(doc.Models, m)
		doc.ActiveModelID = m.ID
		return nil
	})
	return ModelRef{ID: m.ID, Name: m.Name, ThemeColor: m.ThemeColor, Active: true}, err
}

// RenameModel changes a model's name. Blank names are refused.
func (s *Store) RenameModel(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	return s.update(func(doc *logbook.Document) error {
		i := index(doc.Models, id, modelID)
		if i < 0 {
			return notFound("model", id)
		}
		doc.Models[i].Name = name
		return nil
	})
}

// DeleteModel removes a model and its records. The last model cannot be
// deleted. When the active model goes, the first remaining model becomes
// active.
func (s *Store) DeleteModel(id string) error {
	return s.update(func(doc *logbook.Document) error {
		i := index(doc.Models, id, modelID)
		if i < 0 {
			return notFound("model", id)
		}
		if len(doc.Models) <= 1 {
			return ErrLastModel
		}
		doc.Models = append(doc.Models[:i:i], doc.Models[i+1:]...)
		if doc.ModelIndex(doc.ActiveModelID) < 0 {
			doc.ActiveModelID = doc.Models[0].ID
		}
		return nil
	})
}

// SetActiveModel switches the active model.
func (s *Store) SetActiveModel(id string) error {
	return s.update(func(doc *logbook.Document) error {
		if index(doc.Models, id, modelID) < 0 {
			return notFound("model", id)
		}
		doc.ActiveModelID = id
		return nil
	})
}

// SetThemeColor sets the accent color of the active model. An empty color
// resets it to the default theme.
func (s *Store) SetThemeColor(color string) error {
	color = themeOrDefault(color)
	return s.updateActive(func(m *logbook.Model) error {
		m.ThemeColor = color
		return nil
	})
}

func themeOrDefault(color string) string {
	color = strings.TrimSpace(color)
	if color == "" {
		return logbook.DefaultTheme
	}
	return color
}

// SetStockSort sets the sort of the stock list.
func (s *Store) SetStockSort(key, dir string) error {
	return s.update(func(doc *logbook.Document) error {
		doc.Settings.StockSort = sortSpec(key, dir, logbook.DefaultSettings().StockSort)
		return nil
	})
}

// SetBatterySort sets the sort of the battery list.
func (s *Store) SetBatterySort(key, dir string) error {
	return s.update(func(doc *logbook.Document) error {
		doc.Settings.StockBatterySort = sortSpec(key, dir, logbook.DefaultSettings().StockBatterySort)
		return nil
	})
}

func sortSpec(key, dir string, def logbook.SortSpec) logbook.SortSpec {
	spec := logbook.SortSpec{Key: strings.TrimSpace(key), Dir: strings.TrimSpace(dir)}
	if spec.Key == "" {
		spec.Key = def.Key
	}
	if spec.Dir != logbook.DirDesc {
		spec.Dir = logbook.DirAsc
	}
	return spec
}

// SetBatteryNumberPlacement sets where numberless batteries go when sorting
// by number. Anything other than "last" means "first".
func (s *Store) SetBatteryNumberPlacement(placement string) error {
	if placement != logbook.PlacementLast {
		placement = logbook.PlacementFirst
	}
	return s.update(func(doc *logbook.Document) error {
		doc.Settings.StockBatteryNumberPlacement = placement
		return nil
	})
}

// MoveTab shifts a tab by delta positions in the tab order. Moves past either
// end are ignored.
func (s *Store) MoveTab(tab string, delta int) error {
	return s.update(func(doc *logbook.Document) error {
		order := logbook.NormalizeTabOrder(doc.Settings.TabOrder)
		from := slices.Index(order, tab)
		if from < 0 {
			return notFound("tab", tab)
		}
		to := from + delta
		if to < 0 || to >= len(order) {
			return errUnchanged
		}
		order = slices.Delete(order, from, from+1)
		doc.Settings.TabOrder = slices.Insert(order, to, tab)
		return nil
	})
}

// SetLastTab remembers the selected tab.
func (s *Store) SetLastTab(tab string) error {
	if !logbook.IsTab(tab) {
		return notFound("tab", tab)
	}
	return s.update(func(doc *logbook.Document) error {
		if doc.Settings.LastTab == tab {
			return errUnchanged
		}
		doc.Settings.LastTab = tab
		return nil
	})
}

// Replace swaps in a whole new document, as done by an import commit.
func (s *Store) Replace(doc logbook.Document) error {
	doc = doc.Clone().Repair()
	return s.update(func(cur *logbook.Document) error {
		*cur = doc
		return nil
	})
}
