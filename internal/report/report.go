// Package report exports a model's records as an Excel workbook.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/five82/hangar/internal/logbook"
)

// Sheet names, in workbook order.
const (
	SheetFlights     = "Flights"
	SheetBatteries   = "Batteries"
	SheetMaintenance = "Maintenance"
	SheetStock       = "Stock"
	SheetPurchases   = "Purchases"
)

// Write builds a workbook for m and writes it to w. Lists use the same order
// as the interface: settings drive the battery and stock sorts and now drives
// the maintenance due state.
func Write(w io.Writer, m logbook.Model, settings logbook.Settings, locale string, now time.Time) error {
	f, err := Build(m, settings, locale, now)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Build returns the workbook without writing it.
func Build(m logbook.Model, settings logbook.Settings, locale string, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetFlights); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	sorter := logbook.NewSorter(locale)
	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetFlights, []any{"Date", "Duration (min)", "Battery", "Notes"}, flightRows(m)},
		{SheetBatteries, []any{"Name", "Number", "Capacity (mAh)", "Discharge (C)", "Cells", "Voltage (V)", "Cycles", "Last used", "Notes"},
			batteryRows(sorter.SortBatteries(m.Batteries, settings.StockBatterySort, settings.StockBatteryNumberPlacement))},
		{SheetMaintenance, []any{"Task", "Every (days)", "Every (flights)", "Last done", "Flights at last done", "Next date", "Next flight count", "Due", "Notes"},
			maintenanceRows(m, now)},
		{SheetStock, []any{"Name", "Reference", "Quantity", "Minimum", "Location", "Low"},
			stockRows(sorter.SortStock(m.Stock, settings.StockSort))},
		{SheetPurchases, []any{"Date", "Name", "Reference", "Quantity", "Price", "Notes"}, purchaseRows(logbook.SortPurchases(m.Purchases))},
	}

	for _, s := range sheets {
		if s.name != SheetFlights {
			if _, err := f.NewSheet(s.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("new sheet %s: %w", s.name, err)
			}
		}
		if err := writeRows(f, s.name, append([][]any{s.header}, s.rows...)); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("style %s: %w", s.name, err)
		}
		if err := f.SetColWidth(s.name, "A", "A", 24); err != nil {
			f.Close()
			return nil, fmt.Errorf("width %s: %w", s.name, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{Title: m.Name, Created: now.UTC().Format(time.RFC3339)}); err != nil {
		f.Close()
		return nil, fmt.Errorf("doc props: %w", err)
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func flightRows(m logbook.Model) [][]any {
	flights := logbook.SortFlights(m.Flights)
	rows := make([][]any, 0, len(flights))
	for _, fl := range flights {
		battery := ""
		if b, ok := m.Battery(fl.BatteryID); ok {
			battery = b.Label()
		}
		rows = append(rows, []any{fl.Date, fl.Duration, battery, fl.Notes})
	}
	return rows
}

func batteryRows(items []logbook.Battery) [][]any {
	rows := make([][]any, 0, len(items))
	for _, b := range items {
		rows = append(rows, []any{
			b.Name, b.Number, optional(b.Capacity), optional(b.DischargeRate), optional(b.Cells),
			optional(b.EffectiveVoltage()), b.Cycles, optional(b.LastUsed), b.Notes,
		})
	}
	return rows
}

func maintenanceRows(m logbook.Model, now time.Time) [][]any {
	rows := make([][]any, 0, len(m.Maintenance))
	for _, t := range m.Maintenance {
		st := logbook.Due(t, len(m.Flights), now)
		next := ""
		if st.NextDate != nil {
			next = logbook.Today(*st.NextDate)
		}
		due := "no"
		if st.IsDue {
			due = "yes"
		}
		rows = append(rows, []any{
			t.Title, blankZero(t.IntervalDays), blankZero(t.IntervalFlights), optional(t.LastDoneDate),
			t.LastDoneFlights, next, optional(st.NextFlightCount), due, t.Notes,
		})
	}
	return rows
}

func stockRows(items []logbook.StockItem) [][]any {
	rows := make([][]any, 0, len(items))
	for _, s := range items {
		low := ""
		if s.IsLow() {
			low = "low"
		}
		rows = append(rows, []any{s.Name, s.Reference, s.Quantity, s.Minimum, s.Location, low})
	}
	return rows
}

func purchaseRows(items []logbook.Purchase) [][]any {
	rows := make([][]any, 0, len(items))
	for _, p := range items {
		rows = append(rows, []any{p.Date, p.Name, p.Reference, p.Quantity, optional(p.Price), p.Notes})
	}
	return rows
}

// optional renders a nil pointer as an empty cell.
func optional[T any](v *T) any {
	if v == nil {
		return ""
	}
	return *v
}

func blankZero(v int) any {
	if v == 0 {
		return ""
	}
	return v
}
