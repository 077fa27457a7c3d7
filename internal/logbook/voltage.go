package logbook

import "math"

// nominalCellVoltage is the LiPo nominal voltage per cell.
const nominalCellVoltage = 3.7

// VoltageFromCells returns the nominal pack voltage rounded to one decimal, or
// nil for a non-positive cell count.
func VoltageFromCells(cells int) *float64 {
	if cells <= 0 {
		return nil
	}
	v := math.Round(float64(cells)*nominalCellVoltage*10) / 10
	return &v
}
