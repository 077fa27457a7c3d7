package cli

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// number formats v with at most two decimals and no trailing zeros.
func number(v float64) string {
	return humanize.FtoaWithDigits(v, 2)
}

func optNumber(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	return number(*v) + unit
}

func optString(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func optCells(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v) + "S"
}
