package logbook

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Lenient field readers. Every reader returns a safe default instead of
// failing when the field is missing or holds the wrong JSON type.

func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		if r.Num == 0 {
			return ""
		}
		return r.Raw
	default:
		return ""
	}
}

func optText(r gjson.Result) *string {
	s := text(r)
	if s == "" {
		return nil
	}
	return &s
}

// number reads a finite float. Literals that overflow float64 ("1e999") are
// valid JSON but cannot be written back, so they count as missing.
func number(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		if !finite(r.Num) {
			return 0, false
		}
		return r.Num, true
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil || !finite(v) {
			return 0, false
		}
		return v, true
	case gjson.True:
		return 1, true
	default:
		return 0, false
	}
}

func float(r gjson.Result) float64 {
	v, _ := number(r)
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// toInt truncates v, saturating at the int range.
func toInt(v float64) int {
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

func integer(r gjson.Result) int {
	v, _ := number(r)
	return toInt(v)
}

// count reads a counter or interval; negatives become 0.
func count(r gjson.Result) int {
	return max(integer(r), 0)
}

func optFloat(r gjson.Result) *float64 {
	v, ok := number(r)
	if !ok {
		return nil
	}
	return &v
}

func optInt(r gjson.Result) *int {
	v, ok := number(r)
	if !ok {
		return nil
	}
	i := toInt(v)
	return &i
}

// objects returns the object elements of a JSON array; other elements are
// skipped. A non-array yields an empty slice.
func objects(r gjson.Result) []gjson.Result {
	if !r.IsArray() {
		return nil
	}
	var out []gjson.Result
	for _, el := range r.Array() {
		if el.IsObject() {
			out = append(out, el)
		}
	}
	return out
}

func decodeFlights(r gjson.Result) []Flight {
	out := []Flight{}
	for _, el := range objects(r) {
		out = append(out, Flight{
			ID:        text(el.Get("id")),
			Date:      text(el.Get("date")),
			Duration:  float(el.Get("duration")),
			BatteryID: text(el.Get("batteryId")),
			Notes:     text(el.Get("notes")),
		})
	}
	return out
}

func decodeBatteries(r gjson.Result) []Battery {
	out := []Battery{}
	for _, el := range objects(r) {
		out = append(out, Battery{
			ID:            text(el.Get("id")),
			Name:          text(el.Get("name")),
			Number:        text(el.Get("number")),
			Capacity:      optFloat(el.Get("capacity")),
			DischargeRate: optFloat(el.Get("dischargeRate")),
			Cells:         optInt(el.Get("cells")),
			Voltage:       optFloat(el.Get("voltage")),
			Notes:         text(el.Get("notes")),
			Cycles:        count(el.Get("cycles")),
			LastUsed:      optText(el.Get("lastUsed")),
		})
	}
	return out
}

func decodeMaintenance(r gjson.Result) []MaintenanceTask {
	out := []MaintenanceTask{}
	for _, el := range objects(r) {
		out = append(out, MaintenanceTask{
			ID:              text(el.Get("id")),
			Title:           text(el.Get("title")),
			IntervalDays:    count(el.Get("intervalDays")),
			IntervalFlights: count(el.Get("intervalFlights")),
			Notes:           text(el.Get("notes")),
			LastDoneDate:    optText(el.Get("lastDoneDate")),
			LastDoneFlights: count(el.Get("lastDoneFlights")),
		})
	}
	return out
}

func decodeStock(r gjson.Result) []StockItem {
	out := []StockItem{}
	for _, el := range objects(r) {
		out = append(out, StockItem{
			ID:        text(el.Get("id")),
			Name:      text(el.Get("name")),
			Reference: text(el.Get("reference")),
			Quantity:  float(el.Get("quantity")),
			Minimum:   float(el.Get("minimum")),
			Location:  text(el.Get("location")),
		})
	}
	return out
}

func decodePurchases(r gjson.Result) []Purchase {
	out := []Purchase{}
	for _, el := range objects(r) {
		out = append(out, Purchase{
			ID:        text(el.Get("id")),
			Date:      text(el.Get("date")),
			Name:      text(el.Get("name")),
			Reference: text(el.Get("reference")),
			Quantity:  float(el.Get("quantity")),
			Price:     optFloat(el.Get("price")),
			Notes:     text(el.Get("notes")),
		})
	}
	return out
}
