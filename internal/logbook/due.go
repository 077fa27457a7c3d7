package logbook

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for all stored dates.
const DateLayout = "2006-01-02"

// DueStatus is the computed state of a maintenance task.
type DueStatus struct {
	IsDue           bool
	NextDate        *time.Time
	NextFlightCount *int
}

// Due reports whether task needs attention given the model's total flight
// count. A task that was never done is due as soon as any interval is set.
// It is also due once its next date is strictly in the past or the flight
// count reaches the next flight count.
func Due(task MaintenanceTask, totalFlights int, now time.Time) DueStatus {
	var st DueStatus

	var last *time.Time
	if task.LastDoneDate != nil {
		if t, ok := ParseDate(*task.LastDoneDate); ok {
			last = &t
		}
	}

	if task.IntervalDays > 0 && last != nil {
		next := last.Add(time.Duration(task.IntervalDays) * 24 * time.Hour)
		st.NextDate = &next
	}
	if task.IntervalFlights > 0 {
		next := task.LastDoneFlights + task.IntervalFlights
		st.NextFlightCount = &next
	}

	if last == nil && (task.IntervalDays > 0 || task.IntervalFlights > 0) {
		st.IsDue = true
	}
	if st.NextDate != nil && st.NextDate.Before(now) {
		st.IsDue = true
	}
	if st.NextFlightCount != nil && totalFlights >= *st.NextFlightCount {
		st.IsDue = true
	}
	return st
}

// ParseDate parses a stored date. Plain dates are read as UTC midnight; full
// RFC 3339 timestamps are accepted as well.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Today formats now as a stored date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
