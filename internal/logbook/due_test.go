package logbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDue_ByFlightCount(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task := MaintenanceTask{IntervalFlights: 10, LastDoneFlights: 5, LastDoneDate: ptr("2024-05-01")}

	st := Due(task, 15, now)
	assert.True(t, st.IsDue)
	require.NotNil(t, st.NextFlightCount)
	assert.Equal(t, 15, *st.NextFlightCount)
	assert.Nil(t, st.NextDate)

	st = Due(task, 14, now)
	assert.False(t, st.IsDue)
}

func TestDue_NeverDone(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	st := Due(MaintenanceTask{IntervalFlights: 20}, 0, now)
	assert.True(t, st.IsDue, "never done with an interval is due")
	require.NotNil(t, st.NextFlightCount)
	assert.Equal(t, 20, *st.NextFlightCount)

	st = Due(MaintenanceTask{IntervalDays: 30}, 0, now)
	assert.True(t, st.IsDue)
	assert.Nil(t, st.NextDate, "no next date without a last done date")

	st = Due(MaintenanceTask{}, 100, now)
	assert.False(t, st.IsDue, "no interval is never due")
	assert.Nil(t, st.NextFlightCount)
}

func TestDue_ByDate(t *testing.T) {
	task := MaintenanceTask{IntervalDays: 30, LastDoneDate: ptr("2024-05-01")}

	st := Due(task, 0, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))
	assert.False(t, st.IsDue)
	require.NotNil(t, st.NextDate)
	assert.Equal(t, "2024-05-31", Today(*st.NextDate))

	st = Due(task, 0, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC))
	assert.False(t, st.IsDue, "next date equal to now is not yet due")

	st = Due(task, 0, time.Date(2024, 5, 31, 0, 0, 1, 0, time.UTC))
	assert.True(t, st.IsDue)
}

func TestDue_DoesNotMutate(t *testing.T) {
	task := MaintenanceTask{IntervalFlights: 3, LastDoneDate: ptr("2024-05-01"), LastDoneFlights: 2}
	before := task
	_ = Due(task, 99, time.Now())
	assert.Equal(t, before, task)
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("2024-06-01T10:00:00Z")
	assert.True(t, ok)

	_, ok = ParseDate("yesterday")
	assert.False(t, ok)
}
