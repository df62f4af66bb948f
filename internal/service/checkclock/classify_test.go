package checkclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
	"github.com/SonyFebri/hris-backend/internal/domain/shift"
)

func mustClock(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func TestClassifyClockIn(t *testing.T) {
	window := shift.TimeWindow{
		ClockIn:  mustClock(t, "09:00:00"),
		ClockOut: mustClock(t, "17:00:00"),
	}

	cases := []struct {
		name       string
		occurredAt time.Time
		want       string
	}{
		{"well before the boundary", time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC), checkclock.StatusOnTime},
		{"exactly at the boundary", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), checkclock.StatusOnTime},
		{"one second past the boundary", time.Date(2025, 3, 10, 9, 0, 1, 0, time.UTC), checkclock.StatusLate},
		{"hours past the boundary", time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC), checkclock.StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status := classify(checkclock.TypeClockIn, c.occurredAt, window)
			require.NotNil(t, status)
			assert.Equal(t, c.want, *status)
		})
	}
}

func TestClassifyClockInIgnoresDate(t *testing.T) {
	window := shift.TimeWindow{ClockIn: mustClock(t, "09:00:00")}

	// Same wall-clock time on wildly different dates classifies identically.
	early := classify(checkclock.TypeClockIn, time.Date(1999, 1, 1, 8, 59, 59, 0, time.UTC), window)
	late := classify(checkclock.TypeClockIn, time.Date(2031, 12, 31, 9, 0, 1, 0, time.UTC), window)

	require.NotNil(t, early)
	require.NotNil(t, late)
	assert.Equal(t, checkclock.StatusOnTime, *early)
	assert.Equal(t, checkclock.StatusLate, *late)
}

func TestClassifyClockOutAlwaysOnTime(t *testing.T) {
	window := shift.TimeWindow{
		ClockIn:  mustClock(t, "09:00:00"),
		ClockOut: mustClock(t, "17:00:00"),
	}

	for _, at := range []time.Time{
		time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), // before shift end
		time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), // at shift end
		time.Date(2025, 3, 10, 23, 45, 0, 0, time.UTC), // long after
	} {
		status := classify(checkclock.TypeClockOut, at, window)
		require.NotNil(t, status)
		assert.Equal(t, checkclock.StatusOnTime, *status)
	}
}

func TestClassifyLeaveTypesHaveNoStatus(t *testing.T) {
	window := shift.TimeWindow{ClockIn: mustClock(t, "09:00:00")}
	at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	for _, eventType := range []string{
		checkclock.TypeAbsent,
		checkclock.TypeSickLeave,
		checkclock.TypeAnnualLeave,
	} {
		assert.Nil(t, classify(eventType, at, window), "type %s", eventType)
	}
}
