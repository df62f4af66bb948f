package checkclock

import (
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
	"github.com/SonyFebri/hris-backend/internal/domain/shift"
)

// secondsOfDay projects a timestamp onto its time-of-day component. The
// calendar date never influences timeliness; only the wall clock does.
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// classify returns the timeliness status for an event against the shift
// window, or nil for leave types. Clocking in at exactly the boundary counts
// as on time; clocking out is never late regardless of the hour, since a
// clock-out before the shift ends is an early leave concern, not a lateness
// one.
func classify(eventType string, occurredAt time.Time, window shift.TimeWindow) *string {
	switch eventType {
	case checkclock.TypeClockIn:
		status := checkclock.StatusOnTime
		if secondsOfDay(occurredAt) > secondsOfDay(window.ClockIn) {
			status = checkclock.StatusLate
		}
		return &status
	case checkclock.TypeClockOut:
		status := checkclock.StatusOnTime
		return &status
	default:
		return nil
	}
}
