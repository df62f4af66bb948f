package shift

import "time"

// Setting is a named, company-scoped shift configuration: how many shifts per
// day a schedule of this type has.
type Setting struct {
	ID         string
	CompanyID  string
	Name       string
	ShiftCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// ContainsShiftNumber reports whether n falls inside the setting's shift range.
func (s *Setting) ContainsShiftNumber(n int) bool {
	return n >= 1 && n <= s.ShiftCount
}

// TimeWindow carries the clock-in/out and optional break boundaries for one
// shift number within a setting. Boundaries are times of day; the calendar
// date component is ignored when classifying events.
type TimeWindow struct {
	ID          string
	SettingID   string
	ShiftNumber int
	ClockIn     time.Time
	ClockOut    time.Time
	BreakStart  *time.Time
	BreakEnd    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Schedule assigns an employee to one shift of a setting on a specific work
// date. At most one schedule exists per (employee, work date).
type Schedule struct {
	ID          string
	EmployeeID  string
	SettingID   string
	WorkDate    time.Time
	ShiftNumber int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
