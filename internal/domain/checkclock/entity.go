package checkclock

import (
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
)

// Event types. Clock events are classified against the employee's shift
// window; leave events carry no timeliness status.
const (
	TypeClockIn     = "clock_in"
	TypeClockOut    = "clock_out"
	TypeAbsent      = "absent"
	TypeSickLeave   = "sick_leave"
	TypeAnnualLeave = "annual_leave"
)

// Timeliness statuses.
const (
	StatusOnTime = "on_time"
	StatusLate   = "late"
)

var TypeValues = []string{TypeClockIn, TypeClockOut, TypeAbsent, TypeSickLeave, TypeAnnualLeave}

// IsClockType reports whether t is one of the two punch types that get a
// timeliness status.
func IsClockType(t string) bool {
	return t == TypeClockIn || t == TypeClockOut
}

// Event is one attendance record: a punch or a leave marker, pending admin
// approval until decided.
type Event struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Type       string
	OccurredAt time.Time
	Status     *string
	Approval   approval.Status
	Latitude   *float64
	Longitude  *float64
	ProofURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time

	// Join fields for listing
	EmployeeName *string
}
