package shift

import "errors"

var (
	// Setting errors
	ErrSettingNotFound = errors.New("shift setting not found")

	// Time window errors
	ErrTimeWindowNotFound = errors.New("shift time window not found")
	ErrTimeWindowExists   = errors.New("time window for this shift number already exists")
	ErrClockOutNotAfterIn = errors.New("clock_out must be after clock_in")
	ErrBreakEndNotAfter   = errors.New("break_end must be after break_start")

	// Schedule errors
	ErrScheduleNotFound   = errors.New("no shift schedule found for this date")
	ErrDuplicateSchedule  = errors.New("schedule for this employee on this date already exists")
	ErrInvalidShiftNumber = errors.New("shift number is outside the setting's shift count")
	ErrInvalidWorkDate    = errors.New("invalid work date, use YYYY-MM-DD")
	ErrEmployeeIDRequired = errors.New("employee ID is required")
)
