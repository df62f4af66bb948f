package shift

import (
	"time"

	"github.com/SonyFebri/hris-backend/internal/pkg/validator"
)

const (
	MinShiftCount = 1
	MaxShiftCount = 3

	timeOfDayLayout = "15:04:05"
	workDateLayout  = "2006-01-02"
)

type SettingResponse struct {
	ID         string               `json:"id"`
	CompanyID  string               `json:"company_id"`
	Name       string               `json:"name"`
	ShiftCount int                  `json:"shift_count"`
	Times      []TimeWindowResponse `json:"times,omitempty"`
	CreatedAt  string               `json:"created_at"`
	UpdatedAt  string               `json:"updated_at"`
}

type TimeWindowResponse struct {
	ID          string  `json:"id"`
	SettingID   string  `json:"setting_id"`
	ShiftNumber int     `json:"shift_number"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    string  `json:"clock_out"`
	BreakStart  *string `json:"break_start,omitempty"`
	BreakEnd    *string `json:"break_end,omitempty"`
}

type ScheduleResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	SettingID   string `json:"setting_id"`
	WorkDate    string `json:"work_date"`
	ShiftNumber int    `json:"shift_number"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateSettingRequest struct {
	Name       string `json:"name"`
	ShiftCount int    `json:"shift_count"`
}

func (r *CreateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at most 50 characters",
		})
	}
	if r.ShiftCount < MinShiftCount || r.ShiftCount > MaxShiftCount {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_count",
			Message: "shift_count must be between 1 and 3",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSettingRequest struct {
	Name       *string `json:"name,omitempty"`
	ShiftCount *int    `json:"shift_count,omitempty"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && (validator.IsEmpty(*r.Name) || len(*r.Name) > 50) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be between 1 and 50 characters",
		})
	}
	if r.ShiftCount != nil && (*r.ShiftCount < MinShiftCount || *r.ShiftCount > MaxShiftCount) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_count",
			Message: "shift_count must be between 1 and 3",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateTimeWindowRequest struct {
	ShiftNumber int     `json:"shift_number"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    string  `json:"clock_out"`
	BreakStart  *string `json:"break_start,omitempty"`
	BreakEnd    *string `json:"break_end,omitempty"`
}

func (r *CreateTimeWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftNumber < MinShiftCount || r.ShiftNumber > MaxShiftCount {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_number",
			Message: "shift_number must be between 1 and 3",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.ClockIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must use the HH:MM:SS format",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.ClockOut); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must use the HH:MM:SS format",
		})
	}
	if r.BreakStart != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.BreakStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break_start must use the HH:MM:SS format",
			})
		}
	}
	if r.BreakEnd != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.BreakEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must use the HH:MM:SS format",
			})
		}
	}
	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start and break_end must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Window materializes the request into a TimeWindow, enforcing the ordering
// rules that need parsed times: clock_out strictly after clock_in and
// break_end strictly after break_start.
func (r *CreateTimeWindowRequest) Window(settingID string) (TimeWindow, error) {
	clockIn, err := ParseTimeOfDay(r.ClockIn)
	if err != nil {
		return TimeWindow{}, err
	}
	clockOut, err := ParseTimeOfDay(r.ClockOut)
	if err != nil {
		return TimeWindow{}, err
	}
	if !clockOut.After(clockIn) {
		return TimeWindow{}, ErrClockOutNotAfterIn
	}

	window := TimeWindow{
		SettingID:   settingID,
		ShiftNumber: r.ShiftNumber,
		ClockIn:     clockIn,
		ClockOut:    clockOut,
	}

	if r.BreakStart != nil && r.BreakEnd != nil {
		breakStart, err := ParseTimeOfDay(*r.BreakStart)
		if err != nil {
			return TimeWindow{}, err
		}
		breakEnd, err := ParseTimeOfDay(*r.BreakEnd)
		if err != nil {
			return TimeWindow{}, err
		}
		if !breakEnd.After(breakStart) {
			return TimeWindow{}, ErrBreakEndNotAfter
		}
		window.BreakStart = &breakStart
		window.BreakEnd = &breakEnd
	}

	return window, nil
}

type UpdateTimeWindowRequest struct {
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

func (r *UpdateTimeWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"clock_in":    r.ClockIn,
		"clock_out":   r.ClockOut,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidTimeOfDay(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must use the HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignScheduleRequest struct {
	EmployeeID  string `json:"employee_id"`
	SettingID   string `json:"setting_id"`
	WorkDate    string `json:"work_date"`
	ShiftNumber int    `json:"shift_number"`
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if !validator.IsValidUUID(r.SettingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "setting_id",
			Message: "setting_id must be a valid UUID",
		})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must use the YYYY-MM-DD format",
		})
	}
	if r.ShiftNumber < MinShiftCount || r.ShiftNumber > MaxShiftCount {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_number",
			Message: "shift_number must be between 1 and 3",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	SettingID   *string `json:"setting_id,omitempty"`
	WorkDate    *string `json:"work_date,omitempty"`
	ShiftNumber *int    `json:"shift_number,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SettingID != nil && !validator.IsValidUUID(*r.SettingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "setting_id",
			Message: "setting_id must be a valid UUID",
		})
	}
	if r.WorkDate != nil {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_date",
				Message: "work_date must use the YYYY-MM-DD format",
			})
		}
	}
	if r.ShiftNumber != nil && (*r.ShiftNumber < MinShiftCount || *r.ShiftNumber > MaxShiftCount) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_number",
			Message: "shift_number must be between 1 and 3",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParseTimeOfDay parses an HH:MM:SS boundary into a time value whose date
// component is the zero date.
func ParseTimeOfDay(value string) (time.Time, error) {
	return time.Parse(timeOfDayLayout, value)
}

// ParseWorkDate parses a YYYY-MM-DD work date.
func ParseWorkDate(value string) (time.Time, error) {
	parsed, err := time.Parse(workDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidWorkDate
	}
	return parsed, nil
}

// FormatTimeOfDay renders a boundary back to HH:MM:SS.
func FormatTimeOfDay(t time.Time) string {
	return t.Format(timeOfDayLayout)
}

// FormatWorkDate renders a work date back to YYYY-MM-DD.
func FormatWorkDate(t time.Time) string {
	return t.Format(workDateLayout)
}
