package checkclock

import (
	"github.com/SonyFebri/hris-backend/internal/pkg/validator"
)

type EventResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	CompanyID    string   `json:"company_id"`
	Type         string   `json:"check_clock_type"`
	OccurredAt   string   `json:"check_clock_time"`
	Status       *string  `json:"status,omitempty"`
	Approval     string   `json:"approval"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	ProofURL     *string  `json:"proof_url,omitempty"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type RecordEventRequest struct {
	Type       string   `json:"check_clock_type"`
	OccurredAt string   `json:"check_clock_time"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_clock_type",
			Message: "check_clock_type must be one of clock_in, clock_out, absent, sick_leave, annual_leave",
		})
	}
	if _, ok := validator.IsValidDateTime(r.OccurredAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_clock_time",
			Message: "check_clock_time must be an RFC 3339 timestamp",
		})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RespondEventRequest struct {
	Decision string `json:"decision"`
}

func (r *RespondEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Decision != "Approve" && r.Decision != "Reject" {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be Approve or Reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEventsFilter struct {
	EmployeeID *string
	Type       *string
	Approval   *string
	DateFrom   *string
	DateTo     *string
}
