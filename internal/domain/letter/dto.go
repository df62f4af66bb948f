package letter

import (
	"github.com/SonyFebri/hris-backend/internal/pkg/validator"
)

type FormatResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	Name      string  `json:"name"`
	Content   *string `json:"content,omitempty"`
	Status    int     `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type LetterResponse struct {
	ID           string  `json:"id"`
	FormatID     string  `json:"letter_format_id"`
	EmployeeID   string  `json:"employee_id"`
	CompanyID    string  `json:"company_id"`
	Name         string  `json:"name"`
	FileURL      *string `json:"file_url,omitempty"`
	Approval     string  `json:"approval"`
	FormatName   *string `json:"format_name,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type CreateFormatRequest struct {
	Name    string  `json:"name"`
	Content *string `json:"content,omitempty"`
	Status  int     `json:"status"`
}

func (r *CreateFormatRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at most 100 characters",
		})
	}
	if r.Status != 0 && r.Status != 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 0 or 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateFormatRequest struct {
	Name    *string `json:"name,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *int    `json:"status,omitempty"`
}

func (r *UpdateFormatRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && (validator.IsEmpty(*r.Name) || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be between 1 and 100 characters",
		})
	}
	if r.Status != nil && *r.Status != 0 && *r.Status != 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 0 or 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLetterRequest struct {
	FormatID   string  `json:"letter_format_id"`
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	FileURL    *string `json:"file_url,omitempty"`
}

func (r *CreateLetterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.FormatID) {
		errs = append(errs, validator.ValidationError{
			Field:   "letter_format_id",
			Message: "letter_format_id must be a valid UUID",
		})
	}
	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RespondLetterRequest struct {
	Decision string `json:"decision"`
}

func (r *RespondLetterRequest) Validate() error {
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

type ListLettersFilter struct {
	EmployeeID *string
	FormatID   *string
	Approval   *string
}
