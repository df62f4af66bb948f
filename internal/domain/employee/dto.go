package employee

import (
	"github.com/SonyFebri/hris-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	CompanyID       string  `json:"company_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Gender          string  `json:"gender"`
	ContractType    string  `json:"contract_type"`
	Address         *string `json:"address,omitempty"`
	ShiftCount      *int    `json:"shift_count,omitempty"`
	BaseSalary      *string `json:"base_salary,omitempty"`
	CompanyUsername *string `json:"company_username,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type OnboardEmployeeRequest struct {
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	Gender               string  `json:"gender"`
	ContractType         string  `json:"contract_type"`
	Address              *string `json:"address,omitempty"`
	ShiftCount           *int    `json:"shift_count,omitempty"`
	BaseSalary           *string `json:"base_salary,omitempty"`
	Password             string  `json:"password"`
	PasswordConfirmation string  `json:"password_confirmation"`
}

func (r *OnboardEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if !validator.IsInSlice(r.Gender, GenderValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male or Female",
		})
	}
	if !validator.IsInSlice(r.ContractType, ContractTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type must be one of permanent, probation, internship, contract",
		})
	}
	if r.ShiftCount != nil && (*r.ShiftCount < 1 || *r.ShiftCount > 3) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_count",
			Message: "shift_count must be between 1 and 3",
		})
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}
	if r.Password != r.PasswordConfirmation {
		errs = append(errs, validator.ValidationError{
			Field:   "password_confirmation",
			Message: "password confirmation does not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	ContractType *string `json:"contract_type,omitempty"`
	Address      *string `json:"address,omitempty"`
	ShiftCount   *int    `json:"shift_count,omitempty"`
	BaseSalary   *string `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, GenderValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be Male or Female",
		})
	}
	if r.ContractType != nil && !validator.IsInSlice(*r.ContractType, ContractTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type must be one of permanent, probation, internship, contract",
		})
	}
	if r.ShiftCount != nil && (*r.ShiftCount < 1 || *r.ShiftCount > 3) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_count",
			Message: "shift_count must be between 1 and 3",
		})
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
