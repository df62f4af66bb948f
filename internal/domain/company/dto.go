package company

import (
	"time"

	"github.com/SonyFebri/hris-backend/internal/pkg/validator"
)

type CompanyResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"company_name"`
	Code             string    `json:"company_code"`
	Address          *string   `json:"address,omitempty"`
	SubscriptionDays int       `json:"subscription_days"`
	EmployeeCount    int       `json:"employee_count"`
	MaxEmployeeCount int       `json:"max_employee_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name             string  `json:"company_name"`
	Address          *string `json:"address,omitempty"`
	SubscriptionDays *int    `json:"subscription_days,omitempty"`
	MaxEmployeeCount *int    `json:"max_employee_count,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name must not exceed 255 characters",
		})
	}
	if r.SubscriptionDays != nil && *r.SubscriptionDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "subscription_days",
			Message: "subscription_days must not be negative",
		})
	}
	if r.MaxEmployeeCount != nil && *r.MaxEmployeeCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_employee_count",
			Message: "max_employee_count must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyRequest struct {
	Name             *string `json:"company_name,omitempty"`
	Address          *string `json:"address,omitempty"`
	SubscriptionDays *int    `json:"subscription_days,omitempty"`
	MaxEmployeeCount *int    `json:"max_employee_count,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name must not exceed 255 characters",
			})
		}
	}
	if r.SubscriptionDays != nil && *r.SubscriptionDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "subscription_days",
			Message: "subscription_days must not be negative",
		})
	}
	if r.MaxEmployeeCount != nil && *r.MaxEmployeeCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_employee_count",
			Message: "max_employee_count must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
