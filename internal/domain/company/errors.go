package company

import "errors"

var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrCompanyNameExists     = errors.New("company with this name already exists")
	ErrCompanyCodeExists     = errors.New("company code already exists")
	ErrEmployeeQuotaExceeded = errors.New("company has reached its maximum employee count")
)
