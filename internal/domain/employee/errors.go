package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeResigned    = errors.New("employee has resigned")
	ErrInvalidGender       = errors.New("gender must be Male or Female")
	ErrInvalidContractType = errors.New("invalid contract type")
	ErrInvalidShiftCount   = errors.New("shift count must be between 1 and 3")
)
