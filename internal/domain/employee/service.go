package employee

import "context"

type EmployeeService interface {
	// Onboard creates the login account and the profile and reserves a company
	// seat, all inside one transaction.
	Onboard(ctx context.Context, req OnboardEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Resign tombstones the profile and its login account and releases the
	// company seat, all inside one transaction.
	Resign(ctx context.Context, id string) error
}
