package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetByCode(ctx context.Context, code string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
	SoftDelete(ctx context.Context, id string) error

	// ReserveSeat atomically increments employee_count while it is still below
	// max_employee_count; returns ErrEmployeeQuotaExceeded when no seat is
	// free. Safe under concurrent onboarding.
	ReserveSeat(ctx context.Context, id string) error

	// ReleaseSeat decrements employee_count, floored at zero.
	ReleaseSeat(ctx context.Context, id string) error

	// CountActiveEmployees derives the live count from non-deleted employee
	// users; used to reconcile the denormalized counter.
	CountActiveEmployees(ctx context.Context, id string) (int, error)
}
