package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetByID returns the employee with its login username joined in; company
	// scoping prevents cross-tenant reads.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetActiveByID behaves like GetByID but reports ErrEmployeeResigned for
	// tombstoned rows instead of hiding them.
	GetActiveByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetByUserID resolves the profile behind a login account; used when
	// minting token claims.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	List(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, id string, companyID string, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id string, companyID string) error
}
