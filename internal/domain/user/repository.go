package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByCompanyUsername(ctx context.Context, companyID, companyUsername string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCompanyUsername(ctx context.Context, companyID, companyUsername string) (bool, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	AttachCompany(ctx context.Context, id string, companyID string) error
	SoftDelete(ctx context.Context, id string) error
}
