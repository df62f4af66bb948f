package letter

import (
	"context"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
)

type FormatRepository interface {
	Create(ctx context.Context, format Format) (Format, error)
	GetByID(ctx context.Context, id string, companyID string) (Format, error)
	List(ctx context.Context, companyID string) ([]Format, error)
	Update(ctx context.Context, id string, companyID string, req UpdateFormatRequest) error
	SoftDelete(ctx context.Context, id string, companyID string) error

	// CountLetters counts live letters attached to a format, guarding delete.
	CountLetters(ctx context.Context, formatID string) (int, error)
}

type Repository interface {
	Create(ctx context.Context, letter Letter) (Letter, error)
	GetByID(ctx context.Context, id string, companyID string) (Letter, error)
	List(ctx context.Context, companyID string, filter ListLettersFilter) ([]Letter, error)

	// UpdateApproval decides a pending letter; conditional on the row still
	// being pending, ErrNotPending otherwise.
	UpdateApproval(ctx context.Context, id string, companyID string, to approval.Status) error

	// SetFileURL attaches an uploaded document to the letter.
	SetFileURL(ctx context.Context, id string, companyID string, fileURL string) error

	SoftDelete(ctx context.Context, id string, companyID string) error
}
