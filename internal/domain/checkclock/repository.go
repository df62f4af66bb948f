package checkclock

import (
	"context"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
)

type Repository interface {
	Create(ctx context.Context, event Event) (Event, error)
	GetByID(ctx context.Context, id string, companyID string) (Event, error)
	List(ctx context.Context, companyID string, filter ListEventsFilter) ([]Event, error)

	// UpdateApproval moves a pending event to its decided state. The update is
	// conditional on the row still being pending; ErrNotPending when the race
	// is lost or the record was already decided.
	UpdateApproval(ctx context.Context, id string, companyID string, to approval.Status) error

	SetProofURL(ctx context.Context, id string, companyID string, proofURL string) error

	SoftDelete(ctx context.Context, id string, companyID string) error
}
