package letter

import (
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
)

// Format is a named, company-scoped letter template category.
type Format struct {
	ID        string
	CompanyID string
	Name      string
	Content   *string
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Letter is a document issued to an employee under a format, carrying its own
// approval state. Letters filed by admins are approved on creation.
type Letter struct {
	ID         string
	FormatID   string
	EmployeeID string
	CompanyID  string
	Name       string
	FileURL    *string
	Approval   approval.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time

	// Join fields for listing
	FormatName   *string
	EmployeeName *string
}
