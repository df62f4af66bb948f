package company

import "time"

type Company struct {
	ID               string
	Name             string
	Code             string
	Address          *string
	SubscriptionDays int
	EmployeeCount    int
	MaxEmployeeCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// HasSeatAvailable reports whether one more employee fits under the
// subscription ceiling. The authoritative check happens in the database; this
// is only used for early rejection before opening a transaction.
func (c *Company) HasSeatAvailable() bool {
	return c.EmployeeCount < c.MaxEmployeeCount
}
