package user

import "time"

// User is a login account. Admins authenticate with an email address;
// employees authenticate with a generated company-scoped username. Exactly one
// of the two identifiers is set per account type.
type User struct {
	ID              string
	CompanyID       *string
	Email           *string
	CompanyUsername *string
	PasswordHash    string
	IsAdmin         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// LoginID returns the authoritative login identifier for the account.
func (u *User) LoginID() string {
	if u.IsAdmin && u.Email != nil {
		return *u.Email
	}
	if u.CompanyUsername != nil {
		return *u.CompanyUsername
	}
	if u.Email != nil {
		return *u.Email
	}
	return ""
}
