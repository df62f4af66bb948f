package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrCompanyUsernameExists  = errors.New("company username already taken")
	ErrUsernameGeneration     = errors.New("could not generate a unique company username")
	ErrAdminPrivilegeRequired = errors.New("administrator privilege required")
)
