package auth

import "context"

type AuthService interface {
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) error
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginEmployee(ctx context.Context, req LoginEmployeeRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
