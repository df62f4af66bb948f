package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SonyFebri/hris-backend/internal/config"
	"github.com/SonyFebri/hris-backend/internal/domain/auth"
	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/user"
	"github.com/SonyFebri/hris-backend/internal/pkg/email"
	"github.com/SonyFebri/hris-backend/internal/pkg/jwt"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	company.CompanyRepository
	employee.EmployeeRepository
	jwt.Service
	emailService email.EmailService
	appConfig    config.AppConfig
}

func NewAuthService(
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	appConfig config.AppConfig,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepository,
		CompanyRepository:  companyRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		emailService:       emailService,
		appConfig:          appConfig,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// RegisterAdmin implements auth.AuthService. Admin accounts authenticate by
// email; the company is attached later when the admin creates one.
func (a *AuthServiceImpl) RegisterAdmin(ctx context.Context, req auth.RegisterAdminRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return user.ErrEmailExists
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}

	_, err = a.UserRepository.Create(ctx, user.User{
		Email:        &req.Email,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

// LoginEmployee implements auth.AuthService. Employees carry no email; they
// authenticate with company code plus the generated username.
func (a *AuthServiceImpl) LoginEmployee(ctx context.Context, req auth.LoginEmployeeRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	companyData, err := a.CompanyRepository.GetByCode(ctx, req.CompanyCode)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get company by code: %w", err)
	}

	userData, err := a.UserRepository.GetByCompanyUsername(ctx, companyData.ID, req.CompanyUsername)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by company username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var employeeID *string
	if !userData.IsAdmin {
		employeeData, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
		}
		if err == nil {
			employeeID = &employeeData.ID
		}
	}

	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
		userData.ID, userData.LoginID(), userData.CompanyID, employeeID, userData.IsAdmin,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.TokenType = "Bearer"
	return tokenResponse, nil
}

// Refresh implements auth.AuthService. The old refresh token is revoked and a
// fresh pair is issued.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if typ, ok := token.Get("type"); !ok || typ != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := tokenStringClaim(token, "user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	a.Service.RevokeToken(refreshToken)
	return a.issueTokens(ctx, userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}

// ForgotPassword implements auth.AuthService. Always succeeds from the
// caller's point of view so the endpoint does not leak which emails exist.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	resetToken, err := a.Service.GenerateResetToken(userData.ID)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", a.appConfig.FrontendURL, resetToken)
	expiresAt := time.Now().Add(30 * time.Minute).Format("15:04 MST")

	go func() {
		if err := a.emailService.SendPasswordReset(req.Email, resetLink, expiresAt); err != nil {
			slog.Error("failed to send password reset email", "error", err)
		}
	}()

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := a.Service.ValidateResetToken(req.Token)
	if err != nil {
		return auth.ErrInvalidToken
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := a.UserRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.ErrInvalidToken
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func tokenStringClaim(token jwxjwt.Token, name string) (string, bool) {
	value, ok := token.Get(name)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}
