package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SonyFebri/hris-backend/internal/config"
	"github.com/SonyFebri/hris-backend/internal/domain/auth"
	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/user"
	"github.com/SonyFebri/hris-backend/internal/pkg/jwt"
)

const testPassword = "password123"

func hashed(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

type fakeUserRepo struct {
	user.UserRepository

	byEmail    map[string]user.User
	byUsername map[string]user.User
	byID       map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	found, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

func (f *fakeUserRepo) GetByCompanyUsername(ctx context.Context, companyID, companyUsername string) (user.User, error) {
	found, ok := f.byUsername[companyID+"/"+companyUsername]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	found, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return found, nil
}

type fakeCompanyRepo struct {
	company.CompanyRepository

	byCode map[string]company.Company
}

func (f *fakeCompanyRepo) GetByCode(ctx context.Context, code string) (company.Company, error) {
	found, ok := f.byCode[code]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return found, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	byUserID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	found, ok := f.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return found, nil
}

func newServiceUnderTest(userRepo *fakeUserRepo, companyRepo *fakeCompanyRepo, employeeRepo *fakeEmployeeRepo) auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(userRepo, companyRepo, employeeRepo, jwtService, nil, config.AppConfig{FrontendURL: "http://localhost:3000"})
}

func strPtr(s string) *string { return &s }

func TestLogin_Success(t *testing.T) {
	companyID := "company-1"
	userRepo := &fakeUserRepo{byEmail: map[string]user.User{
		"admin@example.com": {
			ID:           "user-admin",
			CompanyID:    &companyID,
			Email:        strPtr("admin@example.com"),
			PasswordHash: hashed(t),
			IsAdmin:      true,
		},
	}}
	svc := newServiceUnderTest(userRepo, &fakeCompanyRepo{}, &fakeEmployeeRepo{})

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin@example.com", Password: testPassword})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{byEmail: map[string]user.User{
		"admin@example.com": {ID: "user-admin", Email: strPtr("admin@example.com"), PasswordHash: hashed(t), IsAdmin: true},
	}}
	svc := newServiceUnderTest(userRepo, &fakeCompanyRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newServiceUnderTest(&fakeUserRepo{byEmail: map[string]user.User{}}, &fakeCompanyRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com", Password: testPassword})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginEmployee_Success(t *testing.T) {
	companyID := "company-1"
	companyRepo := &fakeCompanyRepo{byCode: map[string]company.Company{
		"AC-1A2B3C": {ID: companyID, Code: "AC-1A2B3C"},
	}}
	userRepo := &fakeUserRepo{byUsername: map[string]user.User{
		companyID + "/AC-1A2B3C-Budi": {
			ID:              "user-emp",
			CompanyID:       &companyID,
			CompanyUsername: strPtr("AC-1A2B3C-Budi"),
			PasswordHash:    hashed(t),
		},
	}}
	employeeRepo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"user-emp": {ID: "emp-1", UserID: "user-emp", CompanyID: companyID},
	}}
	svc := newServiceUnderTest(userRepo, companyRepo, employeeRepo)

	tokens, err := svc.LoginEmployee(context.Background(), auth.LoginEmployeeRequest{
		CompanyCode:     "AC-1A2B3C",
		CompanyUsername: "AC-1A2B3C-Budi",
		Password:        testPassword,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestLoginEmployee_UnknownCompanyCode(t *testing.T) {
	svc := newServiceUnderTest(&fakeUserRepo{}, &fakeCompanyRepo{byCode: map[string]company.Company{}}, &fakeEmployeeRepo{})

	_, err := svc.LoginEmployee(context.Background(), auth.LoginEmployeeRequest{
		CompanyCode:     "ZZ-000000",
		CompanyUsername: "ZZ-000000-Nobody",
		Password:        testPassword,
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RevokedTokenRejected(t *testing.T) {
	userRepo := &fakeUserRepo{byID: map[string]user.User{
		"user-admin": {ID: "user-admin", Email: strPtr("admin@example.com"), PasswordHash: hashed(t), IsAdmin: true},
	}}
	userRepo.byEmail = map[string]user.User{"admin@example.com": userRepo.byID["user-admin"]}
	svc := newServiceUnderTest(userRepo, &fakeCompanyRepo{}, &fakeEmployeeRepo{})

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin@example.com", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))

	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_RotatesTokenPair(t *testing.T) {
	userRepo := &fakeUserRepo{byID: map[string]user.User{
		"user-admin": {ID: "user-admin", Email: strPtr("admin@example.com"), PasswordHash: hashed(t), IsAdmin: true},
	}}
	userRepo.byEmail = map[string]user.User{"admin@example.com": userRepo.byID["user-admin"]}
	svc := newServiceUnderTest(userRepo, &fakeCompanyRepo{}, &fakeEmployeeRepo{})

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin@example.com", Password: testPassword})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The old refresh token is single use.
	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_AccessTokenNotAccepted(t *testing.T) {
	userRepo := &fakeUserRepo{byEmail: map[string]user.User{
		"admin@example.com": {ID: "user-admin", Email: strPtr("admin@example.com"), PasswordHash: hashed(t), IsAdmin: true},
	}}
	svc := newServiceUnderTest(userRepo, &fakeCompanyRepo{}, &fakeEmployeeRepo{})

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin@example.com", Password: testPassword})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
