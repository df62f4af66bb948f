package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/user"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/SonyFebri/hris-backend/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// usernameAttempts bounds the collision loop during username generation.
const usernameAttempts = 100

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	company.CompanyRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		CompanyRepository:  companyRepository,
	}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// generateUsername builds `<company_code>-<FirstName>` and appends a counter
// until the name is free within the company. Gives up after a bounded number
// of attempts rather than looping forever.
func (e *EmployeeServiceImpl) generateUsername(ctx context.Context, companyID, companyCode, firstName string) (string, error) {
	base := companyCode + "-" + strings.ReplaceAll(firstName, " ", "")

	for n := 1; n <= usernameAttempts; n++ {
		candidate := base
		if n > 1 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}
		taken, err := e.UserRepository.ExistsByCompanyUsername(ctx, companyID, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", user.ErrUsernameGeneration
}

// Onboard implements employee.EmployeeService. Seat reservation, account
// creation and profile creation all commit or roll back together, so a full
// company can never end up with a half-created employee.
func (e *EmployeeServiceImpl) Onboard(ctx context.Context, req employee.OnboardEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyData, err := e.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var baseSalary *decimal.Decimal
	if req.BaseSalary != nil {
		parsed, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse base salary: %w", err)
		}
		baseSalary = &parsed
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		if err := e.CompanyRepository.ReserveSeat(txCtx, companyID); err != nil {
			return err
		}

		username, err := e.generateUsername(txCtx, companyID, companyData.Code, req.FirstName)
		if err != nil {
			return err
		}

		newUser, err := e.UserRepository.Create(txCtx, user.User{
			CompanyID:       &companyID,
			CompanyUsername: &username,
			PasswordHash:    string(passwordHash),
			IsAdmin:         false,
		})
		if err != nil {
			return err
		}

		created, err = e.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:          newUser.ID,
			CompanyID:       companyID,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Gender:          employee.Gender(req.Gender),
			ContractType:    employee.ContractType(req.ContractType),
			Address:         req.Address,
			ShiftCount:      req.ShiftCount,
			BaseSalary:      baseSalary,
			CompanyUsername: &username,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := e.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(found), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := e.EmployeeRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, found := range employees {
		responses = append(responses, toResponse(found))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := e.EmployeeRepository.GetActiveByID(ctx, id, companyID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := e.EmployeeRepository.Update(ctx, id, companyID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := e.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// Resign implements employee.EmployeeService. The profile and the login
// account are tombstoned and the seat released in one transaction.
func (e *EmployeeServiceImpl) Resign(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	found, err := e.EmployeeRepository.GetActiveByID(ctx, id, companyID)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		if err := e.EmployeeRepository.SoftDelete(txCtx, id, companyID); err != nil {
			return err
		}
		if err := e.UserRepository.SoftDelete(txCtx, found.UserID); err != nil {
			return err
		}
		return e.CompanyRepository.ReleaseSeat(txCtx, companyID)
	})
}

func toResponse(found employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:              found.ID,
		UserID:          found.UserID,
		CompanyID:       found.CompanyID,
		FirstName:       found.FirstName,
		LastName:        found.LastName,
		Gender:          string(found.Gender),
		ContractType:    string(found.ContractType),
		Address:         found.Address,
		ShiftCount:      found.ShiftCount,
		CompanyUsername: found.CompanyUsername,
		CreatedAt:       found.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       found.UpdatedAt.Format(time.RFC3339),
	}
	if found.BaseSalary != nil {
		salary := found.BaseSalary.String()
		resp.BaseSalary = &salary
	}
	return resp
}
