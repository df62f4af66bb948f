package company

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/domain/user"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/SonyFebri/hris-backend/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

const (
	defaultSubscriptionDays = 14
	defaultMaxEmployees     = 20
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
	user.UserRepository
}

func NewCompanyService(db *database.DB, companyRepository company.CompanyRepository, userRepository user.UserRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepository,
		UserRepository:    userRepository,
	}
}

// generateCompanyCode derives a short unique code from the company name: the
// first letters of up to three words plus a random suffix.
func generateCompanyCode(name string) string {
	var initials strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 3 {
			break
		}
		first, _ := utf8.DecodeRuneInString(word)
		initials.WriteRune(unicode.ToUpper(first))
	}
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return initials.String() + "-" + suffix
}

// Create implements company.CompanyService. The new company is attached to
// the calling admin's account in the same transaction.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return company.CompanyResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	exists, err := c.CompanyRepository.ExistsByName(ctx, req.Name)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check company name: %w", err)
	}
	if exists {
		return company.CompanyResponse{}, company.ErrCompanyNameExists
	}

	newCompany := company.Company{
		Name:             req.Name,
		Code:             generateCompanyCode(req.Name),
		Address:          req.Address,
		SubscriptionDays: defaultSubscriptionDays,
		MaxEmployeeCount: defaultMaxEmployees,
	}
	if req.SubscriptionDays != nil {
		newCompany.SubscriptionDays = *req.SubscriptionDays
	}
	if req.MaxEmployeeCount != nil {
		newCompany.MaxEmployeeCount = *req.MaxEmployeeCount
	}

	var created company.Company
	err = postgresql.WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		created, err = c.CompanyRepository.Create(txCtx, newCompany)
		if err != nil {
			return err
		}
		if err := c.UserRepository.AttachCompany(txCtx, userID, created.ID); err != nil {
			return fmt.Errorf("failed to attach company to admin: %w", err)
		}
		return nil
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toResponse(created), nil
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	found, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toResponse(found), nil
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, found := range companies {
		responses = append(responses, toResponse(found))
	}
	return responses, nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.CompanyRepository.Update(ctx, id, req)
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	return c.CompanyRepository.SoftDelete(ctx, id)
}

func toResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		Code:             c.Code,
		Address:          c.Address,
		SubscriptionDays: c.SubscriptionDays,
		EmployeeCount:    c.EmployeeCount,
		MaxEmployeeCount: c.MaxEmployeeCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
