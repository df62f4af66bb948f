package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `id, company_name, company_code, address, subscription_days, employee_count, max_employee_count, created_at, updated_at, deleted_at`

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Code, &c.Address,
		&c.SubscriptionDays, &c.EmployeeCount, &c.MaxEmployeeCount,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	return c, err
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (company_name, company_code, address, subscription_days, max_employee_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query,
		newCompany.Name, newCompany.Code, newCompany.Address,
		newCompany.SubscriptionDays, newCompany.MaxEmployeeCount,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "company_code") {
				return company.Company{}, company.ErrCompanyCodeExists
			}
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("insert company: %w", err)
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND deleted_at IS NULL`

	found, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("select company by id: %w", err)
	}
	return found, nil
}

// GetByCode implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByCode(ctx context.Context, code string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_code = $1 AND deleted_at IS NULL`

	found, err := scanCompany(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("select company by code: %w", err)
	}
	return found, nil
}

// List implements company.CompanyRepository.
func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE deleted_at IS NULL ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company row: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// ExistsByName implements company.CompanyRepository.
func (r *companyRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE company_name = $1 AND deleted_at IS NULL)`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check company name: %w", err)
	}
	return exists, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)
	add := func(col string, val interface{}) {
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		add("company_name", *req.Name)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}
	if req.SubscriptionDays != nil {
		add("subscription_days", *req.SubscriptionDays)
	}
	if req.MaxEmployeeCount != nil {
		add("max_employee_count", *req.MaxEmployeeCount)
	}
	if len(setClauses) == 0 {
		return nil
	}
	add("updated_at", time.Now())

	args = append(args, id)
	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL RETURNING id", len(args))

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("update company %s: %w", id, err)
	}
	return nil
}

// SoftDelete implements company.CompanyRepository.
func (r *companyRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE companies SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("soft delete company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// ReserveSeat implements company.CompanyRepository. The condition rides in
// the UPDATE itself so two concurrent onboardings cannot both take the last
// seat.
func (r *companyRepositoryImpl) ReserveSeat(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE companies
		SET employee_count = employee_count + 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND employee_count < max_employee_count`,
		id,
	)
	if err != nil {
		return fmt.Errorf("reserve seat for company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1 AND deleted_at IS NULL)`, id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("reserve seat for company %s: %w", id, err)
		}
		if !exists {
			return company.ErrCompanyNotFound
		}
		return company.ErrEmployeeQuotaExceeded
	}
	return nil
}

// ReleaseSeat implements company.CompanyRepository.
func (r *companyRepositoryImpl) ReleaseSeat(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE companies
		SET employee_count = GREATEST(employee_count - 1, 0), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("release seat for company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// CountActiveEmployees implements company.CompanyRepository.
func (r *companyRepositoryImpl) CountActiveEmployees(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE company_id = $1 AND deleted_at IS NULL`,
		id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active employees for company %s: %w", id, err)
	}
	return count, nil
}
