package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &database.DB{Pool: mock}
}

func TestCompanyRepository_ReserveSeat_Success(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec("UPDATE companies").
		WithArgs("company-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ReserveSeat(context.Background(), "company-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ReserveSeat_QuotaExceeded(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	// The conditional update touches nothing when the company is full, then
	// the existence probe distinguishes full from missing.
	mock.ExpectExec("UPDATE companies").
		WithArgs("company-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("company-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.ReserveSeat(context.Background(), "company-1")

	assert.ErrorIs(t, err, company.ErrEmployeeQuotaExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ReserveSeat_CompanyNotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec("UPDATE companies").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.ReserveSeat(context.Background(), "missing")

	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ReleaseSeat_CompanyNotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec("UPDATE companies").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.ReleaseSeat(context.Background(), "missing")

	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Create_DuplicateCode(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("Acme Corp", "AC-1A2B3C", (*string)(nil), 14, 20).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "companies_company_code_unique"})

	_, err := repo.Create(context.Background(), company.Company{
		Name:             "Acme Corp",
		Code:             "AC-1A2B3C",
		SubscriptionDays: 14,
		MaxEmployeeCount: 20,
	})

	assert.ErrorIs(t, err, company.ErrCompanyCodeExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Create_DuplicateName(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("Acme Corp", "AC-1A2B3C", (*string)(nil), 14, 20).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "companies_company_name_unique"})

	_, err := repo.Create(context.Background(), company.Company{
		Name:             "Acme Corp",
		Code:             "AC-1A2B3C",
		SubscriptionDays: 14,
		MaxEmployeeCount: 20,
	})

	assert.ErrorIs(t, err, company.ErrCompanyNameExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_GetByID_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM companies").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_GetByID_Success(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM companies").
		WithArgs("company-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "company_name", "company_code", "address",
			"subscription_days", "employee_count", "max_employee_count",
			"created_at", "updated_at", "deleted_at",
		}).AddRow("company-1", "Acme Corp", "AC-1A2B3C", (*string)(nil), 14, 3, 20, now, now, (*time.Time)(nil)))

	found, err := repo.GetByID(context.Background(), "company-1")

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.Name)
	assert.Equal(t, "AC-1A2B3C", found.Code)
	assert.Equal(t, 3, found.EmployeeCount)
	assert.True(t, found.HasSeatAvailable())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Update_NoFields(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCompanyRepository(db)

	// No expectations registered: an empty update must not touch the database.
	err := repo.Update(context.Background(), "company-1", company.UpdateCompanyRequest{})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
