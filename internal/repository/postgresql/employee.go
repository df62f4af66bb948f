package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `e.id, e.user_id, e.company_id, e.first_name, e.last_name, e.gender, e.contract_type, e.address, e.shift_count, e.base_salary, e.created_at, e.updated_at, e.deleted_at, u.company_username`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID,
		&e.FirstName, &e.LastName, &e.Gender, &e.ContractType,
		&e.Address, &e.ShiftCount, &e.BaseSalary,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.CompanyUsername,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, company_id, first_name, last_name, gender, contract_type, address, shift_count, base_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, company_id, first_name, last_name, gender, contract_type, address, shift_count, base_salary, created_at, updated_at, deleted_at`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.UserID, newEmployee.CompanyID,
		newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Gender, newEmployee.ContractType,
		newEmployee.Address, newEmployee.ShiftCount, newEmployee.BaseSalary,
	).Scan(
		&created.ID, &created.UserID, &created.CompanyID,
		&created.FirstName, &created.LastName, &created.Gender, &created.ContractType,
		&created.Address, &created.ShiftCount, &created.BaseSalary,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	created.CompanyUsername = newEmployee.CompanyUsername
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1 AND e.company_id = $2`

	found, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("select employee by id: %w", err)
	}
	return found, nil
}

// GetActiveByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	found, err := r.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.Employee{}, err
	}
	if found.IsResigned() {
		return employee.Employee{}, employee.ErrEmployeeResigned
	}
	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1 AND e.deleted_at IS NULL`

	found, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("select employee by user id: %w", err)
	}
	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.company_id = $1 AND e.deleted_at IS NULL
		ORDER BY e.first_name, e.last_name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, companyID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 8)
	args := make([]interface{}, 0, 10)
	add := func(col string, val interface{}) {
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.FirstName != nil {
		add("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		add("last_name", *req.LastName)
	}
	if req.Gender != nil {
		add("gender", *req.Gender)
	}
	if req.ContractType != nil {
		add("contract_type", *req.ContractType)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}
	if req.ShiftCount != nil {
		add("shift_count", *req.ShiftCount)
	}
	if req.BaseSalary != nil {
		add("base_salary", *req.BaseSalary)
	}
	if len(setClauses) == 0 {
		return nil
	}
	add("updated_at", time.Now())

	args = append(args, id, companyID)
	sql := "UPDATE employees SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING id", len(args)-1, len(args))

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("update employee %s: %w", id, err)
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("soft delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
