package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/letter"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type letterFormatRepositoryImpl struct {
	db *database.DB
}

func NewLetterFormatRepository(db *database.DB) letter.FormatRepository {
	return &letterFormatRepositoryImpl{db: db}
}

const formatColumns = `id, company_id, name, content, status, created_at, updated_at, deleted_at`

func scanFormat(row pgx.Row) (letter.Format, error) {
	var f letter.Format
	err := row.Scan(&f.ID, &f.CompanyID, &f.Name, &f.Content, &f.Status, &f.CreatedAt, &f.UpdatedAt, &f.DeletedAt)
	return f, err
}

// Create implements letter.FormatRepository.
func (r *letterFormatRepositoryImpl) Create(ctx context.Context, format letter.Format) (letter.Format, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO letter_formats (company_id, name, content, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + formatColumns

	created, err := scanFormat(q.QueryRow(ctx, query, format.CompanyID, format.Name, format.Content, format.Status))
	if err != nil {
		return letter.Format{}, fmt.Errorf("insert letter format: %w", err)
	}
	return created, nil
}

// GetByID implements letter.FormatRepository.
func (r *letterFormatRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (letter.Format, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + formatColumns + ` FROM letter_formats WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`

	found, err := scanFormat(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return letter.Format{}, letter.ErrFormatNotFound
		}
		return letter.Format{}, fmt.Errorf("select letter format by id: %w", err)
	}
	return found, nil
}

// List implements letter.FormatRepository.
func (r *letterFormatRepositoryImpl) List(ctx context.Context, companyID string) ([]letter.Format, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + formatColumns + ` FROM letter_formats WHERE company_id = $1 AND deleted_at IS NULL ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list letter formats: %w", err)
	}
	defer rows.Close()

	var formats []letter.Format
	for rows.Next() {
		f, err := scanFormat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan letter format row: %w", err)
		}
		formats = append(formats, f)
	}
	return formats, rows.Err()
}

// Update implements letter.FormatRepository.
func (r *letterFormatRepositoryImpl) Update(ctx context.Context, id string, companyID string, req letter.UpdateFormatRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 6)
	add := func(col string, val interface{}) {
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Content != nil {
		add("content", *req.Content)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if len(setClauses) == 0 {
		return nil
	}
	add("updated_at", time.Now())

	args = append(args, id, companyID)
	sql := "UPDATE letter_formats SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING id", len(args)-1, len(args))

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return letter.ErrFormatNotFound
		}
		return fmt.Errorf("update letter format %s: %w", id, err)
	}
	return nil
}

// SoftDelete implements letter.FormatRepository.
func (r *letterFormatRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE letter_formats SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("soft delete letter format %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return letter.ErrFormatNotFound
	}
	return nil
}

// CountLetters implements letter.FormatRepository.
func (r *letterFormatRepositoryImpl) CountLetters(ctx context.Context, formatID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM letters WHERE letter_format_id = $1 AND deleted_at IS NULL`,
		formatID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count letters for format %s: %w", formatID, err)
	}
	return count, nil
}

type letterRepositoryImpl struct {
	db *database.DB
}

func NewLetterRepository(db *database.DB) letter.Repository {
	return &letterRepositoryImpl{db: db}
}

const letterColumns = `l.id, l.letter_format_id, l.employee_id, l.company_id, l.name, l.file_url, l.approval, l.created_at, l.updated_at, l.deleted_at`

// Create implements letter.Repository.
func (r *letterRepositoryImpl) Create(ctx context.Context, newLetter letter.Letter) (letter.Letter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO letters (letter_format_id, employee_id, company_id, name, file_url, approval)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, letter_format_id, employee_id, company_id, name, file_url, approval, created_at, updated_at, deleted_at`

	var created letter.Letter
	err := q.QueryRow(ctx, query,
		newLetter.FormatID, newLetter.EmployeeID, newLetter.CompanyID,
		newLetter.Name, newLetter.FileURL, newLetter.Approval,
	).Scan(
		&created.ID, &created.FormatID, &created.EmployeeID, &created.CompanyID,
		&created.Name, &created.FileURL, &created.Approval,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		return letter.Letter{}, fmt.Errorf("insert letter: %w", err)
	}
	return created, nil
}

// GetByID implements letter.Repository.
func (r *letterRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (letter.Letter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + letterColumns + `, f.name, e.first_name || ' ' || e.last_name
		FROM letters l
		JOIN letter_formats f ON f.id = l.letter_format_id
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1 AND l.company_id = $2 AND l.deleted_at IS NULL`

	var found letter.Letter
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID, &found.FormatID, &found.EmployeeID, &found.CompanyID,
		&found.Name, &found.FileURL, &found.Approval,
		&found.CreatedAt, &found.UpdatedAt, &found.DeletedAt,
		&found.FormatName, &found.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return letter.Letter{}, letter.ErrLetterNotFound
		}
		return letter.Letter{}, fmt.Errorf("select letter by id: %w", err)
	}
	return found, nil
}

// List implements letter.Repository.
func (r *letterRepositoryImpl) List(ctx context.Context, companyID string, filter letter.ListLettersFilter) ([]letter.Letter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + letterColumns + `, f.name, e.first_name || ' ' || e.last_name
		FROM letters l
		JOIN letter_formats f ON f.id = l.letter_format_id
		JOIN employees e ON e.id = l.employee_id
		WHERE l.company_id = $1 AND l.deleted_at IS NULL`
	args := []interface{}{companyID}

	addFilter := func(clause string, val interface{}) {
		args = append(args, val)
		query += fmt.Sprintf(" AND %s $%d", clause, len(args))
	}

	if filter.EmployeeID != nil {
		addFilter("l.employee_id =", *filter.EmployeeID)
	}
	if filter.FormatID != nil {
		addFilter("l.letter_format_id =", *filter.FormatID)
	}
	if filter.Approval != nil {
		addFilter("l.approval =", *filter.Approval)
	}
	query += " ORDER BY l.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	defer rows.Close()

	var letters []letter.Letter
	for rows.Next() {
		var l letter.Letter
		err := rows.Scan(
			&l.ID, &l.FormatID, &l.EmployeeID, &l.CompanyID,
			&l.Name, &l.FileURL, &l.Approval,
			&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
			&l.FormatName, &l.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan letter row: %w", err)
		}
		letters = append(letters, l)
	}
	return letters, rows.Err()
}

// UpdateApproval implements letter.Repository. Same conditional update as
// check clocks: only a pending row moves.
func (r *letterRepositoryImpl) UpdateApproval(ctx context.Context, id string, companyID string, to approval.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE letters
		SET approval = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND approval = $4 AND deleted_at IS NULL`,
		to, id, companyID, approval.StatusWaiting,
	)
	if err != nil {
		return fmt.Errorf("update letter approval %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM letters WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL)`,
			id, companyID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("update letter approval %s: %w", id, err)
		}
		if !exists {
			return letter.ErrLetterNotFound
		}
		return approval.ErrNotPending
	}
	return nil
}

// SetFileURL implements letter.Repository.
func (r *letterRepositoryImpl) SetFileURL(ctx context.Context, id string, companyID string, fileURL string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE letters SET file_url = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL`,
		fileURL, id, companyID,
	)
	if err != nil {
		return fmt.Errorf("set letter file url %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return letter.ErrLetterNotFound
	}
	return nil
}

// SoftDelete implements letter.Repository.
func (r *letterRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE letters SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("soft delete letter %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return letter.ErrLetterNotFound
	}
	return nil
}
