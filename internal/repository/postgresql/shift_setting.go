package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SonyFebri/hris-backend/internal/domain/shift"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftSettingRepositoryImpl struct {
	db *database.DB
}

func NewShiftSettingRepository(db *database.DB) shift.SettingRepository {
	return &shiftSettingRepositoryImpl{db: db}
}

const settingColumns = `id, company_id, name, shift_count, created_at, updated_at, deleted_at`

func scanSetting(row pgx.Row) (shift.Setting, error) {
	var s shift.Setting
	err := row.Scan(&s.ID, &s.CompanyID, &s.Name, &s.ShiftCount, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt)
	return s, err
}

// Create implements shift.SettingRepository.
func (r *shiftSettingRepositoryImpl) Create(ctx context.Context, setting shift.Setting) (shift.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO check_clock_settings (company_id, name, shift_count)
		VALUES ($1, $2, $3)
		RETURNING ` + settingColumns

	created, err := scanSetting(q.QueryRow(ctx, query, setting.CompanyID, setting.Name, setting.ShiftCount))
	if err != nil {
		return shift.Setting{}, fmt.Errorf("insert shift setting: %w", err)
	}
	return created, nil
}

// GetByID implements shift.SettingRepository.
func (r *shiftSettingRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (shift.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingColumns + ` FROM check_clock_settings WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`

	found, err := scanSetting(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Setting{}, shift.ErrSettingNotFound
		}
		return shift.Setting{}, fmt.Errorf("select shift setting by id: %w", err)
	}
	return found, nil
}

// List implements shift.SettingRepository.
func (r *shiftSettingRepositoryImpl) List(ctx context.Context, companyID string) ([]shift.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingColumns + ` FROM check_clock_settings WHERE company_id = $1 AND deleted_at IS NULL ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list shift settings: %w", err)
	}
	defer rows.Close()

	var settings []shift.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift setting row: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Update implements shift.SettingRepository.
func (r *shiftSettingRepositoryImpl) Update(ctx context.Context, id string, companyID string, req shift.UpdateSettingRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)
	add := func(col string, val interface{}) {
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.ShiftCount != nil {
		add("shift_count", *req.ShiftCount)
	}
	if len(setClauses) == 0 {
		return nil
	}
	add("updated_at", time.Now())

	args = append(args, id, companyID)
	sql := "UPDATE check_clock_settings SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL RETURNING id", len(args)-1, len(args))

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrSettingNotFound
		}
		return fmt.Errorf("update shift setting %s: %w", id, err)
	}
	return nil
}

// SoftDelete implements shift.SettingRepository.
func (r *shiftSettingRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE check_clock_settings SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("soft delete shift setting %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrSettingNotFound
	}
	return nil
}
