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
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftScheduleRepositoryImpl struct {
	db *database.DB
}

func NewShiftScheduleRepository(db *database.DB) shift.ScheduleRepository {
	return &shiftScheduleRepositoryImpl{db: db}
}

const scheduleColumns = `id, employee_id, setting_id, work_date, shift_number, created_at, updated_at`

func scanSchedule(row pgx.Row) (shift.Schedule, error) {
	var s shift.Schedule
	err := row.Scan(&s.ID, &s.EmployeeID, &s.SettingID, &s.WorkDate, &s.ShiftNumber, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create implements shift.ScheduleRepository. A partial unique index on
// (employee_id, work_date) backs the one-schedule-per-day rule; the unique
// violation maps to ErrDuplicateSchedule.
func (r *shiftScheduleRepositoryImpl) Create(ctx context.Context, schedule shift.Schedule) (shift.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_shift_schedules (employee_id, setting_id, work_date, shift_number)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + scheduleColumns

	created, err := scanSchedule(q.QueryRow(ctx, query,
		schedule.EmployeeID, schedule.SettingID, schedule.WorkDate, schedule.ShiftNumber,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Schedule{}, shift.ErrDuplicateSchedule
		}
		return shift.Schedule{}, fmt.Errorf("insert shift schedule: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ScheduleRepository.
func (r *shiftScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM employee_shift_schedules WHERE id = $1 AND deleted_at IS NULL`

	found, err := scanSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Schedule{}, shift.ErrScheduleNotFound
		}
		return shift.Schedule{}, fmt.Errorf("select shift schedule by id: %w", err)
	}
	return found, nil
}

// GetByEmployeeAndDate implements shift.ScheduleRepository.
func (r *shiftScheduleRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (shift.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM employee_shift_schedules WHERE employee_id = $1 AND work_date = $2 AND deleted_at IS NULL`

	found, err := scanSchedule(q.QueryRow(ctx, query, employeeID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Schedule{}, shift.ErrScheduleNotFound
		}
		return shift.Schedule{}, fmt.Errorf("select shift schedule by employee and date: %w", err)
	}
	return found, nil
}

// ExistsForEmployeeAndDate implements shift.ScheduleRepository.
func (r *shiftScheduleRepositoryImpl) ExistsForEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employee_shift_schedules WHERE employee_id = $1 AND work_date = $2 AND deleted_at IS NULL`
	args := []interface{}{employeeID, workDate}
	if excludeID != nil {
		query += ` AND id <> $3`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check shift schedule existence: %w", err)
	}
	return exists, nil
}

// ListByEmployee implements shift.ScheduleRepository.
func (r *shiftScheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]shift.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM employee_shift_schedules WHERE employee_id = $1 AND deleted_at IS NULL ORDER BY work_date`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list shift schedules: %w", err)
	}
	defer rows.Close()

	var schedules []shift.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift schedule row: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// Update implements shift.ScheduleRepository.
func (r *shiftScheduleRepositoryImpl) Update(ctx context.Context, id string, req shift.UpdateScheduleRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	add := func(col string, val interface{}) {
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.SettingID != nil {
		add("setting_id", *req.SettingID)
	}
	if req.WorkDate != nil {
		workDate, err := shift.ParseWorkDate(*req.WorkDate)
		if err != nil {
			return err
		}
		add("work_date", workDate)
	}
	if req.ShiftNumber != nil {
		add("shift_number", *req.ShiftNumber)
	}
	if len(setClauses) == 0 {
		return nil
	}
	add("updated_at", time.Now())

	args = append(args, id)
	sql := "UPDATE employee_shift_schedules SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL RETURNING id", len(args))

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrScheduleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ErrDuplicateSchedule
		}
		return fmt.Errorf("update shift schedule %s: %w", id, err)
	}
	return nil
}

// SoftDelete implements shift.ScheduleRepository.
func (r *shiftScheduleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employee_shift_schedules SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("soft delete shift schedule %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrScheduleNotFound
	}
	return nil
}
