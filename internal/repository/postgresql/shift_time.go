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

type shiftTimeRepositoryImpl struct {
	db *database.DB
}

func NewShiftTimeRepository(db *database.DB) shift.TimeWindowRepository {
	return &shiftTimeRepositoryImpl{db: db}
}

const timeWindowColumns = `id, setting_id, shift_number, clock_in, clock_out, break_start, break_end, created_at, updated_at`

func scanTimeWindow(row pgx.Row) (shift.TimeWindow, error) {
	var w shift.TimeWindow
	err := row.Scan(
		&w.ID, &w.SettingID, &w.ShiftNumber,
		&w.ClockIn, &w.ClockOut, &w.BreakStart, &w.BreakEnd,
		&w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// Create implements shift.TimeWindowRepository.
func (r *shiftTimeRepositoryImpl) Create(ctx context.Context, window shift.TimeWindow) (shift.TimeWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO check_clock_setting_times (setting_id, shift_number, clock_in, clock_out, break_start, break_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + timeWindowColumns

	created, err := scanTimeWindow(q.QueryRow(ctx, query,
		window.SettingID, window.ShiftNumber,
		window.ClockIn, window.ClockOut,
		window.BreakStart, window.BreakEnd,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.TimeWindow{}, shift.ErrTimeWindowExists
		}
		return shift.TimeWindow{}, fmt.Errorf("insert time window: %w", err)
	}
	return created, nil
}

// GetByID implements shift.TimeWindowRepository.
func (r *shiftTimeRepositoryImpl) GetByID(ctx context.Context, id string) (shift.TimeWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeWindowColumns + ` FROM check_clock_setting_times WHERE id = $1`

	found, err := scanTimeWindow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.TimeWindow{}, shift.ErrTimeWindowNotFound
		}
		return shift.TimeWindow{}, fmt.Errorf("select time window by id: %w", err)
	}
	return found, nil
}

// GetBySettingAndShift implements shift.TimeWindowRepository.
func (r *shiftTimeRepositoryImpl) GetBySettingAndShift(ctx context.Context, settingID string, shiftNumber int) (shift.TimeWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeWindowColumns + ` FROM check_clock_setting_times WHERE setting_id = $1 AND shift_number = $2`

	found, err := scanTimeWindow(q.QueryRow(ctx, query, settingID, shiftNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.TimeWindow{}, shift.ErrTimeWindowNotFound
		}
		return shift.TimeWindow{}, fmt.Errorf("select time window by setting and shift: %w", err)
	}
	return found, nil
}

// ListBySetting implements shift.TimeWindowRepository.
func (r *shiftTimeRepositoryImpl) ListBySetting(ctx context.Context, settingID string) ([]shift.TimeWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeWindowColumns + ` FROM check_clock_setting_times WHERE setting_id = $1 ORDER BY shift_number`

	rows, err := q.Query(ctx, query, settingID)
	if err != nil {
		return nil, fmt.Errorf("list time windows: %w", err)
	}
	defer rows.Close()

	var windows []shift.TimeWindow
	for rows.Next() {
		w, err := scanTimeWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time window row: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// Update implements shift.TimeWindowRepository.
func (r *shiftTimeRepositoryImpl) Update(ctx context.Context, id string, req shift.UpdateTimeWindowRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)
	add := func(col string, val interface{}) {
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	parse := func(field string, value *string) (*time.Time, error) {
		if value == nil {
			return nil, nil
		}
		parsed, err := shift.ParseTimeOfDay(*value)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", field, err)
		}
		return &parsed, nil
	}

	clockIn, err := parse("clock_in", req.ClockIn)
	if err != nil {
		return err
	}
	clockOut, err := parse("clock_out", req.ClockOut)
	if err != nil {
		return err
	}
	breakStart, err := parse("break_start", req.BreakStart)
	if err != nil {
		return err
	}
	breakEnd, err := parse("break_end", req.BreakEnd)
	if err != nil {
		return err
	}

	if clockIn != nil {
		add("clock_in", *clockIn)
	}
	if clockOut != nil {
		add("clock_out", *clockOut)
	}
	if breakStart != nil {
		add("break_start", *breakStart)
	}
	if breakEnd != nil {
		add("break_end", *breakEnd)
	}
	if len(setClauses) == 0 {
		return nil
	}
	add("updated_at", time.Now())

	args = append(args, id)
	sql := "UPDATE check_clock_setting_times SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", len(args))

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrTimeWindowNotFound
		}
		return fmt.Errorf("update time window %s: %w", id, err)
	}
	return nil
}

// Delete implements shift.TimeWindowRepository.
func (r *shiftTimeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM check_clock_setting_times WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time window %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrTimeWindowNotFound
	}
	return nil
}
