package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type checkClockRepositoryImpl struct {
	db *database.DB
}

func NewCheckClockRepository(db *database.DB) checkclock.Repository {
	return &checkClockRepositoryImpl{db: db}
}

const checkClockColumns = `c.id, c.employee_id, c.company_id, c.check_clock_type, c.check_clock_time, c.status, c.approval, c.latitude, c.longitude, c.proof_url, c.created_at, c.updated_at, c.deleted_at`

func scanCheckClock(row pgx.Row) (checkclock.Event, error) {
	var e checkclock.Event
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.CompanyID,
		&e.Type, &e.OccurredAt, &e.Status, &e.Approval,
		&e.Latitude, &e.Longitude, &e.ProofURL,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

// Create implements checkclock.Repository.
func (r *checkClockRepositoryImpl) Create(ctx context.Context, event checkclock.Event) (checkclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO check_clocks (employee_id, company_id, check_clock_type, check_clock_time, status, approval, latitude, longitude, proof_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, employee_id, company_id, check_clock_type, check_clock_time, status, approval, latitude, longitude, proof_url, created_at, updated_at, deleted_at`

	var created checkclock.Event
	err := q.QueryRow(ctx, query,
		event.EmployeeID, event.CompanyID,
		event.Type, event.OccurredAt, event.Status, event.Approval,
		event.Latitude, event.Longitude, event.ProofURL,
	).Scan(
		&created.ID, &created.EmployeeID, &created.CompanyID,
		&created.Type, &created.OccurredAt, &created.Status, &created.Approval,
		&created.Latitude, &created.Longitude, &created.ProofURL,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		return checkclock.Event{}, fmt.Errorf("insert check clock: %w", err)
	}
	return created, nil
}

// GetByID implements checkclock.Repository.
func (r *checkClockRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (checkclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkClockColumns + `, e.first_name || ' ' || e.last_name
		FROM check_clocks c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1 AND c.company_id = $2 AND c.deleted_at IS NULL`

	var found checkclock.Event
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID, &found.EmployeeID, &found.CompanyID,
		&found.Type, &found.OccurredAt, &found.Status, &found.Approval,
		&found.Latitude, &found.Longitude, &found.ProofURL,
		&found.CreatedAt, &found.UpdatedAt, &found.DeletedAt,
		&found.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkclock.Event{}, checkclock.ErrEventNotFound
		}
		return checkclock.Event{}, fmt.Errorf("select check clock by id: %w", err)
	}
	return found, nil
}

// List implements checkclock.Repository.
func (r *checkClockRepositoryImpl) List(ctx context.Context, companyID string, filter checkclock.ListEventsFilter) ([]checkclock.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + checkClockColumns + `, e.first_name || ' ' || e.last_name
		FROM check_clocks c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.company_id = $1 AND c.deleted_at IS NULL`
	args := []interface{}{companyID}

	addFilter := func(clause string, val interface{}) {
		args = append(args, val)
		query += fmt.Sprintf(" AND %s $%d", clause, len(args))
	}

	if filter.EmployeeID != nil {
		addFilter("c.employee_id =", *filter.EmployeeID)
	}
	if filter.Type != nil {
		addFilter("c.check_clock_type =", *filter.Type)
	}
	if filter.Approval != nil {
		addFilter("c.approval =", *filter.Approval)
	}
	if filter.DateFrom != nil {
		addFilter("c.check_clock_time >=", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addFilter("c.check_clock_time <=", *filter.DateTo)
	}
	query += " ORDER BY c.check_clock_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list check clocks: %w", err)
	}
	defer rows.Close()

	var events []checkclock.Event
	for rows.Next() {
		var e checkclock.Event
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.CompanyID,
			&e.Type, &e.OccurredAt, &e.Status, &e.Approval,
			&e.Latitude, &e.Longitude, &e.ProofURL,
			&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
			&e.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan check clock row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateApproval implements checkclock.Repository. The pending state is part
// of the WHERE clause so two concurrent decisions cannot both win.
func (r *checkClockRepositoryImpl) UpdateApproval(ctx context.Context, id string, companyID string, to approval.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE check_clocks
		SET approval = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND approval = $4 AND deleted_at IS NULL`,
		to, id, companyID, approval.StatusWaiting,
	)
	if err != nil {
		return fmt.Errorf("update check clock approval %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM check_clocks WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL)`,
			id, companyID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("update check clock approval %s: %w", id, err)
		}
		if !exists {
			return checkclock.ErrEventNotFound
		}
		return approval.ErrNotPending
	}
	return nil
}

// SetProofURL implements checkclock.Repository.
func (r *checkClockRepositoryImpl) SetProofURL(ctx context.Context, id string, companyID string, proofURL string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE check_clocks SET proof_url = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL`,
		proofURL, id, companyID,
	)
	if err != nil {
		return fmt.Errorf("set check clock proof url %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return checkclock.ErrEventNotFound
	}
	return nil
}

// SoftDelete implements checkclock.Repository.
func (r *checkClockRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE check_clocks SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID,
	)
	if err != nil {
		return fmt.Errorf("soft delete check clock %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return checkclock.ErrEventNotFound
	}
	return nil
}
