package postgresql

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/checkclock"
)

func TestCheckClockRepository_UpdateApproval_Success(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCheckClockRepository(db)

	mock.ExpectExec("UPDATE check_clocks").
		WithArgs(approval.StatusApproved, "cc-1", "company-1", approval.StatusWaiting).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateApproval(context.Background(), "cc-1", "company-1", approval.StatusApproved)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckClockRepository_UpdateApproval_AlreadyDecided(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCheckClockRepository(db)

	// The guarded update loses when the record is no longer pending; the
	// follow-up probe tells a decided record apart from a missing one.
	mock.ExpectExec("UPDATE check_clocks").
		WithArgs(approval.StatusRejected, "cc-1", "company-1", approval.StatusWaiting).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("cc-1", "company-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.UpdateApproval(context.Background(), "cc-1", "company-1", approval.StatusRejected)

	assert.ErrorIs(t, err, approval.ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckClockRepository_UpdateApproval_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCheckClockRepository(db)

	mock.ExpectExec("UPDATE check_clocks").
		WithArgs(approval.StatusApproved, "missing", "company-1", approval.StatusWaiting).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("missing", "company-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.UpdateApproval(context.Background(), "missing", "company-1", approval.StatusApproved)

	assert.ErrorIs(t, err, checkclock.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckClockRepository_SetProofURL_Success(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCheckClockRepository(db)

	mock.ExpectExec("UPDATE check_clocks").
		WithArgs("http://localhost/uploads/check-clocks/a.jpg", "cc-1", "company-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetProofURL(context.Background(), "cc-1", "company-1", "http://localhost/uploads/check-clocks/a.jpg")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckClockRepository_SoftDelete_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCheckClockRepository(db)

	mock.ExpectExec("UPDATE check_clocks").
		WithArgs("missing", "company-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SoftDelete(context.Background(), "missing", "company-1")

	assert.ErrorIs(t, err, checkclock.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
