package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/taskmart/taskmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func TestRepository_CreateWithdrawal(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO withdrawals (user_id, withdraw_amount, status, requested_at) VALUES ($1, $2, $3, $4) RETURNING id`)

	withdrawal := &domain.Withdrawal{
		UserID:      1,
		Amount:      50,
		Status:      domain.WithdrawalPending,
		RequestedAt: testNow,
	}

	t.Run("Withdrawal is created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, 50.0, domain.WithdrawalPending, testNow).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		created, err := repo.CreateWithdrawal(context.Background(), withdrawal)
		assert.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, 50.0, domain.WithdrawalPending, testNow).
			WillReturnError(errors.New("database error"))

		_, err := repo.CreateWithdrawal(context.Background(), withdrawal)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, user_id, withdraw_amount, status, requested_at FROM withdrawals WHERE id = $1`)

	t.Run("Existing withdrawal", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "withdraw_amount", "status", "requested_at"}).
			AddRow(7, 1, 50.0, domain.WithdrawalPending, testNow)
		mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

		wd, err := repo.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.WithdrawalPending, wd.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing withdrawal returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		wd, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, wd)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindPendingByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, user_id, withdraw_amount, status, requested_at FROM withdrawals WHERE user_id = $1 AND status = $2`)

	t.Run("Open request exists", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "withdraw_amount", "status", "requested_at"}).
			AddRow(7, 1, 50.0, domain.WithdrawalPending, testNow)
		mock.ExpectQuery(query).WithArgs(1, domain.WithdrawalPending).WillReturnRows(rows)

		wd, err := repo.FindPendingByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 7, wd.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No open request", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, domain.WithdrawalPending).WillReturnError(pgx.ErrNoRows)

		wd, err := repo.FindPendingByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Nil(t, wd)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE withdrawals SET status = $2 WHERE id = $1 AND status = $3`)

	t.Run("Pending row flips", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(7, domain.WithdrawalApproved, domain.WithdrawalPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		flipped, err := repo.UpdateStatus(context.Background(), 7, domain.WithdrawalApproved)
		assert.NoError(t, err)
		assert.True(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Terminal row stays terminal", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(7, domain.WithdrawalRejected, domain.WithdrawalPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		flipped, err := repo.UpdateStatus(context.Background(), 7, domain.WithdrawalRejected)
		assert.NoError(t, err)
		assert.False(t, flipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetWithdrawalsByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, user_id, withdraw_amount, status, requested_at FROM withdrawals WHERE user_id = $1 ORDER BY requested_at DESC`)

	rows := pgxmock.NewRows([]string{"id", "user_id", "withdraw_amount", "status", "requested_at"}).
		AddRow(2, 1, 20.0, domain.WithdrawalPending, testNow).
		AddRow(1, 1, 50.0, domain.WithdrawalApproved, testNow.AddDate(0, 0, -1))
	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

	withdrawals, err := repo.GetWithdrawalsByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 2)
	assert.Equal(t, 2, withdrawals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, user_id, withdraw_amount, status, requested_at FROM withdrawals WHERE status = $1 ORDER BY requested_at`)

	rows := pgxmock.NewRows([]string{"id", "user_id", "withdraw_amount", "status", "requested_at"}).
		AddRow(3, 2, 10.0, domain.WithdrawalPending, testNow)
	mock.ExpectQuery(query).WithArgs(domain.WithdrawalPending).WillReturnRows(rows)

	withdrawals, err := repo.ListByStatus(context.Background(), domain.WithdrawalPending)
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
