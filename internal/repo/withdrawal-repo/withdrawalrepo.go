package withdrawalrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const withdrawalColumns = `id, user_id, withdraw_amount, status, requested_at`

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
        INSERT INTO withdrawals (user_id, withdraw_amount, status, requested_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		withdrawal.UserID, withdrawal.Amount, withdrawal.Status, withdrawal.RequestedAt,
	).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var wd domain.Withdrawal
	if err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.RequestedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

// FindPendingByUserID returns the user's open request, if any. At most one
// can exist; the partial unique index enforces it at the storage layer.
func (r *Repository) FindPendingByUserID(ctx context.Context, userID int) (*domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE user_id = $1 AND status = $2
    `
	row := r.db.QueryRow(ctx, query, userID, domain.WithdrawalPending)
	var wd domain.Withdrawal
	if err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.RequestedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find pending withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

// UpdateStatus transitions a withdrawal out of Pending. The WHERE clause
// keeps terminal states terminal: returns false when the row was not Pending.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.WithdrawalStatus) (bool, error) {
	query := `
        UPDATE withdrawals
        SET status = $2
        WHERE id = $1 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, id, status, domain.WithdrawalPending)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY requested_at DESC
    `
	return r.findWithdrawals(ctx, query, userID)
}

// ListByStatus returns all withdrawals in a given state, oldest first, for
// the admin review queue.
func (r *Repository) ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawals
        WHERE status = $1
        ORDER BY requested_at
    `
	return r.findWithdrawals(ctx, query, status)
}

func (r *Repository) findWithdrawals(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		if err := rows.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.RequestedAt); err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, rows.Err()
}
