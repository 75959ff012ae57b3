package salerepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const saleColumns = `id, user_id, balance, trial_bonus, trial_bonus_date, today_bonus, today_bonus_date, total_earning, number_of_rating`

func scanSale(row pgx.Row, sale *domain.Sale) error {
	return row.Scan(
		&sale.ID,
		&sale.UserID,
		&sale.Balance,
		&sale.TrialBonus,
		&sale.TrialBonusDate,
		&sale.TodayBonus,
		&sale.TodayBonusDate,
		&sale.TotalEarning,
		&sale.NumberOfRating,
	)
}

func (r *Repository) GetSaleByUserID(ctx context.Context, userID int) (*domain.Sale, error) {
	query := `
        SELECT ` + saleColumns + `
        FROM sales
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var sale domain.Sale
	err := scanSale(row, &sale)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get sale", zap.Error(err))
		return nil, err
	}
	return &sale, nil
}

func (r *Repository) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query := `
        INSERT INTO sales (user_id, balance, trial_bonus, trial_bonus_date, today_bonus, today_bonus_date, total_earning, number_of_rating)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + saleColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		sale.UserID, sale.Balance, sale.TrialBonus, sale.TrialBonusDate,
		sale.TodayBonus, sale.TodayBonusDate, sale.TotalEarning, sale.NumberOfRating,
	)
	var created domain.Sale
	if err := scanSale(row, &created); err != nil {
		zap.L().Error("failed to create sale", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// ExpireTodayBonus zeroes the daily bonus and restamps its date. Exactly the
// two bonus fields are touched so concurrent mutations to balance or
// total_earning are never clobbered.
func (r *Repository) ExpireTodayBonus(ctx context.Context, userID int, now time.Time) error {
	query := `
        UPDATE sales
        SET today_bonus = 0, today_bonus_date = $2
        WHERE user_id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID, now); err != nil {
		zap.L().Error("failed to expire today bonus", zap.Error(err))
		return err
	}
	return nil
}

// CreditCashback applies a purchase credit in a single arithmetic statement:
// balance, today_bonus and total_earning each grow by cashback, and the
// today_bonus date is restamped.
func (r *Repository) CreditCashback(ctx context.Context, userID int, cashback float64, now time.Time) (*domain.Sale, error) {
	var updated domain.Sale
	query := `
        UPDATE sales
        SET balance = balance + $2,
            today_bonus = today_bonus + $2,
            today_bonus_date = $3,
            total_earning = total_earning + $2
        WHERE user_id = $1
        RETURNING ` + saleColumns + `
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, userID, cashback, now)
		if err := scanSale(row, &updated); err != nil {
			zap.L().Error("failed to credit cashback", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DebitBalance subtracts amount from the withdrawable balance, clamped at 0.
func (r *Repository) DebitBalance(ctx context.Context, userID int, amount float64) (*domain.Sale, error) {
	var updated domain.Sale
	query := `
        UPDATE sales
        SET balance = GREATEST(balance - $2, 0)
        WHERE user_id = $1
        RETURNING ` + saleColumns + `
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, userID, amount)
		if err := scanSale(row, &updated); err != nil {
			zap.L().Error("failed to debit balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) IncrementRating(ctx context.Context, userID int) error {
	query := `
        UPDATE sales
        SET number_of_rating = number_of_rating + 1
        WHERE user_id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to increment rating", zap.Error(err))
		return err
	}
	return nil
}

// ExpireStaleBonuses zeroes the daily bonus for every ledger whose bonus date
// is older than the current calendar day. Used by the nightly sweep.
func (r *Repository) ExpireStaleBonuses(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE sales
        SET today_bonus = 0, today_bonus_date = $1
        WHERE today_bonus <> 0 AND today_bonus_date::date < $1::date
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to expire stale bonuses", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
