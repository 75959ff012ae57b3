package referralrepo

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

func (r *Repository) Create(ctx context.Context, code *domain.ReferralCode) (*domain.ReferralCode, error) {
	query := `
        INSERT INTO referral_codes (code, admin_id)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, code.Code, code.AdminID).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create referral code", zap.Error(err))
		return nil, err
	}
	return code, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.ReferralCode, error) {
	query := `
        SELECT id, code, admin_id, created_at
        FROM referral_codes
        WHERE code = $1
    `
	row := r.db.QueryRow(ctx, query, code)
	var rc domain.ReferralCode
	err := row.Scan(&rc.ID, &rc.Code, &rc.AdminID, &rc.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find referral code", zap.Error(err))
		return nil, err
	}
	return &rc, nil
}
