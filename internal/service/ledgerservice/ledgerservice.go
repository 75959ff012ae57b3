package ledgerservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/pkg/lock"
)

type SaleRepo interface {
	GetSaleByUserID(ctx context.Context, userID int) (*domain.Sale, error)
	CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	ExpireTodayBonus(ctx context.Context, userID int, now time.Time) error
	CreditCashback(ctx context.Context, userID int, cashback float64, now time.Time) (*domain.Sale, error)
	DebitBalance(ctx context.Context, userID int, amount float64) (*domain.Sale, error)
	IncrementRating(ctx context.Context, userID int) error
}

// TrialBonusSeed is the one-day credit granted to every new seller.
const TrialBonusSeed = 300

var ErrSaleNotFound = errors.New("sale not found")

type Service struct {
	saleRepo SaleRepo
	locks    *lock.UserLock
	now      func() time.Time
}

func New(saleRepo SaleRepo, locks *lock.UserLock) *Service {
	return &Service{
		saleRepo: saleRepo,
		locks:    locks,
		now:      time.Now,
	}
}

// GetSale reads the user's ledger, creating it on first access and expiring
// a stale daily bonus in place. The expiry persists only the two bonus
// fields; balance, total earning and trial bonus are never touched by it.
func (s *Service) GetSale(ctx context.Context, userID int) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetSaleByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get sale", zap.Error(err))
		return nil, err
	}
	if sale == nil {
		return s.CreateSale(ctx, userID)
	}

	now := s.now()
	if sale.TodayBonus != 0 && !domain.SameDay(sale.TodayBonusDate, now) {
		if err := s.saleRepo.ExpireTodayBonus(ctx, userID, now); err != nil {
			zap.L().Error("failed to expire today bonus", zap.Error(err))
			return nil, err
		}
		sale.TodayBonus = 0
		sale.TodayBonusDate = now
	}
	return sale, nil
}

// CreateSale seeds a fresh ledger with the trial bonus dated now.
func (s *Service) CreateSale(ctx context.Context, userID int) (*domain.Sale, error) {
	now := s.now()
	sale, err := s.saleRepo.CreateSale(ctx, &domain.Sale{
		UserID:         userID,
		TrialBonus:     TrialBonusSeed,
		TrialBonusDate: now,
		TodayBonusDate: now,
	})
	if err != nil {
		zap.L().Error("failed to create sale", zap.Error(err))
		return nil, err
	}
	return sale, nil
}

// AvailableFunds is what the user can spend right now: the trial bonus
// counts only on the calendar day it is dated.
func (s *Service) AvailableFunds(sale *domain.Sale) float64 {
	if domain.SameDay(sale.TrialBonusDate, s.now()) {
		return sale.Balance + sale.TrialBonus
	}
	return sale.Balance
}

// CreditCashback adds a purchase credit to balance, today's bonus and the
// lifetime earning counter.
func (s *Service) CreditCashback(ctx context.Context, userID int, cashback float64) (*domain.Sale, error) {
	var updated *domain.Sale
	err := s.locks.WithLock(userID, func() error {
		sale, err := s.GetSale(ctx, userID)
		if err != nil {
			return err
		}
		if sale == nil {
			return ErrSaleNotFound
		}
		updated, err = s.saleRepo.CreditCashback(ctx, userID, cashback, s.now())
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit cashback", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DebitWithdrawal removes an approved withdrawal from the balance, clamped
// so the balance never goes negative.
func (s *Service) DebitWithdrawal(ctx context.Context, userID int, amount float64) (*domain.Sale, error) {
	if amount < 0 {
		amount = 0
	}
	var updated *domain.Sale
	err := s.locks.WithLock(userID, func() error {
		var err error
		updated, err = s.saleRepo.DebitBalance(ctx, userID, amount)
		return err
	})
	if err != nil {
		zap.L().Error("failed to debit withdrawal", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// IncrementRating bumps the completed-task counter. Called once per newly
// completed task, never on repeats.
func (s *Service) IncrementRating(ctx context.Context, userID int) error {
	if err := s.saleRepo.IncrementRating(ctx, userID); err != nil {
		zap.L().Error("failed to increment rating", zap.Error(err))
		return err
	}
	return nil
}
