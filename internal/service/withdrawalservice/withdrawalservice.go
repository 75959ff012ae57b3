package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
)

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	FindPendingByUserID(ctx context.Context, userID int) (*domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, id int, status domain.WithdrawalStatus) (bool, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.Withdrawal, error)
}

type Ledger interface {
	GetSale(ctx context.Context, userID int) (*domain.Sale, error)
	DebitWithdrawal(ctx context.Context, userID int, amount float64) (*domain.Sale, error)
}

var (
	ErrInvalidAmount       = errors.New("withdrawal amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPendingExists       = errors.New("a pending withdrawal already exists")
	ErrNotFound            = errors.New("withdrawal not found")
	ErrNotPending          = errors.New("withdrawal is not pending")
)

type Service struct {
	withdrawalRepo WithdrawalRepo
	ledger         Ledger
	now            func() time.Time
}

func New(withdrawalRepo WithdrawalRepo, ledger Ledger) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		now:            time.Now,
	}
}

// Request opens a Pending withdrawal. Rejected outright for a non-positive
// amount, an amount above the current balance, or while another request is
// still pending. Validation failures mutate nothing.
func (s *Service) Request(ctx context.Context, userID int, amount float64) (*domain.Withdrawal, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	pending, err := s.withdrawalRepo.FindPendingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, ErrPendingExists
	}

	sale, err := s.ledger.GetSale(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	withdrawal := &domain.Withdrawal{
		UserID:      userID,
		Amount:      amount,
		Status:      domain.WithdrawalPending,
		RequestedAt: s.now(),
	}
	created, err := s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		zap.L().Error("failed to create withdrawal", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Approve moves Pending → Approved and debits the ledger, clamped at zero.
// When the debit fails after the status already flipped, the caller gets a
// PartialError rather than a silent inconsistency.
func (s *Service) Approve(ctx context.Context, id int) (*domain.Sale, error) {
	withdrawal, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrNotFound
	}
	if withdrawal.Status != domain.WithdrawalPending {
		return nil, ErrNotPending
	}

	flipped, err := s.withdrawalRepo.UpdateStatus(ctx, id, domain.WithdrawalApproved)
	if err != nil {
		return nil, err
	}
	if !flipped {
		// raced with another reviewer
		return nil, ErrNotPending
	}

	sale, err := s.ledger.DebitWithdrawal(ctx, withdrawal.UserID, withdrawal.Amount)
	if err != nil {
		zap.L().Error("withdrawal approved but debit failed",
			zap.Int("withdrawalID", id), zap.Int("userID", withdrawal.UserID), zap.Error(err))
		return nil, &domain.PartialError{
			Completed: []string{"status set to approved"},
			Cause:     err,
		}
	}

	zap.L().Info("withdrawal approved",
		zap.Int("withdrawalID", id), zap.Float64("amount", withdrawal.Amount))
	return sale, nil
}

// Reject moves Pending → Rejected. The balance is untouched.
func (s *Service) Reject(ctx context.Context, id int) error {
	withdrawal, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return ErrNotFound
	}
	if withdrawal.Status != domain.WithdrawalPending {
		return ErrNotPending
	}

	flipped, err := s.withdrawalRepo.UpdateStatus(ctx, id, domain.WithdrawalRejected)
	if err != nil {
		return err
	}
	if !flipped {
		return ErrNotPending
	}
	return nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) ListByStatus(ctx context.Context, status domain.WithdrawalStatus) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
