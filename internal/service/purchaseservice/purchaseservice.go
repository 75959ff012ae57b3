package purchaseservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/taskrules"
)

// CashbackRate is the flat share of a qualifying purchase credited back to
// the seller. Policy constant, not configuration.
const CashbackRate = 0.03

type SettingsRepo interface {
	GetDefault(ctx context.Context) (domain.TaskSettings, error)
	GetByAdminID(ctx context.Context, adminID int) (domain.TaskSettings, error)
	Upsert(ctx context.Context, adminID *int, settings domain.TaskSettings) error
}

type ProductRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	DecrementQuantity(ctx context.Context, id string, amount int) (bool, error)
	IncrementQuantity(ctx context.Context, id string, amount int) error
}

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindUserOrdersOnDay(ctx context.Context, userID int, t time.Time) ([]domain.Order, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Ledger interface {
	GetSale(ctx context.Context, userID int) (*domain.Sale, error)
	AvailableFunds(sale *domain.Sale) float64
	CreditCashback(ctx context.Context, userID int, cashback float64) (*domain.Sale, error)
	IncrementRating(ctx context.Context, userID int) error
}

type Tasks interface {
	GetProgress(ctx context.Context, userID int) (*domain.TaskProgress, error)
	CompleteTask(ctx context.Context, userID int, key string) (alreadyDone bool, err error)
}

var (
	ErrTaskLocked        = errors.New("task is not available yet")
	ErrUnknownTask       = errors.New("unknown task key")
	ErrQuantityMismatch  = errors.New("purchased quantity must equal the required amount")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutOfStock        = errors.New("not enough product in stock")
)

type Service struct {
	settingsRepo SettingsRepo
	productRepo  ProductRepo
	orderRepo    OrderRepo
	userRepo     UserRepo
	ledger       Ledger
	tasks        Tasks
	now          func() time.Time
}

func New(settingsRepo SettingsRepo, productRepo ProductRepo, orderRepo OrderRepo, userRepo UserRepo, ledger Ledger, tasks Tasks) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		ledger:       ledger,
		tasks:        tasks,
		now:          time.Now,
	}
}

// Orders returns the user's purchase history, newest first.
func (s *Service) Orders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Result describes a finished completion attempt.
type Result struct {
	TaskKey     string
	AlreadyDone bool
	Purchased   bool
	Order       *domain.Order
	Cashback    float64
	Sale        *domain.Sale
}

// Complete runs the purchase/completion transaction for one task. All
// validation happens before any write; writes are sequenced so the balance
// credit, the least reversible step, lands last. A failure after a committed
// step surfaces as *domain.PartialError naming what committed.
func (s *Service) Complete(ctx context.Context, userID int, taskKey string, quantity int) (*Result, error) {
	tp, err := s.tasks.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	done, known := tp.Progress.Get(taskKey)
	if !known {
		return nil, ErrUnknownTask
	}
	if done {
		// idempotent: no repeat cashback, no repeat rating bump
		return &Result{TaskKey: taskKey, AlreadyDone: true}, nil
	}
	if !taskrules.IsAvailable(taskKey, tp.Progress) {
		return nil, ErrTaskLocked
	}

	setting, err := s.Requirement(ctx, userID, taskKey)
	if err != nil {
		return nil, err
	}

	result := &Result{TaskKey: taskKey}

	needsPurchase := setting != nil && setting.ProductID != ""
	if needsPurchase {
		met, err := s.RequirementMet(ctx, userID, taskKey)
		if err != nil {
			return nil, err
		}
		if !met {
			if err := s.purchase(ctx, userID, setting, quantity, result); err != nil {
				return nil, err
			}
		}
	}

	return result, s.finish(ctx, userID, result)
}

// purchase executes §steps of the buying leg: funds check, inventory
// decrement with floor, order record, cashback credit.
func (s *Service) purchase(ctx context.Context, userID int, setting *domain.TaskSetting, quantity int, result *Result) error {
	required, fixed := requiredAmount(setting)
	if fixed && quantity != required {
		return ErrQuantityMismatch
	}
	if !fixed && quantity <= 0 {
		return ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, setting.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	totalCost := product.UnitPrice() * float64(quantity)

	sale, err := s.ledger.GetSale(ctx, userID)
	if err != nil {
		return err
	}
	if s.ledger.AvailableFunds(sale) < totalCost {
		return ErrInsufficientFunds
	}

	ok, err := s.productRepo.DecrementQuantity(ctx, product.ID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOutOfStock
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: product.ID,
		Amount:    quantity,
		OrderedAt: s.now(),
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		// try to hand the stock back before reporting
		if rbErr := s.productRepo.IncrementQuantity(ctx, product.ID, quantity); rbErr != nil {
			zap.L().Error("rollback of inventory decrement failed",
				zap.String("productID", product.ID), zap.Error(rbErr))
			return &domain.PartialError{
				Completed: []string{"inventory decremented"},
				Cause:     err,
			}
		}
		return err
	}

	cashback := totalCost * CashbackRate
	updatedSale, err := s.ledger.CreditCashback(ctx, userID, cashback)
	if err != nil {
		return &domain.PartialError{
			Completed: []string{"inventory decremented", "order recorded"},
			Cause:     err,
		}
	}

	result.Purchased = true
	result.Order = order
	result.Cashback = cashback
	result.Sale = updatedSale

	zap.L().Info("purchase completed",
		zap.Int("userID", userID),
		zap.String("productID", product.ID),
		zap.Int("quantity", quantity),
		zap.Float64("cashback", cashback),
	)
	return nil
}

// finish marks the task complete and bumps the rating exactly once.
func (s *Service) finish(ctx context.Context, userID int, result *Result) error {
	alreadyDone, err := s.tasks.CompleteTask(ctx, userID, result.TaskKey)
	if err != nil {
		if result.Purchased {
			return &domain.PartialError{
				Completed: []string{"inventory decremented", "order recorded", "cashback credited"},
				Cause:     err,
			}
		}
		return err
	}
	if !alreadyDone {
		if err := s.ledger.IncrementRating(ctx, userID); err != nil {
			completed := []string{"task marked complete"}
			if result.Purchased {
				completed = append([]string{"inventory decremented", "order recorded", "cashback credited"}, completed...)
			}
			return &domain.PartialError{Completed: completed, Cause: err}
		}
	}
	return nil
}
