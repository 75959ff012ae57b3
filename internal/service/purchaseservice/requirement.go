package purchaseservice

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
)

// Requirement resolves the purchase requirement for a task key: an
// admin-scoped override wins when the seller belongs to that admin and the
// override's user restriction (absent, or naming the seller) passes;
// otherwise the global default table applies. nil means the task demands no
// purchase.
func (s *Service) Requirement(ctx context.Context, userID int, taskKey string) (*domain.TaskSetting, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user != nil && user.AdminID != nil {
		overrides, err := s.settingsRepo.GetByAdminID(ctx, *user.AdminID)
		if err != nil {
			return nil, err
		}
		if setting, ok := overrides[taskKey]; ok && userAllowed(setting, userID) {
			return &setting, nil
		}
	}

	defaults, err := s.settingsRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	if setting, ok := defaults[taskKey]; ok {
		return &setting, nil
	}
	return nil, nil
}

func userAllowed(setting domain.TaskSetting, userID int) bool {
	if len(setting.UserIDs) == 0 {
		return true
	}
	for _, id := range setting.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// requiredAmount parses the requirement's quantity. fixed is false for a
// blank amount, meaning any positive purchase qualifies.
func requiredAmount(setting *domain.TaskSetting) (amount int, fixed bool) {
	raw := strings.TrimSpace(setting.Amount)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		zap.L().Warn("unparseable required amount, treating as unfixed",
			zap.String("amount", setting.Amount))
		return 0, false
	}
	return n, true
}

// RequirementMet reports whether the user's orders placed today already
// satisfy the task's requirement. Only same-calendar-day orders count.
func (s *Service) RequirementMet(ctx context.Context, userID int, taskKey string) (bool, error) {
	setting, err := s.Requirement(ctx, userID, taskKey)
	if err != nil {
		return false, err
	}
	if setting == nil || setting.ProductID == "" {
		return true, nil
	}

	orders, err := s.orderRepo.FindUserOrdersOnDay(ctx, userID, s.now())
	if err != nil {
		return false, err
	}
	return satisfiedBy(setting, orders), nil
}

func satisfiedBy(setting *domain.TaskSetting, orders []domain.Order) bool {
	required, fixed := requiredAmount(setting)
	for _, order := range orders {
		if order.ProductID != setting.ProductID {
			continue
		}
		if !fixed && order.Amount > 0 {
			return true
		}
		if fixed && order.Amount >= required {
			return true
		}
	}
	return false
}

// UpsertSettings replaces the requirement table for one scope. adminID nil
// targets the global defaults.
func (s *Service) UpsertSettings(ctx context.Context, adminID *int, settings domain.TaskSettings) error {
	if err := s.settingsRepo.Upsert(ctx, adminID, settings); err != nil {
		zap.L().Error("failed to upsert task settings", zap.Error(err))
		return err
	}
	return nil
}
