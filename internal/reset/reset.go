package reset

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
)

type ProgressRepo interface {
	ListResettable(ctx context.Context) ([]domain.TaskProgress, error)
	UpdateProgress(ctx context.Context, userID int, progress domain.Progress, now time.Time) error
}

type SaleRepo interface {
	ExpireStaleBonuses(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper runs the nightly maintenance job: clearing checklists of users who
// allow the system reset and zeroing day-scoped bonuses that went stale.
type Sweeper struct {
	progressRepo ProgressRepo
	saleRepo     SaleRepo
	resetTime    string
	scheduler    gocron.Scheduler

	now func() time.Time
}

func New(progressRepo ProgressRepo, saleRepo SaleRepo, resetTime string) *Sweeper {
	return &Sweeper{
		progressRepo: progressRepo,
		saleRepo:     saleRepo,
		resetTime:    resetTime,
		now:          time.Now,
	}
}

// Start schedules the daily sweep at the configured wall-clock time.
func (s *Sweeper) Start(ctx context.Context) error {
	hour, minute, err := parseResetTime(s.resetTime)
	if err != nil {
		return err
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("can't build scheduler: %w", err)
	}
	s.scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			s.Sweep(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("can't schedule reset job: %w", err)
	}

	scheduler.Start()
	zap.L().Info("Reset sweeper started", zap.String("resetTime", s.resetTime))

	go func() {
		<-ctx.Done()
		if err := scheduler.Shutdown(); err != nil {
			zap.L().Error("failed to shut down scheduler", zap.Error(err))
		}
	}()
	return nil
}

// Sweep performs one pass. Users who cleared allow_system_reset are never
// listed, so their checklists survive the night.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.now()

	expired, err := s.saleRepo.ExpireStaleBonuses(ctx, now)
	if err != nil {
		zap.L().Error("failed to expire stale bonuses", zap.Error(err))
	} else if expired > 0 {
		zap.L().Info("Expired stale daily bonuses", zap.Int64("count", expired))
	}

	progresses, err := s.progressRepo.ListResettable(ctx)
	if err != nil {
		zap.L().Error("failed to list resettable progress", zap.Error(err))
		return
	}

	var resets int
	for _, tp := range progresses {
		if tp.Progress.CountDone() == 0 {
			continue
		}
		tp.Progress.Reset()
		if err := s.progressRepo.UpdateProgress(ctx, tp.UserID, tp.Progress, now); err != nil {
			zap.L().Error("failed to reset progress",
				zap.Int("userID", tp.UserID),
				zap.Error(err),
			)
			continue
		}
		resets++
	}
	if resets > 0 {
		zap.L().Info("Nightly progress reset complete", zap.Int("users", resets))
	}
}

func parseResetTime(raw string) (uint, uint, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid reset time %q, want HH:MM", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid reset hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid reset minute %q", parts[1])
	}
	return uint(hour), uint(minute), nil
}
