package taskservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/taskrules"
)

type ProgressRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.TaskProgress, error)
	Create(ctx context.Context, userID int, progress domain.Progress, now time.Time) (*domain.TaskProgress, error)
	UpdateProgress(ctx context.Context, userID int, progress domain.Progress, now time.Time) error
	SetAllowSystemReset(ctx context.Context, userID int, allow bool) error
}

var ErrUnknownTask = errors.New("unknown task key")

type Service struct {
	progressRepo ProgressRepo
	now          func() time.Time
}

func New(progressRepo ProgressRepo) *Service {
	return &Service{
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

// DefaultChecklist is the checklist seeded for a new seller: sequential
// tasks interleaved with paywall checkpoints. A paywall's suffix is the
// number of the last task before it, so suffix gating and position agree.
func DefaultChecklist() domain.Progress {
	return domain.ProgressFromPairs(
		domain.ProgressPair{Key: "task1"},
		domain.ProgressPair{Key: "task2"},
		domain.ProgressPair{Key: "task3"},
		domain.ProgressPair{Key: "paywall3"},
		domain.ProgressPair{Key: "task4"},
		domain.ProgressPair{Key: "task5"},
		domain.ProgressPair{Key: "task6"},
		domain.ProgressPair{Key: "paywall6"},
		domain.ProgressPair{Key: "task7"},
		domain.ProgressPair{Key: "task8"},
	)
}

// GetProgress loads the user's checklist, creating the default one on first
// access.
func (s *Service) GetProgress(ctx context.Context, userID int) (*domain.TaskProgress, error) {
	tp, err := s.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get progress", zap.Error(err))
		return nil, err
	}
	if tp == nil {
		tp, err = s.progressRepo.Create(ctx, userID, DefaultChecklist(), s.now())
		if err != nil {
			zap.L().Error("failed to create progress", zap.Error(err))
			return nil, err
		}
	}
	return tp, nil
}

// CompleteTask marks key complete. alreadyDone reports whether the key was
// complete before the call; repeat completions write nothing. Normal flow
// only ever flips keys false→true; clearing is the reset operation's job.
func (s *Service) CompleteTask(ctx context.Context, userID int, key string) (alreadyDone bool, err error) {
	tp, err := s.GetProgress(ctx, userID)
	if err != nil {
		return false, err
	}
	done, ok := tp.Progress.Get(key)
	if !ok {
		return false, ErrUnknownTask
	}
	if done {
		return true, nil
	}

	tp.Progress.Set(key, true)
	if err := s.progressRepo.UpdateProgress(ctx, userID, tp.Progress, s.now()); err != nil {
		zap.L().Error("failed to persist task completion", zap.Error(err))
		return false, err
	}
	zap.L().Info("task completed", zap.Int("userID", userID), zap.String("task", key))
	return false, nil
}

// ResetProgress explicitly clears every flag back to false.
func (s *Service) ResetProgress(ctx context.Context, userID int) error {
	tp, err := s.GetProgress(ctx, userID)
	if err != nil {
		return err
	}
	tp.Progress.Reset()
	if err := s.progressRepo.UpdateProgress(ctx, userID, tp.Progress, s.now()); err != nil {
		zap.L().Error("failed to reset progress", zap.Error(err))
		return err
	}
	return nil
}

// SetAutoReset toggles whether the nightly sweep may clear this user.
func (s *Service) SetAutoReset(ctx context.Context, userID int, allow bool) error {
	if _, err := s.GetProgress(ctx, userID); err != nil {
		return err
	}
	if err := s.progressRepo.SetAllowSystemReset(ctx, userID, allow); err != nil {
		zap.L().Error("failed to toggle auto reset", zap.Error(err))
		return err
	}
	return nil
}

// TaskState is one checklist entry with its computed availability.
type TaskState struct {
	Key       string
	Done      bool
	Available bool
	Paywall   bool
}

// Overview returns the checklist with availability resolved per key, plus
// the completion percentage.
func (s *Service) Overview(ctx context.Context, userID int) ([]TaskState, int, *domain.TaskProgress, error) {
	tp, err := s.GetProgress(ctx, userID)
	if err != nil {
		return nil, 0, nil, err
	}

	states := make([]TaskState, 0, tp.Progress.Len())
	for _, key := range tp.Progress.Keys() {
		states = append(states, TaskState{
			Key:       key,
			Done:      tp.Progress.Done(key),
			Available: taskrules.IsAvailable(key, tp.Progress),
			Paywall:   taskrules.IsPaywall(key),
		})
	}
	return states, taskrules.Percentage(tp.Progress), tp, nil
}
