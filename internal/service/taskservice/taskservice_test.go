package taskservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskmart/taskmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockProgressRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockProgressRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func progressWith(done ...string) domain.Progress {
	p := DefaultChecklist()
	for _, key := range done {
		p.Set(key, true)
	}
	return p
}

func TestGetProgress(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	t.Run("Existing progress is returned as is", func(t *testing.T) {
		stored := &domain.TaskProgress{UserID: 1, Progress: progressWith("task1")}
		repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(stored, nil)

		tp, err := service.GetProgress(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, stored, tp)
	})

	t.Run("First access seeds the default checklist", func(t *testing.T) {
		repo.EXPECT().GetByUserID(gomock.Any(), 2).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), 2, gomock.Any(), testNow).DoAndReturn(
			func(_ context.Context, userID int, progress domain.Progress, now time.Time) (*domain.TaskProgress, error) {
				checklist := DefaultChecklist()
				assert.Equal(t, checklist.Keys(), progress.Keys())
				return &domain.TaskProgress{UserID: userID, Progress: progress, LastEdit: now, AllowSystemReset: true}, nil
			})

		tp, err := service.GetProgress(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, 0, tp.Progress.CountDone())
		assert.True(t, tp.AllowSystemReset)
	})

	t.Run("Repository failure", func(t *testing.T) {
		repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))

		_, err := service.GetProgress(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestCompleteTask(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	tests := []struct {
		name          string
		key           string
		prepareMock   func()
		alreadyDone   bool
		expectedError error
	}{
		{
			name: "New completion is persisted",
			key:  "task1",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).
					Return(&domain.TaskProgress{UserID: 1, Progress: progressWith()}, nil)
				repo.EXPECT().UpdateProgress(gomock.Any(), 1, gomock.Any(), testNow).DoAndReturn(
					func(_ context.Context, _ int, progress domain.Progress, _ time.Time) error {
						assert.True(t, progress.Done("task1"))
						return nil
					})
			},
		},
		{
			name: "Repeat completion writes nothing",
			key:  "task1",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).
					Return(&domain.TaskProgress{UserID: 1, Progress: progressWith("task1")}, nil)
			},
			alreadyDone: true,
		},
		{
			name: "Unknown key is rejected",
			key:  "task99",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).
					Return(&domain.TaskProgress{UserID: 1, Progress: progressWith()}, nil)
			},
			expectedError: ErrUnknownTask,
		},
		{
			name: "Persist failure",
			key:  "task1",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).
					Return(&domain.TaskProgress{UserID: 1, Progress: progressWith()}, nil)
				repo.EXPECT().UpdateProgress(gomock.Any(), 1, gomock.Any(), testNow).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			alreadyDone, err := service.CompleteTask(context.Background(), 1, tt.key)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.alreadyDone, alreadyDone)
			}
		})
	}
}

func TestResetProgress(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	repo.EXPECT().GetByUserID(gomock.Any(), 1).
		Return(&domain.TaskProgress{UserID: 1, Progress: progressWith("task1", "task2", "paywall3")}, nil)
	repo.EXPECT().UpdateProgress(gomock.Any(), 1, gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ int, progress domain.Progress, _ time.Time) error {
			assert.Equal(t, 0, progress.CountDone())
			checklist := DefaultChecklist()
			assert.Equal(t, checklist.Keys(), progress.Keys())
			return nil
		})

	assert.NoError(t, service.ResetProgress(context.Background(), 1))
}

func TestSetAutoReset(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	repo.EXPECT().GetByUserID(gomock.Any(), 1).
		Return(&domain.TaskProgress{UserID: 1, Progress: progressWith()}, nil)
	repo.EXPECT().SetAllowSystemReset(gomock.Any(), 1, false).Return(nil)

	assert.NoError(t, service.SetAutoReset(context.Background(), 1, false))
}

func TestOverview(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	repo.EXPECT().GetByUserID(gomock.Any(), 1).
		Return(&domain.TaskProgress{UserID: 1, Progress: progressWith("task1", "task2")}, nil)

	states, percentage, tp, err := service.Overview(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, tp)
	assert.Len(t, states, 10)
	assert.Equal(t, 20, percentage)

	byKey := make(map[string]TaskState, len(states))
	for _, st := range states {
		byKey[st.Key] = st
	}
	assert.True(t, byKey["task1"].Done)
	assert.True(t, byKey["task3"].Available)
	assert.False(t, byKey["task4"].Available)
	assert.True(t, byKey["paywall3"].Available)
	assert.True(t, byKey["paywall3"].Paywall)
}
