package purchaseservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskmart/taskmart/internal/domain"
)

func TestRequirement(t *testing.T) {
	service, m := NewMock(t)
	service.now = func() time.Time { return testNow }

	adminID := 42
	sellerOf := func(admin *int) *domain.User {
		return &domain.User{ID: 1, AdminID: admin}
	}

	tests := []struct {
		name            string
		prepareMock     func()
		expectedSetting *domain.TaskSetting
		expectedError   error
	}{
		{
			name: "Override wins for the admin's seller",
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(sellerOf(&adminID), nil)
				m.settings.EXPECT().GetByAdminID(gomock.Any(), adminID).
					Return(domain.TaskSettings{"task1": {ProductID: "override", Amount: "5"}}, nil)
			},
			expectedSetting: &domain.TaskSetting{ProductID: "override", Amount: "5"},
		},
		{
			name: "Override restricted to another user falls back to defaults",
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(sellerOf(&adminID), nil)
				m.settings.EXPECT().GetByAdminID(gomock.Any(), adminID).
					Return(domain.TaskSettings{"task1": {ProductID: "override", UserIDs: []int{99}}}, nil)
				m.settings.EXPECT().GetDefault(gomock.Any()).
					Return(domain.TaskSettings{"task1": {ProductID: "default", Amount: "2"}}, nil)
			},
			expectedSetting: &domain.TaskSetting{ProductID: "default", Amount: "2"},
		},
		{
			name: "Override naming the user applies",
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(sellerOf(&adminID), nil)
				m.settings.EXPECT().GetByAdminID(gomock.Any(), adminID).
					Return(domain.TaskSettings{"task1": {ProductID: "override", UserIDs: []int{7, 1}}}, nil)
			},
			expectedSetting: &domain.TaskSetting{ProductID: "override", UserIDs: []int{7, 1}},
		},
		{
			name: "Seller without an admin reads the defaults",
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(sellerOf(nil), nil)
				m.settings.EXPECT().GetDefault(gomock.Any()).
					Return(domain.TaskSettings{"task1": {ProductID: "default"}}, nil)
			},
			expectedSetting: &domain.TaskSetting{ProductID: "default"},
		},
		{
			name: "No requirement anywhere",
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(sellerOf(&adminID), nil)
				m.settings.EXPECT().GetByAdminID(gomock.Any(), adminID).Return(domain.TaskSettings{}, nil)
				m.settings.EXPECT().GetDefault(gomock.Any()).Return(domain.TaskSettings{}, nil)
			},
		},
		{
			name: "Override lookup failure",
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(sellerOf(&adminID), nil)
				m.settings.EXPECT().GetByAdminID(gomock.Any(), adminID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			setting, err := service.Requirement(context.Background(), 1, "task1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSetting, setting)
			}
		})
	}
}

func TestRequirementMet(t *testing.T) {
	service, m := NewMock(t)
	service.now = func() time.Time { return testNow }

	noAdmin := &domain.User{ID: 1}
	defaults := func(setting domain.TaskSetting) {
		m.users.EXPECT().FindByID(gomock.Any(), 1).Return(noAdmin, nil)
		m.settings.EXPECT().GetDefault(gomock.Any()).Return(domain.TaskSettings{"task1": setting}, nil)
	}

	tests := []struct {
		name        string
		prepareMock func()
		want        bool
	}{
		{
			name: "No requirement is trivially met",
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(noAdmin, nil)
				m.settings.EXPECT().GetDefault(gomock.Any()).Return(domain.TaskSettings{}, nil)
			},
			want: true,
		},
		{
			name: "Fixed amount met by a big enough order today",
			prepareMock: func() {
				defaults(domain.TaskSetting{ProductID: "p-1", Amount: "2"})
				m.orders.EXPECT().FindUserOrdersOnDay(gomock.Any(), 1, testNow).Return([]domain.Order{
					{ProductID: "p-other", Amount: 10},
					{ProductID: "p-1", Amount: 3},
				}, nil)
			},
			want: true,
		},
		{
			name: "Fixed amount not reached",
			prepareMock: func() {
				defaults(domain.TaskSetting{ProductID: "p-1", Amount: "5"})
				m.orders.EXPECT().FindUserOrdersOnDay(gomock.Any(), 1, testNow).Return([]domain.Order{
					{ProductID: "p-1", Amount: 3},
				}, nil)
			},
			want: false,
		},
		{
			name: "Unfixed amount met by any positive order",
			prepareMock: func() {
				defaults(domain.TaskSetting{ProductID: "p-1"})
				m.orders.EXPECT().FindUserOrdersOnDay(gomock.Any(), 1, testNow).Return([]domain.Order{
					{ProductID: "p-1", Amount: 1},
				}, nil)
			},
			want: true,
		},
		{
			name: "Unparseable amount behaves as unfixed",
			prepareMock: func() {
				defaults(domain.TaskSetting{ProductID: "p-1", Amount: "lots"})
				m.orders.EXPECT().FindUserOrdersOnDay(gomock.Any(), 1, testNow).Return([]domain.Order{
					{ProductID: "p-1", Amount: 1},
				}, nil)
			},
			want: true,
		},
		{
			name: "No orders for the product today",
			prepareMock: func() {
				defaults(domain.TaskSetting{ProductID: "p-1", Amount: "2"})
				m.orders.EXPECT().FindUserOrdersOnDay(gomock.Any(), 1, testNow).Return(nil, nil)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			met, err := service.RequirementMet(context.Background(), 1, "task1")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, met)
		})
	}
}

func TestUpsertSettings(t *testing.T) {
	service, m := NewMock(t)

	adminID := 42
	settings := domain.TaskSettings{"task1": {ProductID: "p-1", Amount: "2"}}

	m.settings.EXPECT().Upsert(gomock.Any(), &adminID, settings).Return(nil)
	assert.NoError(t, service.UpsertSettings(context.Background(), &adminID, settings))

	m.settings.EXPECT().Upsert(gomock.Any(), nil, settings).Return(errors.New("db error"))
	assert.Error(t, service.UpsertSettings(context.Background(), nil, settings))
}
