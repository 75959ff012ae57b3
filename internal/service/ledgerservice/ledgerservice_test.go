package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/pkg/lock"
)

func NewMock(t *testing.T) (*Service, *MockSaleRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockSaleRepo(ctrl)
	service := New(repo, lock.NewUserLock())
	defer ctrl.Finish()
	return service, repo
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func TestGetSale(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedSale  *domain.Sale
		expectedError error
	}{
		{
			name:   "Existing sale with fresh bonus",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().GetSaleByUserID(gomock.Any(), 1).Return(&domain.Sale{
					UserID:         1,
					Balance:        100,
					TodayBonus:     5,
					TodayBonusDate: testNow,
				}, nil)
			},
			expectedSale: &domain.Sale{
				UserID:         1,
				Balance:        100,
				TodayBonus:     5,
				TodayBonusDate: testNow,
			},
		},
		{
			name:   "Stale today bonus is expired in place",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().GetSaleByUserID(gomock.Any(), 1).Return(&domain.Sale{
					UserID:         1,
					Balance:        100,
					TotalEarning:   40,
					TodayBonus:     5,
					TodayBonusDate: testNow.AddDate(0, 0, -1),
				}, nil)
				repo.EXPECT().ExpireTodayBonus(gomock.Any(), 1, testNow).Return(nil)
			},
			expectedSale: &domain.Sale{
				UserID:         1,
				Balance:        100,
				TotalEarning:   40,
				TodayBonus:     0,
				TodayBonusDate: testNow,
			},
		},
		{
			name:   "First access creates the ledger",
			userID: 2,
			prepareMock: func() {
				repo.EXPECT().GetSaleByUserID(gomock.Any(), 2).Return(nil, nil)
				repo.EXPECT().CreateSale(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
						return sale, nil
					})
			},
			expectedSale: &domain.Sale{
				UserID:         2,
				TrialBonus:     TrialBonusSeed,
				TrialBonusDate: testNow,
				TodayBonusDate: testNow,
			},
		},
		{
			name:   "Repository failure",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().GetSaleByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:   "Expiry failure",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().GetSaleByUserID(gomock.Any(), 1).Return(&domain.Sale{
					UserID:         1,
					TodayBonus:     5,
					TodayBonusDate: testNow.AddDate(0, 0, -1),
				}, nil)
				repo.EXPECT().ExpireTodayBonus(gomock.Any(), 1, testNow).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			sale, err := service.GetSale(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSale, sale)
			}
		})
	}
}

func TestAvailableFunds(t *testing.T) {
	service, _ := NewMock(t)
	service.now = func() time.Time { return testNow }

	tests := []struct {
		name string
		sale *domain.Sale
		want float64
	}{
		{
			name: "Trial bonus counts on its day",
			sale: &domain.Sale{Balance: 100, TrialBonus: 300, TrialBonusDate: testNow},
			want: 400,
		},
		{
			name: "Trial bonus gone the next day",
			sale: &domain.Sale{Balance: 100, TrialBonus: 300, TrialBonusDate: testNow.AddDate(0, 0, -1)},
			want: 100,
		},
		{
			name: "No trial bonus",
			sale: &domain.Sale{Balance: 42, TrialBonusDate: testNow},
			want: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.AvailableFunds(tt.sale))
		})
	}
}

func TestCreditCashback(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful credit",
			prepareMock: func() {
				repo.EXPECT().GetSaleByUserID(gomock.Any(), 1).Return(&domain.Sale{
					UserID:         1,
					TodayBonusDate: testNow,
				}, nil)
				repo.EXPECT().CreditCashback(gomock.Any(), 1, 6.0, testNow).Return(&domain.Sale{
					UserID:     1,
					Balance:    6,
					TodayBonus: 6,
				}, nil)
			},
		},
		{
			name: "Credit failure",
			prepareMock: func() {
				repo.EXPECT().GetSaleByUserID(gomock.Any(), 1).Return(&domain.Sale{
					UserID:         1,
					TodayBonusDate: testNow,
				}, nil)
				repo.EXPECT().CreditCashback(gomock.Any(), 1, 6.0, testNow).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			sale, err := service.CreditCashback(context.Background(), 1, 6.0)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, sale)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 6.0, sale.Balance)
			}
		})
	}
}

func TestDebitWithdrawal(t *testing.T) {
	service, repo := NewMock(t)
	service.now = func() time.Time { return testNow }

	t.Run("Debit passes through", func(t *testing.T) {
		repo.EXPECT().DebitBalance(gomock.Any(), 1, 50.0).Return(&domain.Sale{UserID: 1, Balance: 50}, nil)

		sale, err := service.DebitWithdrawal(context.Background(), 1, 50)
		assert.NoError(t, err)
		assert.Equal(t, 50.0, sale.Balance)
	})

	t.Run("Negative amount is clamped to zero", func(t *testing.T) {
		repo.EXPECT().DebitBalance(gomock.Any(), 1, 0.0).Return(&domain.Sale{UserID: 1, Balance: 100}, nil)

		sale, err := service.DebitWithdrawal(context.Background(), 1, -10)
		assert.NoError(t, err)
		assert.Equal(t, 100.0, sale.Balance)
	})

	t.Run("Debit failure", func(t *testing.T) {
		repo.EXPECT().DebitBalance(gomock.Any(), 1, 50.0).Return(nil, errors.New("db error"))

		_, err := service.DebitWithdrawal(context.Background(), 1, 50)
		assert.Error(t, err)
	})
}

func TestIncrementRating(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().IncrementRating(gomock.Any(), 1).Return(nil)
	assert.NoError(t, service.IncrementRating(context.Background(), 1))

	repo.EXPECT().IncrementRating(gomock.Any(), 1).Return(errors.New("db error"))
	assert.Error(t, service.IncrementRating(context.Background(), 1))
}
