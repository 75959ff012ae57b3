package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/dto"
	"github.com/taskmart/taskmart/internal/service/purchaseservice"
	"github.com/taskmart/taskmart/internal/service/taskservice"
	"github.com/taskmart/taskmart/pkg/auth"
)

func NewMock(t *testing.T) (*TaskHandler, *MockTaskService, *MockPurchaseService) {
	ctrl := gomock.NewController(t)
	taskService := NewMockTaskService(ctrl)
	purchaseService := NewMockPurchaseService(ctrl)
	handler := New(taskService, purchaseService)
	defer ctrl.Finish()
	return handler, taskService, purchaseService
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func withKey(r *http.Request, key string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("key", key)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetTasksHandler(t *testing.T) {
	handler, taskService, purchaseService := NewMock(t)

	t.Run("Checklist with one requirement row", func(t *testing.T) {
		states := []taskservice.TaskState{
			{Key: "task1", Done: true, Available: true},
			{Key: "task2", Available: true},
			{Key: "paywall1", Available: true, Paywall: true},
		}
		taskService.EXPECT().Overview(gomock.Any(), 1).
			Return(states, 33, &domain.TaskProgress{UserID: 1, AllowSystemReset: true}, nil)
		purchaseService.EXPECT().Requirement(gomock.Any(), 1, "task1").Return(nil, nil)
		purchaseService.EXPECT().Requirement(gomock.Any(), 1, "task2").
			Return(&domain.TaskSetting{ProductID: "p-1", Amount: "2"}, nil)
		purchaseService.EXPECT().RequirementMet(gomock.Any(), 1, "task2").Return(false, nil)
		// paywall rows never resolve a requirement

		r := authed(httptest.NewRequest(http.MethodGet, "/tasks", nil))
		w := httptest.NewRecorder()
		handler.GetTasks(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.TaskListResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 33, body.Percentage)
		assert.True(t, body.AutoReset)
		assert.Len(t, body.Tasks, 3)
		assert.Nil(t, body.Tasks[0].Required)
		assert.NotNil(t, body.Tasks[1].Required)
		assert.Equal(t, "p-1", body.Tasks[1].Required.ProductID)
		assert.False(t, body.Tasks[1].Required.Met)
		assert.Nil(t, body.Tasks[2].Required)
	})

	t.Run("Internal server error", func(t *testing.T) {
		taskService.EXPECT().Overview(gomock.Any(), 1).Return(nil, 0, nil, errors.New("db error"))

		r := authed(httptest.NewRequest(http.MethodGet, "/tasks", nil))
		w := httptest.NewRecorder()
		handler.GetTasks(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCompleteHandler(t *testing.T) {
	handler, _, purchaseService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful purchase and completion",
			body: `{"quantity":2}`,
			prepareMock: func() {
				purchaseService.EXPECT().Complete(gomock.Any(), 1, "task1", 2).Return(&purchaseservice.Result{
					TaskKey:   "task1",
					Purchased: true,
					Cashback:  6.0,
					Order:     &domain.Order{ID: "order-1"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"quantity":two}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown task",
			body: `{"quantity":0}`,
			prepareMock: func() {
				purchaseService.EXPECT().Complete(gomock.Any(), 1, "task1", 0).
					Return(nil, purchaseservice.ErrUnknownTask)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Task locked",
			body: `{"quantity":0}`,
			prepareMock: func() {
				purchaseService.EXPECT().Complete(gomock.Any(), 1, "task1", 0).
					Return(nil, purchaseservice.ErrTaskLocked)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient funds",
			body: `{"quantity":2}`,
			prepareMock: func() {
				purchaseService.EXPECT().Complete(gomock.Any(), 1, "task1", 2).
					Return(nil, purchaseservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Quantity mismatch",
			body: `{"quantity":3}`,
			prepareMock: func() {
				purchaseService.EXPECT().Complete(gomock.Any(), 1, "task1", 3).
					Return(nil, purchaseservice.ErrQuantityMismatch)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Partial failure reports the committed steps",
			body: `{"quantity":2}`,
			prepareMock: func() {
				purchaseService.EXPECT().Complete(gomock.Any(), 1, "task1", 2).
					Return(nil, &domain.PartialError{
						Completed: []string{"inventory decremented"},
						Cause:     errors.New("db error"),
					})
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/tasks/task1/complete", bytes.NewBufferString(tt.body))
			r = withKey(authed(r), "task1")
			w := httptest.NewRecorder()
			handler.Complete(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CompleteTaskResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Purchased)
				assert.Equal(t, "order-1", body.OrderID)
				assert.InDelta(t, 6.0, body.Cashback, 1e-9)
			}
		})
	}
}

func TestResetHandler(t *testing.T) {
	handler, taskService, _ := NewMock(t)

	taskService.EXPECT().ResetProgress(gomock.Any(), 1).Return(nil)
	r := authed(httptest.NewRequest(http.MethodPost, "/tasks/reset", nil))
	w := httptest.NewRecorder()
	handler.Reset(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	taskService.EXPECT().ResetProgress(gomock.Any(), 1).Return(errors.New("db error"))
	w = httptest.NewRecorder()
	handler.Reset(w, authed(httptest.NewRequest(http.MethodPost, "/tasks/reset", nil)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAutoResetHandler(t *testing.T) {
	handler, taskService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Opt out of the nightly sweep",
			body: `{"allow":false}`,
			prepareMock: func() {
				taskService.EXPECT().SetAutoReset(gomock.Any(), 1, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"allow":nope}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"allow":true}`,
			prepareMock: func() {
				taskService.EXPECT().SetAutoReset(gomock.Any(), 1, true).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodPost, "/tasks/auto-reset", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()
			handler.AutoReset(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, _, purchaseService := NewMock(t)

	t.Run("Orders are returned", func(t *testing.T) {
		purchaseService.EXPECT().Orders(gomock.Any(), 1).Return([]domain.Order{
			{ID: "order-2", ProductID: "p-1", Amount: 2, ShipmentStatus: "IN_TRANSIT"},
			{ID: "order-1", ProductID: "p-2", Amount: 1},
		}, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/orders", nil))
		w := httptest.NewRecorder()
		handler.GetOrders(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.OrderResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
		assert.Equal(t, "IN_TRANSIT", body[0].ShipmentStatus)
	})

	t.Run("No orders yet", func(t *testing.T) {
		purchaseService.EXPECT().Orders(gomock.Any(), 1).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.GetOrders(w, authed(httptest.NewRequest(http.MethodGet, "/orders", nil)))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
