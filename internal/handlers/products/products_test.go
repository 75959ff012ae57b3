package products

import (
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
	"github.com/taskmart/taskmart/internal/service/productservice"
)

func NewMock(t *testing.T) (*ProductHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Products are returned", func(t *testing.T) {
		service.EXPECT().List(gomock.Any()).Return([]domain.Product{
			{ID: "p-1", Name: "Earbuds", Price: 100, DiscountRate: 10},
			{ID: "p-2", Name: "Charger", Price: 20},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/products", nil)
		w := httptest.NewRecorder()
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.ProductResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
		assert.InDelta(t, 90.0, body[0].UnitPrice, 1e-9)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/products", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Product detail", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "p-1").
			Return(&domain.Product{ID: "p-1", Name: "Earbuds", Price: 100, Quantity: 25}, nil)

		r := withID(httptest.NewRequest(http.MethodGet, "/products/p-1", nil), "p-1")
		w := httptest.NewRecorder()
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.ProductResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "Earbuds", body.Name)
		assert.Equal(t, 25, body.Quantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "missing").Return(nil, productservice.ErrProductNotFound)

		r := withID(httptest.NewRequest(http.MethodGet, "/products/missing", nil), "missing")
		w := httptest.NewRecorder()
		handler.Get(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
