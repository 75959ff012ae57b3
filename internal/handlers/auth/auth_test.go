package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"login":"seller","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "seller", "secret", "").
					Return(&domain.User{ID: 1, Login: "seller", Role: domain.RoleSeller}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleSeller).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name: "Registration with a referral code",
			body: `{"login":"seller","password":"secret","referral_code":"ref-code"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "seller", "secret", "ref-code").
					Return(&domain.User{ID: 2, Login: "seller", Role: domain.RoleSeller}, nil)
				service.EXPECT().GenerateToken(2, domain.RoleSeller).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Invalid request body",
			body:         `{"login":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing credentials",
			body:         `{"login":"seller"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"seller","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "seller", "secret", "").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown referral code",
			body: `{"login":"seller","password":"secret","referral_code":"bogus"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "seller", "secret", "bogus").
					Return(nil, authservice.ErrUnknownReferralCode)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: `{"login":"seller","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "seller", "secret", "").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"login":"seller","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "seller", "secret").
					Return(&domain.User{ID: 1, Login: "seller", Role: domain.RoleSeller}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleSeller).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Invalid request body",
			body:         `{"login":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"seller","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "seller", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Token generation failure",
			body: `{"login":"seller","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "seller", "secret").
					Return(&domain.User{ID: 1, Login: "seller", Role: domain.RoleSeller}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleSeller).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}
