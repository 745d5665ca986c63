package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/quizcash/quizcash/internal/domain"
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
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectToken  bool
	}{
		{
			name: "Successful registration",
			body: `{"login":"champion42","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "champion42", "s3cret", "").
					Return(&domain.User{ID: 1, Login: "champion42"}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  true,
		},
		{
			name: "Registration with referral code",
			body: `{"login":"champion42","password":"s3cret","referral_code":"friend1"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "champion42", "s3cret", "friend1").
					Return(&domain.User{ID: 2, Login: "champion42"}, nil)
				service.EXPECT().GenerateToken(2).Return("token", nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  true,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User already exists",
			body: `{"login":"champion42","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "champion42", "s3cret", "").
					Return(nil, errors.New("username already taken"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Error generating token",
			body: `{"login":"champion42","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "champion42", "s3cret", "").
					Return(&domain.User{ID: 1, Login: "champion42"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectToken {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectToken  bool
	}{
		{
			name: "Successful login",
			body: `{"login":"champion42","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "champion42", "s3cret").
					Return(&domain.User{ID: 1, Login: "champion42"}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  true,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"champion42","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "champion42", "wrong").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Error generating token",
			body: `{"login":"champion42","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "champion42", "s3cret").
					Return(&domain.User{ID: 1, Login: "champion42"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectToken {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
			}
		})
	}
}
