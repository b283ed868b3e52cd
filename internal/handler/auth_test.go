package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/handler"
	"github.com/SergeyBogomolovv/supermall/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Register(t *testing.T) {
	user := entities.User{ID: customerID, Name: "Ada", Email: "ada@example.com", Role: entities.RoleCustomer, PasswordHash: "$2a$hash"}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "defaults to customer",
			body: `{"name":"Ada","email":"ada@example.com","password":"correct horse"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, "Ada", "ada@example.com", "correct horse", entities.RoleCustomer).Return(user, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"role":"customer"`,
		},
		{
			name: "merchant",
			body: `{"name":"Ada","email":"ada@example.com","password":"correct horse","role":"merchant"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				u := user
				u.Role = entities.RoleMerchant
				svc.EXPECT().Register(mock.Anything, "Ada", "ada@example.com", "correct horse", entities.RoleMerchant).Return(u, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"role":"merchant"`,
		},
		{
			name:         "admin is not self-assignable",
			body:         `{"name":"Ada","email":"ada@example.com","password":"correct horse","role":"admin"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"role":"oneof"`,
		},
		{
			name:         "short password",
			body:         `{"name":"Ada","email":"ada@example.com","password":"short"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"password":"min"`,
		},
		{
			name: "email taken",
			body: `{"name":"Ada","email":"ada@example.com","password":"correct horse"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, "Ada", "ada@example.com", "correct horse", entities.RoleCustomer).
					Return(entities.User{}, entities.ErrDuplicateKey).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"resource already exists"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			h := handler.NewAuthHandler(testLogger(), svc, passthrough)
			rr := serve(h, http.MethodPost, "/auth/register", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			assert.NotContains(t, rr.Body.String(), "hash")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	pair := entities.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: time.Date(2026, 1, 1, 0, 15, 0, 0, time.UTC)}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"email":"ada@example.com","password":"correct horse"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "ada@example.com", "correct horse").Return(pair, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"accessToken":"access"`,
		},
		{
			name: "wrong password",
			body: `{"email":"ada@example.com","password":"nope"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "ada@example.com", "nope").Return(entities.TokenPair{}, entities.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"unauthorized"`,
		},
		{
			name: "locked",
			body: `{"email":"ada@example.com","password":"correct horse"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "ada@example.com", "correct horse").Return(entities.TokenPair{}, entities.ErrAccountLocked).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"account is temporarily locked"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			h := handler.NewAuthHandler(testLogger(), svc, passthrough)
			rr := serve(h, http.MethodPost, "/auth/login", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Refresh(mock.Anything, "stale").Return(entities.TokenPair{}, entities.ErrUnauthorized).Once()
	svc.EXPECT().Refresh(mock.Anything, "fresh").Return(entities.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil).Once()

	h := handler.NewAuthHandler(testLogger(), svc, passthrough)

	rr := serve(h, http.MethodPost, "/auth/refresh", `{"refreshToken":"stale"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(h, http.MethodPost, "/auth/refresh", `{"refreshToken":"fresh"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"refreshToken":"r2"`)
}

func TestAuthHandler_LimiterGuardsRoutes(t *testing.T) {
	blocked := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}

	h := handler.NewAuthHandler(testLogger(), mocks.NewMockAuthService(t), blocked)
	rr := serve(h, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"x"}`)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
