package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/middleware"
	mocks "github.com/SergeyBogomolovv/supermall/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
)

func claimsEcho(t *testing.T, want entities.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := middleware.ClaimsFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, want, got)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate(t *testing.T) {
	claims := entities.Claims{UserID: "u1", Role: entities.RoleCustomer, TokenID: "jti"}

	testCases := []struct {
		name         string
		header       string
		mockBehavior func(v *mocks.MockTokenVerifier)
		wantStatus   int
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			mockBehavior: func(v *mocks.MockTokenVerifier) {
				v.EXPECT().Verify("good").Return(claims, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "lowercase scheme",
			header: "bearer good",
			mockBehavior: func(v *mocks.MockTokenVerifier) {
				v.EXPECT().Verify("good").Return(claims, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			mockBehavior: func(v *mocks.MockTokenVerifier) {
				v.EXPECT().Verify("bad").Return(entities.Claims{}, errors.New("expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "missing header",
			mockBehavior: func(*mocks.MockTokenVerifier) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "basic auth",
			header:       "Basic dXNlcjpwYXNz",
			mockBehavior: func(*mocks.MockTokenVerifier) {},
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := mocks.NewMockTokenVerifier(t)
			tc.mockBehavior(v)

			h := middleware.Authenticate(v)(claimsEcho(t, claims))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := middleware.RequireRole(entities.RoleMerchant, entities.RoleAdmin)(ok)

	testCases := []struct {
		name       string
		claims     *entities.Claims
		wantStatus int
	}{
		{"merchant", &entities.Claims{UserID: "m", Role: entities.RoleMerchant}, http.StatusNoContent},
		{"admin", &entities.Claims{UserID: "a", Role: entities.RoleAdmin}, http.StatusNoContent},
		{"customer", &entities.Claims{UserID: "c", Role: entities.RoleCustomer}, http.StatusForbidden},
		{"anonymous", nil, http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.claims != nil {
				req = req.WithContext(middleware.WithClaims(req.Context(), *tc.claims))
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
