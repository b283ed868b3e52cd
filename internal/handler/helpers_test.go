package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/internal/middleware"
	"github.com/go-chi/chi/v5"
)

type initializer interface {
	Init(r chi.Router)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuth authenticates every request as claims.
func fakeAuth(claims entities.Claims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithClaims(r.Context(), claims)))
		})
	}
}

func passthrough(next http.Handler) http.Handler { return next }

func serve(h initializer, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

const (
	customerID = "6f1c2a44-6f0e-4a39-9d3e-8a1b2c3d4e5f"
	merchantID = "0b8e1d2c-3a4f-4b5c-8d6e-7f8091a2b3c4"
	vendorID   = "9d8c7b6a-5f4e-4d3c-9b2a-1a0b9c8d7e6f"
	productID  = "3e2d1c0b-9a8f-4e7d-8c6b-5a4f3e2d1c0b"
)

var (
	customerClaims = entities.Claims{UserID: customerID, Role: entities.RoleCustomer}
	merchantClaims = entities.Claims{UserID: merchantID, Role: entities.RoleMerchant}
	adminClaims    = entities.Claims{UserID: "a1a2a3a4-b1b2-4c1c-8d1d-e1e2e3e4e5e6", Role: entities.RoleAdmin}
)
