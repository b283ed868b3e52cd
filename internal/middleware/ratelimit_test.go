package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/supermall/internal/middleware"
	"github.com/SergeyBogomolovv/supermall/pkg/ratelimit"
	rlMocks "github.com/SergeyBogomolovv/supermall/pkg/ratelimit/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func doRequest(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.RemoteAddr = remote
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(3, time.Minute, 100)
	h := middleware.RateLimit(discardLogger(), limiter, middleware.RateLimitClassAPI)(okHandler())

	for i := 0; i < 3; i++ {
		rr := doRequest(h, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "3", rr.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(2-i), rr.Header().Get("X-RateLimit-Remaining"))
	}

	rr := doRequest(h, "10.0.0.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))

	// a different client has its own window
	rr = doRequest(h, "10.0.0.2:1234")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimit_ClassesAreIndependent(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, time.Minute, 100)
	api := middleware.RateLimit(discardLogger(), limiter, middleware.RateLimitClassAPI)(okHandler())
	auth := middleware.RateLimit(discardLogger(), limiter, middleware.RateLimitClassAuth)(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(api, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, doRequest(auth, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(api, "10.0.0.1:1").Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := rlMocks.NewMockLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "api:10.0.0.1").Return(ratelimit.Decision{}, errors.New("redis down")).Once()

	h := middleware.RateLimit(discardLogger(), limiter, middleware.RateLimitClassAPI)(okHandler())
	rr := doRequest(h, "10.0.0.1:1234")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
}
