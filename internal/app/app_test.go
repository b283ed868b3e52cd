package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/supermall/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

type fakeConsumer struct {
	consumed chan struct{}
	closeErr error
}

func (c *fakeConsumer) Consume(ctx context.Context) { close(c.consumed) }
func (c *fakeConsumer) Close() error                { return c.closeErr }

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

func testApp(limit func(http.Handler) http.Handler) *application {
	cfg := config.Config{Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}}}
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg, limit)
}

func TestApplication_Routes(t *testing.T) {
	limited := 0
	limit := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limited++
			next.ServeHTTP(w, r)
		})
	}

	a := testApp(limit)
	a.SetHTTPHandlers(pingHandler{})

	rr := httptest.NewRecorder()
	a.httpSrv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	a.httpSrv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, limited)

	rr = httptest.NewRecorder()
	a.httpSrv.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, limited)
}

func TestApplication_StarterFailure(t *testing.T) {
	a := testApp(func(next http.Handler) http.Handler { return next })
	a.SetStarters(
		starterFunc(func(context.Context) error { return nil }),
		starterFunc(func(context.Context) error { return errors.New("boom") }),
	)

	err := a.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestApplication_StopJoinsErrors(t *testing.T) {
	a := testApp(func(next http.Handler) http.Handler { return next })
	a.httpSrv.Addr = "127.0.0.1:0"

	consumer := &fakeConsumer{consumed: make(chan struct{}), closeErr: errors.New("reader closed twice")}
	a.SetConsumers(consumer)
	a.SetClosers(closerFunc(func() error { return errors.New("redis gone") }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, a.Start(ctx))
	<-consumer.consumed

	err := a.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reader closed twice")
	assert.Contains(t, err.Error(), "redis gone")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
