package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/supermall/pkg/ratelimit"
	"github.com/SergeyBogomolovv/supermall/pkg/utils"
)

const (
	RateLimitClassAPI  = "api"
	RateLimitClassAuth = "auth"
)

// RateLimit counts requests per class and client IP. When the store fails
// the request is let through.
func RateLimit(logger *slog.Logger, limiter ratelimit.Limiter, class string) func(next http.Handler) http.Handler {
	logger = logger.With(slog.String("middleware", "ratelimit"), slog.String("class", class))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := class + ":" + clientIP(r)

			d, err := limiter.Allow(ctx, key)
			if err != nil {
				rateLimitErrors.WithLabelValues(class).Inc()
				logger.WarnContext(ctx, "rate limiter unavailable", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

			if !d.Allowed {
				rateLimitRejected.WithLabelValues(class).Inc()
				retryAfter := int(math.Ceil(time.Until(d.ResetAt).Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				utils.WriteError(w, "too many requests, please try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
