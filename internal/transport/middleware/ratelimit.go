package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
	"github.com/heartmarshall/intercom-backend/pkg/ctxutil"
)

// RateLimiter counts hits per key in a fixed window.
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, max int, window time.Duration) domain.LimitResult
}

// RateLimit admits at most max requests per window from one client address.
// It expects ClientIP earlier in the chain. Counters live in the shared
// store, so the limit holds across instances.
func RateLimit(limiter RateLimiter, m *metrics.Metrics, max int, window time.Duration) Middleware {
	retryAfter := strconv.Itoa(int(math.Ceil(window.Seconds())))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiter.CheckLimit(r.Context(), "ip:"+ip, max, window).Allowed {
				m.RateLimited.WithLabelValues("ip").Inc()
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "too many requests, please wait")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
