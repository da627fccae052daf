package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

// Middleware limits requests per client address. It expects RemoteAddr to be
// resolved already, e.g. by chi's RealIP middleware. Store failures let the
// request through.
func Middleware(store Store, limit int, window time.Duration, clk clock.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			res, err := store.Allow(r.Context(), key, limit, window)
			if err != nil {
				zap.L().Error("rate limiter unavailable, letting request through", zap.String("key", key), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if !res.Allowed {
				retryAfter := int(math.Ceil(res.ResetAt.Sub(clk.Now()).Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				httperr.WriteRetry(w, domain.Reject(domain.ErrRateLimited, "too many requests, retry in %d seconds", retryAfter), retryAfter)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
