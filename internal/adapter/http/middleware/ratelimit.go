package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// LoginLimiter rate limits login attempts per client IP using a token
// bucket per address. Buckets are created on first sight and kept for the
// process lifetime; the key space is bounded by the client population.
type LoginLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      float64
	burst    int
}

// NewLoginLimiter creates a LoginLimiter allowing rps sustained attempts
// per second with the given burst per client IP.
func NewLoginLimiter(rps float64, burst int) *LoginLimiter {
	return &LoginLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// limiter returns the bucket for an address, creating it if needed.
func (l *LoginLimiter) limiter(addr string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[addr]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[addr]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
	l.limiters[addr] = limiter
	return limiter
}

// Allow reports whether an attempt from the address may proceed.
func (l *LoginLimiter) Allow(addr string) bool {
	return l.limiter(addr).Allow()
}

// Middleware returns Echo middleware rejecting over-limit requests with 429.
func (l *LoginLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"success": false,
					"error": map[string]string{
						"code":    "too_many_requests",
						"message": "Too many attempts, please try again later",
					},
				})
			}
			return next(c)
		}
	}
}
