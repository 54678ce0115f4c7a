package middleware

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

type window struct {
	start time.Time
	count int
}

// rateLimiter counts requests per key in fixed windows.
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	length  time.Duration
	now     func() time.Time
}

func newRateLimiter(limit int, length time.Duration) *rateLimiter {
	return &rateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		length:  length,
		now:     time.Now,
	}
}

// allow records a request for key. When the key is over its limit it returns
// false and the time left until the window resets.
func (rl *rateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.length {
		rl.windows[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, rl.length - now.Sub(w.start)
	}
	w.count++
	return true, 0
}

// sweep drops windows that have expired.
func (rl *rateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.length {
			delete(rl.windows, key)
		}
	}
}

func (rl *rateLimiter) sweepUntilDone(ctx context.Context) {
	ticker := time.NewTicker(rl.length)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// RateLimitMiddleware allows cfg.RateLimitRequests per client IP in each
// window. A non-positive limit or window disables it.
func RateLimitMiddleware(ctx context.Context, cfg *config.APIConfig) gin.HandlerFunc {
	if cfg.RateLimitRequests <= 0 || cfg.RateLimitWindow <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := newRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	go limiter.sweepUntilDone(ctx)

	return func(c *gin.Context) {
		// Keyed by IP, not X-Client-ID.
		key := c.ClientIP()

		allowed, retryAfter := limiter.allow(key)
		if !allowed {
			utils.LogWarn(c.Request.Context(), "Rate limit exceeded", utils.Fields{
				"ip":          key,
				"retry_after": retryAfter.String(),
			})
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			abortWithError(c, utils.NewRateLimitError())
			return
		}

		c.Next()
	}
}
