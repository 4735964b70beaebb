package middleware

import (
	"sync"
	"time"

	"calendar-assistant/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client, evicting idle clients.
type rateLimiter struct {
	mu       sync.Mutex // serializes get-or-create so a client never gets two buckets
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

func (rl *rateLimiter) allow(key string) bool {
	return rl.limiter(key).Allow()
}

// RateLimit rejects clients exceeding their per-minute budget with 429.
// It is a no-op when rate limiting is disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !mw.limiter.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
