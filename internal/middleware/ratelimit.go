package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"hr-assistant/pkg/response"
)

// rateLimiter tracks one token bucket per client with auto-cleanup of
// idle clients.
type rateLimiter struct {
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
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. Exceeding the budget gets a
// 429 and the request never reaches the handler.
func (m Middleware) RateLimit(requestsPerMin int) gin.HandlerFunc {
	rl := newRateLimiter(requestsPerMin)

	return func(c *gin.Context) {
		key := c.ClientIP()
		if !rl.allow(key) {
			m.l.Warnf(c.Request.Context(), "internal.middleware: rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
