package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"agent-router/pkg/metrics"
	"agent-router/pkg/response"
)

const (
	maxTrackedClients = 1000
	idleClientTTL     = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client, evicting idle clients.
type rateLimiter struct {
	mu       sync.Mutex
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
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, idleClientTTL),
		rate:     rate.Every(time.Minute / time.Duration(requestsPerMin)),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()
	return limiter.Allow()
}

// RateLimit rejects clients over the configured per-minute budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: rate limit exceeded for %s", ip)
			metrics.RecordRateLimited()
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
