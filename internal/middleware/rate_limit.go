package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"crm-admin-gateway/pkg/response"
)

type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	lim, ok := cl.limiters[key]
	if !ok {
		lim = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters[key] = lim
	}
	return lim
}

// RateLimit throttles requests per client IP using a token bucket.
// A non-positive configured limit disables throttling.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.RateLimitPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	clients := &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMin)),
		burst:    perMin,
	}

	return func(c *gin.Context) {
		if !clients.get(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit throttled %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
