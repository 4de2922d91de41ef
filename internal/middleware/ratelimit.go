package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"atomic-scheduler/pkg/response"
)

const (
	rateLimiterCacheSize = 1024
	rateLimiterCacheTTL  = 10 * time.Minute
)

// RateLimit returns a per-user token bucket limiter. Limiters are kept in
// an expirable LRU so idle users are evicted instead of accumulating.
// perMinute <= 0 disables limiting.
func (m Middleware) RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](rateLimiterCacheSize, nil, rateLimiterCacheTTL)
	limit := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		key := GetScope(c).UserID
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, perMinute)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: user %s throttled", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
