package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit caps requests per client IP. Applied to the public group so one
// visitor cannot hammer the booking endpoints.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var limiters sync.Map

	if burst <= 0 {
		burst = 5
	}

	getLimiter := func(key string) *rate.Limiter {
		if v, ok := limiters.Load(key); ok {
			return v.(*rate.Limiter)
		}
		lim := rate.NewLimiter(rate.Limit(rps), burst)
		actual, loaded := limiters.LoadOrStore(key, lim)
		if loaded {
			return actual.(*rate.Limiter)
		}
		return lim
	}

	return func(c *gin.Context) {
		if !getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
			return
		}
		c.Next()
	}
}
