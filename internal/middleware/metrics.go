package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/glamsuite/salon-scheduler/internal/metrics"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, route)
	}
}
