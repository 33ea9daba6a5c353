package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// APIMetrics is the subset of the Prometheus recorder used for HTTP traffic.
type APIMetrics interface {
	APIInflightInc()
	APIInflightDec()
	ObserveAPI(method, route, status string, d time.Duration)
}

func Metrics(m APIMetrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		m.APIInflightInc()
		defer m.APIInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
