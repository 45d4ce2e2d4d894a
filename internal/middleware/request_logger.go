package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with method, path, status and latency.
func (mw Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		mw.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
