package middleware

import (
	"time"

	"calendar-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request once the handler chain has finished.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s -> %d (%s) %s", c.Request.Method, c.Request.URL.Path, status, latency, c.Errors.String())
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			mw.l.Infof(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}

// Recovery turns a panic into a 500 envelope and logs it.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		mw.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c, nil)
	})
}
