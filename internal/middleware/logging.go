package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finance-assistant/pkg/response"
)

// AccessLog writes one line per request after the handler returns.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, latency)
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), status, latency)
		}
	}
}

// Recovery turns a handler panic into a logged 500.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", recovered)
		response.InternalError(c, nil)
		c.Abort()
	})
}
