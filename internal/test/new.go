package test

import (
	"github.com/gin-gonic/gin"

	"finance-assistant/internal/router"
	pkgLog "finance-assistant/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleTestMessage(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, router router.Router) Handler {
	return &handler{
		l:      l,
		router: router,
	}
}

// RegisterRoutes mounts the test endpoints under /test.
func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	g := r.Group("/test")
	g.POST("/message", h.HandleTestMessage)
	g.GET("/health", h.HandleHealthCheck)
}
