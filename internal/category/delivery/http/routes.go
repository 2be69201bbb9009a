package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Middleware passed in mws runs before the handler on every route.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mws ...gin.HandlerFunc) {
	ai := rg.Group("/ai")
	{
		ai.POST("/categorize", append(mws, h.Categorize)...)
	}
}
