package test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-assistant/internal/router"
	pkgLog "finance-assistant/pkg/log"
	"finance-assistant/pkg/response"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleTestMessage shows which intent a message would route to, without reading data or calling the fallback
// @Summary Test intent routing
// @Description Classify a message with the keyword router and return the intent only
// @Tags test
// @Accept json
// @Produce json
// @Param request body TestMessageRequest true "Test message"
// @Success 200 {object} TestMessageResponse
// @Failure 400 {object} response.Resp
// @Router /api/test/message [post]
func (h *handler) HandleTestMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req TestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out := h.router.Classify(ctx, req.Text)

	h.l.Infof(ctx, "internal.test.HandleTestMessage: text=%q intent=%s", req.Text, out.Intent)

	c.JSON(http.StatusOK, TestMessageResponse{
		Intent:        string(out.Intent),
		Deterministic: out.Intent.IsDeterministic(),
		Normalized:    out.Normalized,
		Text:          req.Text,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /api/test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
