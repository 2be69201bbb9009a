package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-assistant/pkg/response"
)

// Answer godoc
// @Summary     Ask a financial question
// @Description Routes the question to a spending aggregate, a tip, or the generative fallback.
// @Description Data and fallback failures are reported inside the answer text with status 200.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body answerReq true "Question"
// @Success     200  {object} answerResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/chatbot [POST]
func (h *handler) Answer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnswerReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.InternalError(c, err)
		return
	}

	h.l.Infof(ctx, "chatbot: intent=%s", output.Intent)
	c.JSON(http.StatusOK, h.newAnswerResp(output))
}
