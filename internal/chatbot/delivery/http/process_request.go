package http

import (
	"github.com/gin-gonic/gin"
)

// processAnswerReq binds and validates the chatbot request body.
func (h *handler) processAnswerReq(c *gin.Context) (answerReq, error) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
