package http

import (
	"github.com/gin-gonic/gin"
)

// processCategorizeReq binds and validates the categorize request body.
func (h *handler) processCategorizeReq(c *gin.Context) (categorizeReq, error) {
	var req categorizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
