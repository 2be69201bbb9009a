package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "finance-assistant/pkg/errors"
	"finance-assistant/pkg/response"
)

// Categorize godoc
// @Summary     Categorize a transaction description
// @Description Assigns exactly one spending category from the fixed vocabulary.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       body body categorizeReq true "Transaction description"
// @Success     200  {object} categorizeResp
// @Failure     400  {object} response.Resp "Bad Request - empty description"
// @Failure     502  {object} response.Resp "Bad Gateway - classifier failed"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/ai/categorize [POST]
func (h *handler) Categorize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCategorizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		if mapped := h.mapError(err); mapped != nil {
			if pkgErrors.StatusOf(mapped) == http.StatusBadGateway {
				response.BadGateway(c, mapped)
				return
			}
			response.Error(c, mapped, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newCategorizeResp(output))
}
