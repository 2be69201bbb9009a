package http

import (
	"strings"

	"finance-assistant/internal/category"
)

// --- Request DTOs ---

type categorizeReq struct {
	Description string `json:"description"`
}

func (r categorizeReq) validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return category.ErrInvalidInput
	}
	return nil
}

func (r categorizeReq) toInput() category.ClassifyInput {
	return category.ClassifyInput{Description: r.Description}
}

// --- Response DTOs ---

type categorizeResp struct {
	Category string `json:"category"`
}

func (h *handler) newCategorizeResp(out category.ClassifyOutput) categorizeResp {
	return categorizeResp{Category: string(out.Category)}
}
