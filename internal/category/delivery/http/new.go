package http

import (
	"finance-assistant/internal/category"
	"finance-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc category.UseCase
}

// New creates a new HTTP handler for the category domain.
func New(l log.Logger, uc category.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
