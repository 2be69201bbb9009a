package http

import (
	"finance-assistant/internal/chatbot"
	"finance-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chatbot.UseCase
}

// New creates a new HTTP handler for the chatbot domain.
func New(l log.Logger, uc chatbot.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
