package router

import (
	"context"

	"finance-assistant/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) Output
}

// KeywordRouter classifies intent with the ordered keyword rules
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		l: l,
	}
}
