package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	chatbotHTTP "finance-assistant/internal/chatbot/delivery/http"
	chatbotUC "finance-assistant/internal/chatbot/usecase"
	"finance-assistant/internal/middleware"
	"finance-assistant/internal/router"
)

// setupChatbotDomain initializes the chatbot domain and registers POST /api/chatbot.
func (srv HTTPServer) setupChatbotDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc, err := chatbotUC.New(srv.spendingRepo, router.New(srv.l), srv.fallback, srv.l, chatbotUC.Config{
		MonthlyBudget:  srv.chatbot.MonthlyBudget,
		CurrencySymbol: srv.chatbot.CurrencySymbol,
		Timezone:       srv.chatbot.Timezone,
	})
	if err != nil {
		return fmt.Errorf("chatbot usecase: %w", err)
	}

	// 2. HTTP Handler
	h := chatbotHTTP.New(srv.l, uc)

	// 3. Routes
	chatbotHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Chatbot domain registered (budget %.2f, timezone %s)", srv.chatbot.MonthlyBudget, srv.chatbot.Timezone)
	return nil
}
