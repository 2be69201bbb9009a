package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	categoryHTTP "finance-assistant/internal/category/delivery/http"
	categoryUC "finance-assistant/internal/category/usecase"
	"finance-assistant/internal/middleware"
)

// setupCategoryDomain initializes the category domain and registers POST /api/ai/categorize.
func (srv HTTPServer) setupCategoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc, err := categoryUC.New(srv.classifier, srv.auditPublisher, srv.l, categoryUC.Config{
		MinConfidence: srv.classification.MinConfidence,
		CacheSize:     srv.classification.CacheSize,
		CacheTTL:      srv.classification.CacheTTL,
	})
	if err != nil {
		return fmt.Errorf("category usecase: %w", err)
	}

	// 2. HTTP Handler
	h := categoryHTTP.New(srv.l, uc)

	// 3. Routes
	categoryHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Category domain registered (audit events: %t)", srv.auditPublisher != nil)
	return nil
}
