package httpserver

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finance-assistant/internal/middleware"
	"finance-assistant/internal/model"
	"finance-assistant/internal/router"
	"finance-assistant/internal/test"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery(), mw.RequestID(), mw.AccessLog())
	srv.gin.Use(cors.New(srv.corsConfig()))

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins %v", srv.environment, srv.corsOrigins)
	}
}

func (srv HTTPServer) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(srv.corsOrigins) == 0 || slices.Contains(srv.corsOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = srv.corsOrigins
	}
	return cfg
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if err := srv.setupChatbotDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupCategoryDomain(ctx, api, mw); err != nil {
		return err
	}

	// Routing inspection, never exposed in production
	if !model.IsProduction(srv.environment) {
		test.RegisterRoutes(api, test.New(srv.l, router.New(srv.l)))
		srv.l.Info(ctx, "Test endpoints registered under /api/test")
	}

	return nil
}
