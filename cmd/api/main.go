package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finance-assistant/config"
	_ "finance-assistant/docs" // Swagger docs
	categoryUC "finance-assistant/internal/category/usecase"
	chatbotSQLite "finance-assistant/internal/chatbot/repository/sqlite"
	"finance-assistant/internal/httpserver"
	"finance-assistant/pkg/database"
	"finance-assistant/pkg/huggingface"
	"finance-assistant/pkg/llmprovider"
	"finance-assistant/pkg/log"
	"finance-assistant/pkg/rabbitmq"
)

// @title       Finance Assistant API
// @description Financial chatbot with keyword intent routing and zero-shot expense categorization.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Finance Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.Driver == config.DriverSQLite {
		if err := chatbotSQLite.Migrate(db); err != nil {
			logger.Errorf(ctx, "Failed to migrate SQLite database: %v", err)
			os.Exit(1)
		}
		logger.Infof(ctx, "SQLite database ready at %s", cfg.Database.SQLitePath)
	} else {
		logger.Info(ctx, "PostgreSQL connection established")
	}

	// 4. Generative fallback
	fallback, err := llmprovider.NewFromConfig(cfg.Fallback, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize fallback provider: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Fallback endpoint: %s", cfg.Fallback.URL)

	// 5. Zero-shot classifier
	classifier, err := huggingface.New(huggingface.Config{
		URL:      cfg.Classifier.URL,
		APIToken: cfg.Classifier.APIToken,
		Timeout:  cfg.Classifier.Timeout,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize classifier: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Classifier endpoint: %s", cfg.Classifier.URL)

	// 6. Audit publisher (optional)
	var auditPublisher categoryUC.Publisher
	if cfg.Audit.AMQPURL != "" {
		client, err := rabbitmq.New(rabbitmq.Config{
			URL:      cfg.Audit.AMQPURL,
			Exchange: cfg.Audit.Exchange,
			Queue:    cfg.Audit.RoutingKey,
		})
		if err != nil {
			logger.Warnf(ctx, "Audit publisher disabled, broker unavailable: %v", err)
		} else {
			defer client.Close()
			auditPublisher = client
			logger.Infof(ctx, "Audit events published to exchange %s", cfg.Audit.Exchange)
		}
	} else {
		logger.Info(ctx, "Audit publisher disabled (no AMQP URL)")
	}

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
		DB:             db,
		DBDriver:       cfg.Database.Driver,
		Chatbot:        cfg.Chatbot,
		Fallback:       fallback,
		Classifier:     classifier,
		Classification: cfg.Classifier,
		AuditPublisher: auditPublisher,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Finance Assistant stopped")
}
