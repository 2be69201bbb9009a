package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	categoryUC "finance-assistant/internal/category/usecase"
	"finance-assistant/internal/chatbot/repository"
	chatbotPostgre "finance-assistant/internal/chatbot/repository/postgre"
	chatbotSQLite "finance-assistant/internal/chatbot/repository/sqlite"
	chatbotUC "finance-assistant/internal/chatbot/usecase"
	"finance-assistant/config"
	"finance-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	rateLimit   config.RateLimitConfig

	// Chatbot domain
	spendingRepo repository.Repository
	chatbot      config.ChatbotConfig
	fallback     chatbotUC.Generator

	// Category domain
	classifier     categoryUC.Classifier
	classification config.ClassifierConfig
	auditPublisher categoryUC.Publisher
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	RateLimit      config.RateLimitConfig

	// Data store
	DB       *sql.DB
	DBDriver string

	// Chatbot domain
	Chatbot  config.ChatbotConfig
	Fallback chatbotUC.Generator

	// Category domain
	Classifier     categoryUC.Classifier
	Classification config.ClassifierConfig
	AuditPublisher categoryUC.Publisher // Optional
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		corsOrigins:    cfg.AllowedOrigins,
		rateLimit:      cfg.RateLimit,
		chatbot:        cfg.Chatbot,
		fallback:       cfg.Fallback,
		classifier:     cfg.Classifier,
		classification: cfg.Classification,
		auditPublisher: cfg.AuditPublisher,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if cfg.DB == nil {
		return nil, errors.New("database is required")
	}

	switch cfg.DBDriver {
	case config.DriverPostgres:
		srv.spendingRepo = chatbotPostgre.New(cfg.DB, logger)
	case config.DriverSQLite:
		srv.spendingRepo = chatbotSQLite.New(cfg.DB, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.fallback == nil {
		return errors.New("fallback generator is required")
	}
	if srv.classifier == nil {
		return errors.New("classifier is required")
	}
	return nil
}
