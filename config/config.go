package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure returned from Load.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Finance assistant specifics
	Database   DatabaseConfig
	Chatbot    ChatbotConfig
	Fallback   FallbackConfig
	Classifier ClassifierConfig
	Audit      AuditConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver       string
	URL          string
	SQLitePath   string
	MaxOpenConns int
}

// ChatbotConfig configures the deterministic answers of the intent router.
type ChatbotConfig struct {
	MonthlyBudget  float64
	CurrencySymbol string
	Timezone       string
}

// FallbackConfig configures the generative text endpoint used when no intent matches.
type FallbackConfig struct {
	URL           string
	APIToken      string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration

	// Secondary is tried after the primary endpoint fails. Disabled when APIKey is empty.
	Secondary SecondaryFallbackConfig
}

// SecondaryFallbackConfig points at an OpenAI-compatible chat completion API.
type SecondaryFallbackConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// ClassifierConfig configures the zero-shot category classifier.
type ClassifierConfig struct {
	URL           string
	APIToken      string
	Timeout       time.Duration
	MinConfidence float64
	CacheSize     int
	CacheTTL      time.Duration
}

// AuditConfig enables publishing audit events to RabbitMQ when AMQPURL is set.
type AuditConfig struct {
	AMQPURL    string
	Exchange   string
	RoutingKey string
}

// Load loads configuration using Viper.
// An optional .env file is loaded first so its values are visible as environment variables.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Database
	cfg.Database.Driver = strings.ToLower(viper.GetString("database.driver"))
	cfg.Database.URL = viper.GetString("database.url")
	if legacyURL := viper.GetString("supabase_db_url"); legacyURL != "" && cfg.Database.URL == "" {
		cfg.Database.URL = legacyURL
	}
	cfg.Database.SQLitePath = viper.GetString("database.sqlite_path")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")

	// Chatbot
	cfg.Chatbot.MonthlyBudget = viper.GetFloat64("chatbot.monthly_budget")
	cfg.Chatbot.CurrencySymbol = viper.GetString("chatbot.currency_symbol")
	cfg.Chatbot.Timezone = viper.GetString("chatbot.timezone")

	// Hugging Face endpoints share one token unless overridden.
	hfToken := viper.GetString("hf_api_token")

	cfg.Fallback.URL = viper.GetString("fallback.url")
	cfg.Fallback.APIToken = firstNonEmpty(viper.GetString("fallback.api_token"), hfToken)
	cfg.Fallback.Timeout = viper.GetDuration("fallback.timeout")
	cfg.Fallback.RetryAttempts = viper.GetInt("fallback.retry_attempts")
	cfg.Fallback.RetryDelay = viper.GetDuration("fallback.retry_delay")
	cfg.Fallback.Secondary.APIKey = viper.GetString("fallback.secondary.api_key")
	cfg.Fallback.Secondary.BaseURL = viper.GetString("fallback.secondary.base_url")
	cfg.Fallback.Secondary.Model = viper.GetString("fallback.secondary.model")

	cfg.Classifier.URL = viper.GetString("classifier.url")
	cfg.Classifier.APIToken = firstNonEmpty(viper.GetString("classifier.api_token"), hfToken)
	cfg.Classifier.Timeout = viper.GetDuration("classifier.timeout")
	cfg.Classifier.MinConfidence = viper.GetFloat64("classifier.min_confidence")
	cfg.Classifier.CacheSize = viper.GetInt("classifier.cache_size")
	cfg.Classifier.CacheTTL = viper.GetDuration("classifier.cache_ttl")

	// Audit
	cfg.Audit.AMQPURL = viper.GetString("audit.amqp_url")
	cfg.Audit.Exchange = viper.GetString("audit.exchange")
	cfg.Audit.RoutingKey = viper.GetString("audit.routing_key")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 10)
	viper.SetDefault("logger.max_backups", 3)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("cors.allowed_origins", "*")

	viper.SetDefault("database.driver", DriverPostgres)
	viper.SetDefault("database.sqlite_path", "./data/finance.db")
	viper.SetDefault("database.max_open_conns", 10)

	viper.SetDefault("chatbot.monthly_budget", 10000)
	viper.SetDefault("chatbot.currency_symbol", "₹")
	viper.SetDefault("chatbot.timezone", "Asia/Kolkata")

	viper.SetDefault("fallback.url", "https://api-inference.huggingface.co/models/google/flan-t5-large")
	viper.SetDefault("fallback.timeout", "60s")
	viper.SetDefault("fallback.retry_attempts", 1)
	viper.SetDefault("fallback.retry_delay", "1s")

	viper.SetDefault("classifier.url", "https://api-inference.huggingface.co/models/valhalla/distilbart-mnli-12-1")
	viper.SetDefault("classifier.timeout", "30s")
	viper.SetDefault("classifier.min_confidence", 0)
	viper.SetDefault("classifier.cache_size", 1024)
	viper.SetDefault("classifier.cache_ttl", "1h")

	viper.SetDefault("audit.exchange", "finance-assistant")
	viper.SetDefault("audit.routing_key", "audit")
}

// validate fails fast on configuration the service cannot start without.
func (c *Config) validate() error {
	var problems []string

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			problems = append(problems, "database.url (or DATABASE_URL / SUPABASE_DB_URL) is required for the postgres driver")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			problems = append(problems, "database.sqlite_path is required for the sqlite driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not one of %s, %s", c.Database.Driver, DriverPostgres, DriverSQLite))
	}

	if c.HTTPServer.Port < 1 || c.HTTPServer.Port > 65535 {
		problems = append(problems, fmt.Sprintf("http_server.port %d must be between 1 and 65535", c.HTTPServer.Port))
	}
	if c.Fallback.URL == "" {
		problems = append(problems, "fallback.url is required")
	}
	if c.Fallback.Timeout <= 0 {
		problems = append(problems, "fallback.timeout must be positive")
	}
	if c.Classifier.URL == "" {
		problems = append(problems, "classifier.url is required")
	}
	if c.Classifier.MinConfidence < 0 || c.Classifier.MinConfidence > 1 {
		problems = append(problems, "classifier.min_confidence must be within [0, 1]")
	}
	if c.Chatbot.MonthlyBudget < 0 {
		problems = append(problems, "chatbot.monthly_budget must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
