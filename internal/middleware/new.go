package middleware

import (
	"finance-assistant/config"
	"finance-assistant/pkg/log"
)

// Middleware holds the shared dependencies of the HTTP middleware chain.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. A nil limiter means rate limiting is disabled.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return m
}
