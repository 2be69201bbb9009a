package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finance-assistant/config"
	"finance-assistant/internal/category"
	"finance-assistant/pkg/log"
	"finance-assistant/pkg/rabbitmq"
)

// main runs the audit consumer: it drains category.classified events from
// RabbitMQ and writes them to the structured log.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

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

	if cfg.Audit.AMQPURL == "" {
		logger.Error(ctx, "audit.amqp_url is required for the consumer")
		os.Exit(1)
	}

	logger.Infof(ctx, "Starting audit consumer on exchange %s, queue %s", cfg.Audit.Exchange, cfg.Audit.RoutingKey)

	err = rabbitmq.ConsumeWithReconnect(ctx, rabbitmq.Config{
		URL:      cfg.Audit.AMQPURL,
		Exchange: cfg.Audit.Exchange,
		Queue:    cfg.Audit.RoutingKey,
	}, logger, auditHandler(ctx, logger))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "Audit consumer stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Audit consumer stopped")
}

// auditHandler logs classification events. Unknown event types are acknowledged and skipped.
func auditHandler(ctx context.Context, l log.Logger) rabbitmq.Handler {
	return func(msg rabbitmq.Message) error {
		if msg.Type != category.EventTypeClassified {
			l.Debugf(ctx, "audit: skipping event %s of type %s", msg.ID, msg.Type)
			return nil
		}

		var ev category.ClassifiedEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			// Requeueing would loop forever on a malformed payload.
			l.Warnf(ctx, "audit: undecodable event %s: %v", msg.ID, err)
			return nil
		}

		l.Infof(ctx, "audit: %s classified %q as %s (score %.3f) at %s",
			msg.ID, ev.Description, ev.Category, ev.Score, msg.OccurredAt.Format("2006-01-02T15:04:05Z07:00"))
		return nil
	}
}
