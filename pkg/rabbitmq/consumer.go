package rabbitmq

import (
	"context"
	"errors"
	"time"

	"finance-assistant/pkg/log"
)

// ConsumeWithReconnect runs Consume and redials with exponential backoff when the
// broker link drops. It returns when ctx is done or on a non-connection error.
func ConsumeWithReconnect(ctx context.Context, cfg Config, l log.Logger, handler Handler) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		err := consumeOnce(ctx, cfg, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !isConnectionError(err) {
			return err
		}

		delay := exponentialBackoff(attempt)
		l.Warnf(ctx, "rabbitmq: consumer link lost, retrying in %s: %v", delay, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func consumeOnce(ctx context.Context, cfg Config, handler Handler) error {
	client, err := dial(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Consume(ctx, handler)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
