package rabbitmq

import "context"

// IPublisher publishes event envelopes to the configured exchange.
type IPublisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// IConsumer delivers messages from the configured queue until ctx is done.
type IConsumer interface {
	Consume(ctx context.Context, handler Handler) error
	Close() error
}

// New dials the broker, declares the exchange, queue and binding, and returns a client
// usable as both IPublisher and IConsumer.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return dial(cfg)
}
