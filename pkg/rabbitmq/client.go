package rabbitmq

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client wraps one connection and one channel.
type Client struct {
	conn *amqp.Connection
	ch   channel
	cfg  Config

	// A channel must not be used for concurrent publishes.
	mu sync.Mutex

	// redial opens a fresh connection and channel with the topology declared.
	// Nil disables reconnecting on publish.
	redial        func() (*amqp.Connection, channel, error)
	redialAttempt int
	nextRedial    time.Time
	now           func() time.Time
}

var (
	_ IPublisher = (*Client)(nil)
	_ IConsumer  = (*Client)(nil)
)

func dial(cfg Config) (*Client, error) {
	conn, ch, err := open(cfg)
	if err != nil {
		return nil, err
	}
	client := &Client{conn: conn, ch: ch, cfg: cfg, now: time.Now}
	client.redial = func() (*amqp.Connection, channel, error) { return open(cfg) }
	return client, nil
}

// open dials the broker and declares the exchange, queue and binding on a new channel.
func open(cfg Config) (*amqp.Connection, channel, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return conn, ch, nil
}

func newWithChannel(ch channel, cfg Config) (*Client, error) {
	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return &Client{ch: ch, cfg: cfg, now: time.Now}, nil
}

func declareTopology(ch channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(cfg.Queue, cfg.Queue, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// Publish sends msg as a persistent JSON message routed to the configured queue.
// When the broker link is gone it redials once and retries; failed redials are
// spaced by exponential backoff so an outage costs one fast error per publish.
func (c *Client) Publish(ctx context.Context, msg Message) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	pub := amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Type:         msg.Type,
		Timestamp:    msg.OccurredAt,
		Body:         body,
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.ch.PublishWithContext(ctx, c.cfg.Exchange, c.cfg.Queue, false, false, pub)
	if err == nil {
		return nil
	}
	if c.redial == nil || !isConnectionError(err) {
		return fmt.Errorf("publish message: %w", err)
	}

	if rerr := c.reconnect(); rerr != nil {
		return fmt.Errorf("publish message: %w (reconnect: %w)", err, rerr)
	}
	if err := c.ch.PublishWithContext(ctx, c.cfg.Exchange, c.cfg.Queue, false, false, pub); err != nil {
		return fmt.Errorf("publish message after reconnect: %w", err)
	}
	return nil
}

// reconnect swaps in a fresh connection and channel. Callers hold c.mu.
func (c *Client) reconnect() error {
	now := c.now()
	if now.Before(c.nextRedial) {
		return fmt.Errorf("%w until %s", ErrReconnectBackoff, c.nextRedial.Format(time.RFC3339))
	}

	conn, ch, err := c.redial()
	if err != nil {
		c.nextRedial = now.Add(exponentialBackoff(c.redialAttempt))
		c.redialAttempt++
		return err
	}

	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn, c.ch = conn, ch
	c.redialAttempt = 0
	c.nextRedial = time.Time{}
	return nil
}

// Consume delivers messages to handler with manual acks.
// Undecodable messages are dropped; handler errors requeue the message.
func (c *Client) Consume(ctx context.Context, handler Handler) error {
	deliveries, err := c.ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}
	return consumeLoop(ctx, deliveries, handler)
}

func consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery, handler Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			msg, err := MessageFromJSON(d.Body)
			if err != nil {
				d.Nack(false, false)
				continue
			}

			if err := handler(msg); err != nil {
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// exponentialBackoff returns the reconnect delay for the given attempt.
func exponentialBackoff(attempt int) time.Duration {
	if attempt >= 5 {
		return maxBackoff
	}
	d := minBackoff << attempt
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// isConnectionError reports whether err means the broker link is gone and a redial may help.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{"connection", "eof", "channel", "broken pipe", "dial"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
