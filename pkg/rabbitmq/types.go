package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrInvalidMessage   = errors.New("rabbitmq: invalid message")
	ErrReconnectBackoff = errors.New("rabbitmq: reconnect backing off")
)

// Config holds the connection and topology settings.
// Queue doubles as the routing key of the direct binding.
type Config struct {
	URL      string
	Exchange string
	Queue    string
}

// Validate validates the configuration
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("rabbitmq: URL is required")
	}
	if c.Exchange == "" || c.Queue == "" {
		return fmt.Errorf("rabbitmq: exchange and queue are required")
	}
	return nil
}

// Message is the envelope every published event travels in.
type Message struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// NewMessage wraps data in an envelope with a fresh id.
func NewMessage(eventType string, data any) (Message, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Message{}, fmt.Errorf("marshal event data: %w", err)
	}
	return Message{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       raw,
	}, nil
}

// ToJSON converts the message to JSON bytes
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MessageFromJSON decodes an envelope and checks its required fields.
func MessageFromJSON(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if msg.ID == "" || msg.Type == "" {
		return Message{}, fmt.Errorf("%w: id and type are required", ErrInvalidMessage)
	}
	return msg, nil
}

// Handler processes one consumed message. A returned error requeues it.
type Handler func(msg Message) error

// channel is the subset of *amqp.Channel the client uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}
