package rabbitmq

import "time"

const (
	// ExchangeKind is the exchange type declared by the client
	ExchangeKind = "direct"

	// publishTimeout bounds a single publish call
	publishTimeout = 5 * time.Second

	// Reconnect backoff starts at minBackoff and doubles up to maxBackoff
	minBackoff = 1 * time.Second
	maxBackoff = 30 * time.Second

	contentTypeJSON = "application/json"
)
