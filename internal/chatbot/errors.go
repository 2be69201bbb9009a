package chatbot

import "errors"

var (
	// ErrUnsupportedPeriod is a programming error: an intent asked for a period with no range definition.
	ErrUnsupportedPeriod = errors.New("unsupported period")
)
