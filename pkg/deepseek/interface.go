package deepseek

import "context"

// IDeepSeek is an OpenAI-compatible chat completion client.
type IDeepSeek interface {
	// Complete sends prompt as a single user turn and returns the first choice.
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// New creates a new DeepSeek client
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDeepSeekImpl(cfg), nil
}
