package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	DefaultTimeout = 60 * time.Second

	// maxResponseBytes caps how much of a completion response is read into memory
	maxResponseBytes = 4 << 20

	// SystemPrompt keeps secondary answers in the assistant's register.
	SystemPrompt = "You are a concise personal finance assistant. Answer in at most three sentences."
)
