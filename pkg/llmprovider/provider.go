package llmprovider

import "context"

// Provider defines the interface for text-generation providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "huggingface")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized generation request
type Request struct {
	Prompt string
}

// Response represents a normalized generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
}
