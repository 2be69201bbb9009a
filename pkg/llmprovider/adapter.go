package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"finance-assistant/config"
	"finance-assistant/pkg/deepseek"
	"finance-assistant/pkg/huggingface"
	"finance-assistant/pkg/log"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderDeepSeek    = "deepseek"
)

// HuggingFaceAdapter adapts pkg/huggingface to llmprovider.Provider interface
type HuggingFaceAdapter struct {
	client huggingface.IHuggingFace
}

// NewHuggingFaceAdapter creates a new Hugging Face adapter
func NewHuggingFaceAdapter(client huggingface.IHuggingFace) *HuggingFaceAdapter {
	return &HuggingFaceAdapter{client: client}
}

// GenerateContent implements Provider interface.
// Errors from the client are returned unchanged so callers can inspect them.
func (a *HuggingFaceAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	text, err := a.client.GenerateText(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         text,
		ProviderName: ProviderHuggingFace,
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *HuggingFaceAdapter) Name() string {
	return ProviderHuggingFace
}

// Model returns model name
func (a *HuggingFaceAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface.
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	text, err := a.client.Complete(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         text,
		ProviderName: ProviderDeepSeek,
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return ProviderDeepSeek
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// NewFromConfig builds a Manager backed by the configured text-generation endpoint,
// followed by the secondary chat endpoint when one is configured.
// The fallback timeout bounds the whole chain, retries included.
func NewFromConfig(cfg config.FallbackConfig, logger log.Logger) (*Manager, error) {
	client, err := huggingface.New(huggingface.Config{
		URL:      cfg.URL,
		APIToken: cfg.APIToken,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create huggingface client: %w", err)
	}

	providers := []Provider{NewHuggingFaceAdapter(client)}

	if cfg.Secondary.APIKey != "" {
		secondary, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.Secondary.APIKey,
			BaseURL: cfg.Secondary.BaseURL,
			Model:   cfg.Secondary.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		providers = append(providers, NewDeepSeekAdapter(secondary))
	}

	return NewManager(
		providers,
		&Config{
			FallbackEnabled: len(providers) > 1,
			RetryAttempts:   cfg.RetryAttempts,
			RetryDelay:      cfg.RetryDelay,
			MaxTotalTimeout: cfg.Timeout,
			IsFinal:         isHuggingFaceReply,
		},
		logger,
	), nil
}

// isHuggingFaceReply reports an {"error": msg} body, which is relayed to the user as is.
func isHuggingFaceReply(err error) bool {
	var apiErr *huggingface.APIError
	return errors.As(err, &apiErr)
}
