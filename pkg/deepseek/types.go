package deepseek

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyChoices is returned when a 200 response carries no completion.
	ErrEmptyChoices = errors.New("deepseek: response has no choices")

	// ErrMalformedResponse is returned when the body is not valid JSON, including bodies cut at the size cap.
	ErrMalformedResponse = errors.New("deepseek: malformed response")
)

// APIError is a non-200 response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepseek: API error (%d): %s", e.StatusCode, e.Message)
}

// Config holds DeepSeek client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("deepseek: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type deepSeekImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
