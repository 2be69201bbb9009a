package huggingface

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrUnexpectedResponse is returned when the endpoint answers with valid JSON of an unknown shape
	ErrUnexpectedResponse = errors.New("huggingface: unexpected response shape")

	// ErrMalformedResponse is returned when the body is not valid JSON
	ErrMalformedResponse = errors.New("huggingface: malformed response")
)

// APIError is returned when the endpoint answers with {"error": "..."}.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huggingface: API error (%d): %s", e.StatusCode, e.Message)
}

// Config holds Hugging Face client configuration
type Config struct {
	URL        string
	APIToken   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("huggingface: URL is required")
	}
	if c.HTTPClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
	return nil
}

// LabelScore is one ranked zero-shot classification result.
type LabelScore struct {
	Label string
	Score float64
}

// huggingFaceImpl is the internal implementation of IHuggingFace
type huggingFaceImpl struct {
	url        string
	apiToken   string
	httpClient *http.Client
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}
