package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

func newDeepSeekImpl(cfg Config) *deepSeekImpl {
	return &deepSeekImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Complete sends a chat completion request with the fixed system prompt.
func (d *deepSeekImpl) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: d.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("deepseek: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("deepseek: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+d.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("deepseek: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("deepseek: failed to read response: %w", err)
	}

	root := gjson.ParseBytes(respBody)
	if resp.StatusCode != http.StatusOK {
		msg := root.Get("error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if !gjson.ValidBytes(respBody) {
		return "", fmt.Errorf("%w (status %d)", ErrMalformedResponse, resp.StatusCode)
	}

	content := root.Get("choices.0.message.content")
	if !content.Exists() {
		return "", ErrEmptyChoices
	}
	return content.String(), nil
}

// Model returns the model being used
func (d *deepSeekImpl) Model() string {
	return d.model
}
