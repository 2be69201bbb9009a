package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-assistant/pkg/huggingface"
	"finance-assistant/pkg/llmprovider"
)

// relay forwards the question to the generative endpoint and maps every
// outcome to a user-facing answer. The returned error is informational only.
func (uc *implUseCase) relay(ctx context.Context, question string) (string, error) {
	start := time.Now()
	resp, err := uc.fallback.GenerateContent(ctx, &llmprovider.Request{Prompt: question})
	fallbackLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		var apiErr *huggingface.APIError
		switch {
		case errors.As(err, &apiErr):
			return fmt.Sprintf(TemplateAIError, apiErr.Message), err
		case errors.Is(err, huggingface.ErrUnexpectedResponse):
			return AnswerNotUnderstood, err
		default:
			return AnswerFallbackApology, fmt.Errorf("%s: %w", LogPrefixFallback, err)
		}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return AnswerNotUnderstood, nil
	}
	return text, nil
}
