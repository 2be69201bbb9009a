package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/tidwall/gjson"
)

// newHuggingFaceImpl creates a new Hugging Face implementation
func newHuggingFaceImpl(cfg Config) *huggingFaceImpl {
	return &huggingFaceImpl{
		url:        cfg.URL,
		apiToken:   cfg.APIToken,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateText sends a text-generation request.
// The endpoint answers either [{"generated_text": "..."}] or {"error": "..."},
// and does so regardless of the HTTP status code, so the body shape decides.
func (h *huggingFaceImpl) GenerateText(ctx context.Context, inputs string) (string, error) {
	status, body, err := h.post(ctx, generateRequest{Inputs: inputs})
	if err != nil {
		return "", err
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		if text := root.Get("0.generated_text"); text.Exists() {
			return text.String(), nil
		}
	}
	if apiErr := parseAPIError(status, root); apiErr != nil {
		return "", apiErr
	}
	return "", ErrUnexpectedResponse
}

// ZeroShotClassify sends a zero-shot-classification request.
// Both the legacy {"labels": [...], "scores": [...]} and the newer
// [{"label": "...", "score": 0.9}] shapes are accepted.
func (h *huggingFaceImpl) ZeroShotClassify(ctx context.Context, text string, labels []string) ([]LabelScore, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("huggingface: no candidate labels provided")
	}

	status, body, err := h.post(ctx, zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	})
	if err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(body)
	if apiErr := parseAPIError(status, root); apiErr != nil {
		return nil, apiErr
	}

	var results []LabelScore
	switch {
	case root.IsObject() && root.Get("labels").IsArray():
		names := root.Get("labels").Array()
		scores := root.Get("scores").Array()
		if len(names) != len(scores) {
			return nil, fmt.Errorf("%w: %d labels but %d scores", ErrUnexpectedResponse, len(names), len(scores))
		}
		for i := range names {
			results = append(results, LabelScore{Label: names[i].String(), Score: scores[i].Float()})
		}
	case root.IsArray():
		for _, item := range root.Array() {
			if !item.Get("label").Exists() {
				return nil, ErrUnexpectedResponse
			}
			results = append(results, LabelScore{Label: item.Get("label").String(), Score: item.Get("score").Float()})
		}
	default:
		return nil, ErrUnexpectedResponse
	}

	if len(results) == 0 {
		return nil, ErrUnexpectedResponse
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// Model returns the model URL the client is bound to
func (h *huggingFaceImpl) Model() string {
	return h.url
}

// post marshals payload, calls the model URL and returns the status and a JSON-valid body.
func (h *huggingFaceImpl) post(ctx context.Context, payload any) (int, []byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewBuffer(reqBody))
	if err != nil {
		return 0, nil, fmt.Errorf("huggingface: failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if h.apiToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.apiToken)
	}

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("huggingface: API call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("huggingface: failed to read response: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return resp.StatusCode, nil, fmt.Errorf("%w (status %d)", ErrMalformedResponse, resp.StatusCode)
	}
	return resp.StatusCode, body, nil
}

func parseAPIError(status int, root gjson.Result) *APIError {
	if !root.IsObject() {
		return nil
	}
	msg := root.Get("error")
	if !msg.Exists() {
		return nil
	}
	return &APIError{StatusCode: status, Message: msg.String()}
}
