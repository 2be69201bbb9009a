package test

// TestMessageRequest represents a test message request
type TestMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// TestMessageResponse represents a test message response
type TestMessageResponse struct {
	Intent        string `json:"intent"`
	Deterministic bool   `json:"deterministic"`
	Normalized    string `json:"normalized"`
	Text          string `json:"text"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
