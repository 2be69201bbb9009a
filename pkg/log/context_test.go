package log_test

import (
	"context"
	"testing"

	"finance-assistant/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-123")
	if got := log.RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
}

func TestNopLogger(t *testing.T) {
	l := log.NewNop()
	ctx := log.WithRequestID(context.Background(), "req-1")

	// Must not panic on any non-terminating level.
	l.Debug(ctx, "debug")
	l.Infof(ctx, "info %d", 1)
	l.Warn(ctx, "warn", "key", "value")
	l.Errorf(ctx, "error: %v", "boom")
}
