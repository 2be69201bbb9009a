package huggingface

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// maxResponseBytes caps how much of an inference response is read into memory
	maxResponseBytes = 4 << 20
)
