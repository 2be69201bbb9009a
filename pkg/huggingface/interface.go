package huggingface

import "context"

// IHuggingFace defines the Hugging Face inference API client.
// Each client is bound to one model URL. Implementations are safe for concurrent use.
type IHuggingFace interface {
	// GenerateText posts {"inputs": inputs} and returns the first generated_text.
	GenerateText(ctx context.Context, inputs string) (string, error)

	// ZeroShotClassify scores text against candidate labels, highest score first.
	ZeroShotClassify(ctx context.Context, text string, labels []string) ([]LabelScore, error)

	// Model returns the model URL the client is bound to
	Model() string
}

// New creates a new Hugging Face client with the given configuration
func New(cfg Config) (IHuggingFace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newHuggingFaceImpl(cfg), nil
}
