package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"finance-assistant/internal/category"
	"finance-assistant/pkg/huggingface"
	"finance-assistant/pkg/log"
	"finance-assistant/pkg/rabbitmq"
)

// Classifier scores text against candidate labels.
// huggingface.IHuggingFace satisfies it.
type Classifier interface {
	ZeroShotClassify(ctx context.Context, text string, labels []string) ([]huggingface.LabelScore, error)
}

// Publisher sends audit events. rabbitmq.IPublisher satisfies it.
type Publisher interface {
	Publish(ctx context.Context, msg rabbitmq.Message) error
}

// Config carries the classification policy.
type Config struct {
	// MinConfidence maps a top score below it to Other. Zero disables the check.
	MinConfidence float64
	CacheSize     int
	CacheTTL      time.Duration
}

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	classifier Classifier
	publisher  Publisher
	l          log.Logger
	cfg        Config
	cache      *expirable.LRU[string, category.ClassifyOutput]
	candidates []string
}

// New creates a new category UseCase implementation.
// publisher may be nil to disable audit events; CacheSize <= 0 disables caching.
func New(classifier Classifier, publisher Publisher, l log.Logger, cfg Config) (*implUseCase, error) {
	if classifier == nil || l == nil {
		return nil, errors.New("category usecase: classifier and logger are required")
	}

	uc := &implUseCase{
		classifier: classifier,
		publisher:  publisher,
		l:          l,
		cfg:        cfg,
		candidates: category.LabelStrings(),
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, category.ClassifyOutput](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc, nil
}
