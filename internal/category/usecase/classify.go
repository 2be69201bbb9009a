package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"finance-assistant/internal/category"
	"finance-assistant/pkg/huggingface"
	"finance-assistant/pkg/rabbitmq"
)

const (
	sourceModel = "model"
	sourceCache = "cache"
)

// Classify returns the highest-scored in-vocabulary label for the description.
func (uc *implUseCase) Classify(ctx context.Context, input category.ClassifyInput) (category.ClassifyOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return category.ClassifyOutput{}, category.ErrInvalidInput
	}

	if uc.cache != nil {
		if out, ok := uc.cache.Get(description); ok {
			out.Cached = true
			uc.record(ctx, description, out, sourceCache)
			return out, nil
		}
	}

	results, err := uc.classifier.ZeroShotClassify(ctx, description, uc.candidates)
	if err != nil {
		classifierErrorsTotal.Inc()
		uc.l.Errorf(ctx, "category.usecase.Classify: %v", err)
		return category.ClassifyOutput{}, fmt.Errorf("%w: %w", category.ErrClassifierUnavailable, err)
	}

	out, err := uc.pick(results)
	if err != nil {
		uc.l.Errorf(ctx, "category.usecase.Classify: %v (%d results)", err, len(results))
		return category.ClassifyOutput{}, err
	}

	if uc.cache != nil {
		uc.cache.Add(description, out)
	}
	uc.record(ctx, description, out, sourceModel)
	return out, nil
}

// pick ranks results by score without trusting upstream order and
// returns the first label in the vocabulary.
func (uc *implUseCase) pick(results []huggingface.LabelScore) (category.ClassifyOutput, error) {
	ranked := make([]huggingface.LabelScore, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for _, r := range ranked {
		label := category.Label(r.Label)
		if !label.IsValid() {
			continue
		}
		if uc.cfg.MinConfidence > 0 && r.Score < uc.cfg.MinConfidence {
			label = category.LabelOther
		}
		return category.ClassifyOutput{Category: label, Score: r.Score}, nil
	}
	return category.ClassifyOutput{}, category.ErrOutOfVocabulary
}

// record writes the audit log line, the metric and, when configured, the audit event.
func (uc *implUseCase) record(ctx context.Context, description string, out category.ClassifyOutput, source string) {
	uc.l.Infof(ctx, "category: %q -> %s (score=%.3f, source=%s)", description, out.Category, out.Score, source)
	classificationsTotal.WithLabelValues(string(out.Category), source).Inc()

	if uc.publisher == nil {
		return
	}
	msg, err := rabbitmq.NewMessage(category.EventTypeClassified, category.ClassifiedEvent{
		Description: description,
		Category:    out.Category,
		Score:       out.Score,
	})
	if err == nil {
		err = uc.publisher.Publish(ctx, msg)
	}
	if err != nil {
		uc.l.Warnf(ctx, "category: audit publish failed: %v", err)
	}
}
