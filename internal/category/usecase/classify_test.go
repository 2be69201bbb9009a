package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"finance-assistant/internal/category"
	"finance-assistant/pkg/huggingface"
	"finance-assistant/pkg/log"
	"finance-assistant/pkg/rabbitmq"
)

// mockClassifier is a test implementation of Classifier
type mockClassifier struct {
	mu      sync.Mutex
	results []huggingface.LabelScore
	err     error
	calls   int
	labels  []string
}

func (m *mockClassifier) ZeroShotClassify(ctx context.Context, text string, labels []string) ([]huggingface.LabelScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.labels = labels
	return m.results, m.err
}

// mockPublisher records published audit events
type mockPublisher struct {
	mu   sync.Mutex
	msgs []rabbitmq.Message
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, msg rabbitmq.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return m.err
}

func newTestUseCase(t *testing.T, c Classifier, p Publisher, cfg Config) *implUseCase {
	t.Helper()
	uc, err := New(c, p, log.NewNop(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

func TestClassify(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		clf := &mockClassifier{results: []huggingface.LabelScore{
			{Label: "Transport", Score: 0.81},
			{Label: "Travel", Score: 0.12},
		}}
		uc := newTestUseCase(t, clf, nil, Config{})

		out, err := uc.Classify(context.Background(), category.ClassifyInput{Description: "Uber ride to office"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category != "Transport" || out.Score != 0.81 {
			t.Errorf("unexpected output: %+v", out)
		}
		if len(clf.labels) != len(category.Labels) {
			t.Errorf("expected the full vocabulary as candidates, got %d labels", len(clf.labels))
		}
	})

	t.Run("Re-Ranks By Score", func(t *testing.T) {
		clf := &mockClassifier{results: []huggingface.LabelScore{
			{Label: "Other", Score: 0.10},
			{Label: "Food", Score: 0.75},
			{Label: "Groceries", Score: 0.15},
		}}
		uc := newTestUseCase(t, clf, nil, Config{})

		out, _ := uc.Classify(context.Background(), category.ClassifyInput{Description: "Pizza"})
		if out.Category != "Food" {
			t.Errorf("expected Food, got %s", out.Category)
		}
	})

	t.Run("Skips Unknown Labels", func(t *testing.T) {
		clf := &mockClassifier{results: []huggingface.LabelScore{
			{Label: "food", Score: 0.9},
			{Label: "Groceries", Score: 0.1},
		}}
		uc := newTestUseCase(t, clf, nil, Config{})

		out, _ := uc.Classify(context.Background(), category.ClassifyInput{Description: "milk"})
		if out.Category != "Groceries" {
			t.Errorf("expected Groceries, got %s", out.Category)
		}
	})

	t.Run("Out Of Vocabulary", func(t *testing.T) {
		clf := &mockClassifier{results: []huggingface.LabelScore{{Label: "Crypto", Score: 0.99}}}
		uc := newTestUseCase(t, clf, nil, Config{})

		_, err := uc.Classify(context.Background(), category.ClassifyInput{Description: "btc"})
		if !errors.Is(err, category.ErrOutOfVocabulary) {
			t.Errorf("expected ErrOutOfVocabulary, got %v", err)
		}
	})

	t.Run("Empty Description", func(t *testing.T) {
		clf := &mockClassifier{}
		uc := newTestUseCase(t, clf, nil, Config{})

		for _, d := range []string{"", "   ", "\n\t"} {
			if _, err := uc.Classify(context.Background(), category.ClassifyInput{Description: d}); !errors.Is(err, category.ErrInvalidInput) {
				t.Errorf("%q: expected ErrInvalidInput, got %v", d, err)
			}
		}
		if clf.calls != 0 {
			t.Errorf("classifier must not be called for empty input")
		}
	})

	t.Run("Classifier Failure", func(t *testing.T) {
		cause := &huggingface.APIError{StatusCode: 503, Message: "loading"}
		uc := newTestUseCase(t, &mockClassifier{err: cause}, nil, Config{})

		_, err := uc.Classify(context.Background(), category.ClassifyInput{Description: "rent"})
		if !errors.Is(err, category.ErrClassifierUnavailable) {
			t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
		}
		var apiErr *huggingface.APIError
		if !errors.As(err, &apiErr) {
			t.Errorf("expected cause to be preserved")
		}
	})
}

func TestClassify_MinConfidence(t *testing.T) {
	clf := &mockClassifier{results: []huggingface.LabelScore{{Label: "Shopping", Score: 0.2}}}

	t.Run("Disabled By Default", func(t *testing.T) {
		uc := newTestUseCase(t, clf, nil, Config{})
		out, _ := uc.Classify(context.Background(), category.ClassifyInput{Description: "misc"})
		if out.Category != "Shopping" {
			t.Errorf("expected Shopping, got %s", out.Category)
		}
	})

	t.Run("Low Score Becomes Other", func(t *testing.T) {
		uc := newTestUseCase(t, clf, nil, Config{MinConfidence: 0.5})
		out, _ := uc.Classify(context.Background(), category.ClassifyInput{Description: "misc"})
		if out.Category != category.LabelOther {
			t.Errorf("expected Other, got %s", out.Category)
		}
	})
}

func TestClassify_Cache(t *testing.T) {
	clf := &mockClassifier{results: []huggingface.LabelScore{{Label: "Rent", Score: 0.9}}}
	uc := newTestUseCase(t, clf, nil, Config{CacheSize: 10, CacheTTL: time.Minute})

	first, _ := uc.Classify(context.Background(), category.ClassifyInput{Description: "March rent"})
	second, _ := uc.Classify(context.Background(), category.ClassifyInput{Description: "  March rent "})

	if clf.calls != 1 {
		t.Errorf("expected 1 classifier call, got %d", clf.calls)
	}
	if first.Cached || !second.Cached || second.Category != "Rent" {
		t.Errorf("unexpected cache flags: first=%+v second=%+v", first, second)
	}
}

func TestClassify_Audit(t *testing.T) {
	clf := &mockClassifier{results: []huggingface.LabelScore{{Label: "Petrol", Score: 0.7}}}

	t.Run("Publishes Event", func(t *testing.T) {
		pub := &mockPublisher{}
		uc := newTestUseCase(t, clf, pub, Config{})

		if _, err := uc.Classify(context.Background(), category.ClassifyInput{Description: "Shell fuel"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pub.msgs) != 1 || pub.msgs[0].Type != category.EventTypeClassified {
			t.Fatalf("expected one classified event, got %+v", pub.msgs)
		}
		var ev category.ClassifiedEvent
		if err := json.Unmarshal(pub.msgs[0].Data, &ev); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if ev.Description != "Shell fuel" || ev.Category != "Petrol" {
			t.Errorf("unexpected event: %+v", ev)
		}
	})

	t.Run("Publish Failure Does Not Fail Classification", func(t *testing.T) {
		pub := &mockPublisher{err: errors.New("broker down")}
		uc := newTestUseCase(t, clf, pub, Config{})

		out, err := uc.Classify(context.Background(), category.ClassifyInput{Description: "Shell fuel"})
		if err != nil || out.Category != "Petrol" {
			t.Errorf("expected Petrol without error, got %+v, %v", out, err)
		}
	})
}

func TestNew_RequiresClassifier(t *testing.T) {
	if _, err := New(nil, nil, log.NewNop(), Config{}); err == nil {
		t.Error("expected error for nil classifier")
	}
}

func genLabelScore() gopter.Gen {
	labels := append(category.LabelStrings(), "Crypto", "food", "", "Misc")
	choices := make([]interface{}, len(labels))
	for i, l := range labels {
		choices[i] = l
	}
	return gopter.CombineGens(
		gen.OneConstOf(choices...),
		gen.Float64Range(0, 1),
	).Map(func(v []interface{}) huggingface.LabelScore {
		return huggingface.LabelScore{Label: v[0].(string), Score: v[1].(float64)}
	})
}

func TestProperty_ResultIsAlwaysInVocabulary(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("classification yields one known label or ErrOutOfVocabulary", prop.ForAll(
		func(results []huggingface.LabelScore, minConfidence float64) bool {
			uc := newTestUseCase(t, &mockClassifier{results: results}, nil, Config{MinConfidence: minConfidence})
			out, err := uc.Classify(context.Background(), category.ClassifyInput{Description: "anything"})
			if err != nil {
				return errors.Is(err, category.ErrOutOfVocabulary)
			}
			return out.Category.IsValid()
		},
		gen.SliceOf(genLabelScore()),
		gen.Float64Range(0, 1),
	))

	properties.Property("chosen label has the highest in-vocabulary score", prop.ForAll(
		func(results []huggingface.LabelScore) bool {
			uc := newTestUseCase(t, &mockClassifier{results: results}, nil, Config{})
			out, err := uc.Classify(context.Background(), category.ClassifyInput{Description: "anything"})
			best := -1.0
			for _, r := range results {
				if category.Label(r.Label).IsValid() && r.Score > best {
					best = r.Score
				}
			}
			if best < 0 {
				return errors.Is(err, category.ErrOutOfVocabulary)
			}
			return err == nil && out.Score == best
		},
		gen.SliceOf(genLabelScore()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
