package router

import (
	"context"
	"strings"
)

// Classify determines the intent of message and logs the decision
func (r *KeywordRouter) Classify(ctx context.Context, message string) Output {
	output := Classify(message)
	r.l.Debugf(ctx, "%s: Classified as %s", LogPrefixClassify, output.Intent)
	return output
}

// Classify is the pure classification function behind KeywordRouter.
// It never fails: a message no rule accepts is a fallback question.
func Classify(message string) Output {
	normalized := strings.ToLower(message)
	for _, rl := range rules {
		if rl.match(normalized) {
			return Output{Intent: rl.intent, Normalized: normalized}
		}
	}
	return Output{Intent: IntentFallback, Normalized: normalized}
}

// Intents lists every intent in evaluation order, fallback last.
func Intents() []Intent {
	out := make([]Intent, 0, len(rules)+1)
	for _, rl := range rules {
		out = append(out, rl.intent)
	}
	return append(out, IntentFallback)
}

func containsAny(keywords ...string) func(string) bool {
	return func(s string) bool {
		for _, kw := range keywords {
			if strings.Contains(s, kw) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}
