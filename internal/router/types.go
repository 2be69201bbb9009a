package router

// Intent represents the kind of financial question a message asks
type Intent string

const (
	IntentSavings           Intent = "savings"
	IntentTrend             Intent = "trend"
	IntentTip               Intent = "tip"
	IntentLastWeek          Intent = "last_week"
	IntentLastMonth         Intent = "last_month"
	IntentExpensesThisMonth Intent = "expenses_this_month"
	IntentSpendingThisMonth Intent = "spending_this_month"
	IntentFallback          Intent = "fallback"
)

// IsDeterministic reports whether the intent is answered from stored data or the tip list
// rather than the generative fallback.
func (i Intent) IsDeterministic() bool {
	return i != IntentFallback && i != ""
}

// Output is the result of classifying one message
type Output struct {
	Intent     Intent `json:"intent"`
	Normalized string `json:"normalized"` // Lower-cased message the predicates ran against
}

// rule pairs an intent with the predicate that selects it
type rule struct {
	intent Intent
	match  func(normalized string) bool
}
