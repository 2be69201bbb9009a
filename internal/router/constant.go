package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Keyword sets. Matching is plain substring search on the lower-cased message.
var (
	keywordsSavings   = []string{"savings"}
	keywordsTrend     = []string{"trend"}
	keywordsTip       = []string{"tip", "advice", "health"}
	keywordsLastWeek  = []string{"last week", "past week", "previous week"}
	keywordsLastMonth = []string{"last month", "past month", "previous month"}
	keywordsExpenses  = []string{"expenses"}
	keywordsSpending  = []string{"payment", "payments", "spending", "spent"}
	keywordsThisMonth = []string{"this month"}
)

// rules is evaluated top to bottom and the first match wins.
// Earlier rules shadow later ones on overlapping phrasing, so
// "spending trend this month" is a trend question and
// "savings compared to last month" is a savings question.
var rules = []rule{
	{intent: IntentSavings, match: containsAny(keywordsSavings...)},
	{intent: IntentTrend, match: containsAny(keywordsTrend...)},
	{intent: IntentTip, match: containsAny(keywordsTip...)},
	{intent: IntentLastWeek, match: containsAny(keywordsLastWeek...)},
	{intent: IntentLastMonth, match: containsAny(keywordsLastMonth...)},
	{intent: IntentExpensesThisMonth, match: allOf(containsAny(keywordsExpenses...), containsAny(keywordsThisMonth...))},
	{intent: IntentSpendingThisMonth, match: allOf(containsAny(keywordsSpending...), containsAny(keywordsThisMonth...))},
}
