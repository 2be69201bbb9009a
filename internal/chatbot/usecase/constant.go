package usecase

// Log prefixes
const (
	LogPrefixAnswer    = "internal.chatbot.usecase.Answer"
	LogPrefixAggregate = "internal.chatbot.usecase.aggregate"
	LogPrefixFallback  = "internal.chatbot.usecase.fallback"
)

// AmountPlaces is the number of decimal places amounts are rounded to before display.
// Stores may hand back binary floats such as 0.30000000000000004.
const AmountPlaces = 2

// Answer templates. The currency symbol is the first verb of every amount.
const (
	TemplateSavings           = "Your estimated savings this month are %[1]s%[2]s. (Budget: %[1]s%[3]s, Expenses: %[1]s%[4]s)"
	TemplateTrend             = "Your spending has %[2]s by %[1]s%[3]s compared to last month. (This month: %[1]s%[4]s, Last month: %[1]s%[5]s)"
	TemplateTip               = "Financial Health Tip: %s"
	TemplateLastWeek          = "You have spent %s%s in the last week."
	TemplateLastMonth         = "You have spent %s%s last month."
	TemplateExpensesThisMonth = "Your total expenses this month are %s%s."
	TemplateSpendingThisMonth = "You have spent %s%s this month."
	TemplateAIError           = "AI error: %s"
)

// Trend directions
const (
	TrendIncreased = "increased"
	TrendDecreased = "decreased"
	TrendSame      = "remained the same"
)

// Fixed answers for failure paths
const (
	AnswerNotUnderstood    = "Sorry, I could not understand."
	AnswerFallbackApology  = "Sorry, I could not answer that right now. Please try again later."
	AnswerDataStoreApology = "Sorry, I could not fetch your financial data right now. Please try again later."
)

// Tips is the fixed list the tip intent draws from.
var Tips = []string{
	"Track your expenses regularly to avoid overspending.",
	"Set a monthly budget and try to save at least 20% of your income.",
	"Review your subscriptions and cancel those you don't use.",
	"Plan for emergencies by building an emergency fund.",
	"Use digital tools to automate bill payments and savings.",
}

// Metric outcome labels
const (
	outcomeOK       = "ok"
	outcomeDegraded = "degraded"
)
