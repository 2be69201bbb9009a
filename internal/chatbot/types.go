package chatbot

import "finance-assistant/internal/router"

// Period names a reporting window an aggregate is computed over.
type Period string

const (
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
	PeriodLastWeek  Period = "last_week"
)

// Ledger names one of the two logical tables amounts are summed from.
type Ledger string

const (
	LedgerExpenses Ledger = "expenses"
	LedgerPayments Ledger = "payments"
)

// --- UseCase Inputs ---

type AnswerInput struct {
	Message string
}

// --- UseCase Outputs ---

type AnswerOutput struct {
	Answer string
	Intent router.Intent
}
