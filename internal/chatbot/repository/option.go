package repository

import (
	"time"

	"finance-assistant/internal/chatbot"
)

// DateLayout is the calendar-date form range bounds are bound as.
const DateLayout = "2006-01-02"

// SumAmountOptions selects the ledger and the half-open date range to sum.
// Only the calendar date of From and To is used.
type SumAmountOptions struct {
	Ledger chatbot.Ledger
	From   time.Time
	To     time.Time
}

// Source is the physical table and date column backing a ledger.
type Source struct {
	Table      string
	DateColumn string
}

var sources = map[chatbot.Ledger]Source{
	chatbot.LedgerExpenses: {Table: "expenses", DateColumn: "date"},
	chatbot.LedgerPayments: {Table: "payments", DateColumn: "payment_date"},
}

// SourceOf resolves the table backing a ledger.
func SourceOf(ledger chatbot.Ledger) (Source, error) {
	src, ok := sources[ledger]
	if !ok {
		return Source{}, ErrUnsupportedLedger
	}
	return src, nil
}
