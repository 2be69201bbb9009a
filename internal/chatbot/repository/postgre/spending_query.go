package postgre

import (
	"fmt"

	"finance-assistant/internal/chatbot"
	repo "finance-assistant/internal/chatbot/repository"
)

// sumQueries holds one fixed statement per ledger. Range bounds are always bound parameters.
var sumQueries = map[chatbot.Ledger]string{
	chatbot.LedgerExpenses: buildSumQuery(chatbot.LedgerExpenses),
	chatbot.LedgerPayments: buildSumQuery(chatbot.LedgerPayments),
}

func buildSumQuery(ledger chatbot.Ledger) string {
	src, err := repo.SourceOf(ledger)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf(
		`SELECT COALESCE(SUM(amount), 0) FROM %s WHERE %s >= $1::date AND %s < $2::date`,
		src.Table, src.DateColumn, src.DateColumn,
	)
}
