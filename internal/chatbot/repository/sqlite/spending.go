package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"finance-assistant/internal/chatbot"
	repo "finance-assistant/internal/chatbot/repository"
)

// Dates are stored as YYYY-MM-DD text, so lexical comparison is calendar order.
var sumQueries = map[chatbot.Ledger]string{
	chatbot.LedgerExpenses: `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date >= ? AND date < ?`,
	chatbot.LedgerPayments: `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE payment_date >= ? AND payment_date < ?`,
}

// SumAmount returns COALESCE(SUM(amount), 0) over [From, To) for the ledger.
func (r *implRepository) SumAmount(ctx context.Context, opt repo.SumAmountOptions) (decimal.Decimal, error) {
	query, ok := sumQueries[opt.Ledger]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", repo.ErrUnsupportedLedger, opt.Ledger)
	}

	var total decimal.NullDecimal
	err := r.db.QueryRowContext(ctx, query,
		opt.From.Format(repo.DateLayout),
		opt.To.Format(repo.DateLayout),
	).Scan(&total)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SumAmount"), err)
		return decimal.Zero, fmt.Errorf("%w: %w", repo.ErrFailedToAggregate, err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
