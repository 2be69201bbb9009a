package postgre

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	repo "finance-assistant/internal/chatbot/repository"
)

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
