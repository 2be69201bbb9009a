package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository is the composed interface for the chatbot data store.
type Repository interface {
	SpendingRepository

	// Ping checks that the underlying store is reachable.
	Ping(ctx context.Context) error
}

// SpendingRepository sums stored amounts over a date range.
type SpendingRepository interface {
	// SumAmount returns the total amount in the ledger within [From, To).
	// An empty range yields zero, never an error.
	SumAmount(ctx context.Context, opt SumAmountOptions) (decimal.Decimal, error)
}
