package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finance-assistant/internal/chatbot"
	"finance-assistant/internal/chatbot/repository"
	"finance-assistant/pkg/datemath"
)

// aggregate sums a ledger over a named period relative to today in the configured timezone.
func (uc *implUseCase) aggregate(ctx context.Context, ledger chatbot.Ledger, period chatbot.Period) (decimal.Decimal, error) {
	rng, err := uc.dates.Range(string(period), uc.now())
	if err != nil {
		if errors.Is(err, datemath.ErrUnknownPeriod) {
			return decimal.Zero, fmt.Errorf("%s: %w: %q", LogPrefixAggregate, chatbot.ErrUnsupportedPeriod, period)
		}
		return decimal.Zero, err
	}

	start := time.Now()
	total, err := uc.repo.SumAmount(ctx, repository.SumAmountOptions{
		Ledger: ledger,
		From:   rng.From,
		To:     rng.To,
	})
	aggregateLatency.WithLabelValues(string(ledger)).Observe(time.Since(start).Seconds())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %s %s: %w", LogPrefixAggregate, ledger, period, err)
	}
	total = total.Round(AmountPlaces)

	uc.l.Debugf(ctx, "%s: %s %s [%s, %s) = %s", LogPrefixAggregate, ledger, period,
		rng.From.Format(repository.DateLayout), rng.To.Format(repository.DateLayout), total)
	return total, nil
}
