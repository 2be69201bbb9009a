package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"finance-assistant/internal/chatbot"
	"finance-assistant/internal/router"
)

// Answer classifies the message and produces exactly one answer for it.
func (uc *implUseCase) Answer(ctx context.Context, input chatbot.AnswerInput) (chatbot.AnswerOutput, error) {
	route := uc.router.Classify(ctx, input.Message)

	var (
		answer string
		err    error
	)
	switch route.Intent {
	case router.IntentSavings:
		answer, err = uc.answerSavings(ctx)
	case router.IntentTrend:
		answer, err = uc.answerTrend(ctx)
	case router.IntentTip:
		answer = uc.answerTip()
	case router.IntentLastWeek:
		answer, err = uc.answerTotal(ctx, chatbot.LedgerPayments, chatbot.PeriodLastWeek, TemplateLastWeek)
	case router.IntentLastMonth:
		answer, err = uc.answerTotal(ctx, chatbot.LedgerPayments, chatbot.PeriodLastMonth, TemplateLastMonth)
	case router.IntentExpensesThisMonth:
		answer, err = uc.answerTotal(ctx, chatbot.LedgerExpenses, chatbot.PeriodThisMonth, TemplateExpensesThisMonth)
	case router.IntentSpendingThisMonth:
		answer, err = uc.answerTotal(ctx, chatbot.LedgerPayments, chatbot.PeriodThisMonth, TemplateSpendingThisMonth)
	default:
		// The fallback sees the message as typed, not the lower-cased form.
		answer, err = uc.relay(ctx, input.Message)
	}

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeDegraded
		if errors.Is(err, chatbot.ErrUnsupportedPeriod) {
			uc.l.Errorf(ctx, "%s: intent %s: %v", LogPrefixAnswer, route.Intent, err)
		} else {
			uc.l.Warnf(ctx, "%s: intent %s: %v", LogPrefixAnswer, route.Intent, err)
		}
	}
	answersTotal.WithLabelValues(string(route.Intent), outcome).Inc()

	return chatbot.AnswerOutput{
		Answer: answer,
		Intent: route.Intent,
	}, nil
}

func (uc *implUseCase) answerSavings(ctx context.Context) (string, error) {
	expenses, err := uc.aggregate(ctx, chatbot.LedgerExpenses, chatbot.PeriodThisMonth)
	if err != nil {
		return AnswerDataStoreApology, err
	}
	savings := uc.budget.Sub(expenses)
	return fmt.Sprintf(TemplateSavings, uc.currency, savings, uc.budget, expenses), nil
}

// answerTrend reads this month and last month one after the other.
// The two reads are not isolated from concurrent writes.
func (uc *implUseCase) answerTrend(ctx context.Context) (string, error) {
	thisMonth, err := uc.aggregate(ctx, chatbot.LedgerExpenses, chatbot.PeriodThisMonth)
	if err != nil {
		return AnswerDataStoreApology, err
	}
	lastMonth, err := uc.aggregate(ctx, chatbot.LedgerExpenses, chatbot.PeriodLastMonth)
	if err != nil {
		return AnswerDataStoreApology, err
	}

	diff := thisMonth.Sub(lastMonth)
	return fmt.Sprintf(TemplateTrend, uc.currency, trendOf(diff), diff.Abs(), thisMonth, lastMonth), nil
}

func (uc *implUseCase) answerTip() string {
	return fmt.Sprintf(TemplateTip, Tips[uc.pickTip(len(Tips))])
}

func (uc *implUseCase) answerTotal(ctx context.Context, ledger chatbot.Ledger, period chatbot.Period, template string) (string, error) {
	total, err := uc.aggregate(ctx, ledger, period)
	if err != nil {
		return AnswerDataStoreApology, err
	}
	return fmt.Sprintf(template, uc.currency, total), nil
}

func trendOf(diff decimal.Decimal) string {
	switch diff.Sign() {
	case 1:
		return TrendIncreased
	case -1:
		return TrendDecreased
	default:
		return TrendSame
	}
}
