package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"finance-assistant/internal/chatbot/repository"
	"finance-assistant/internal/router"
	"finance-assistant/pkg/datemath"
	"finance-assistant/pkg/llmprovider"
	"finance-assistant/pkg/log"
)

// Generator produces free text for questions no intent handles.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// TipPicker returns an index in [0, n).
type TipPicker func(n int) int

// Config carries the non-dependency settings of the use case.
type Config struct {
	MonthlyBudget  float64
	CurrencySymbol string
	Timezone       string

	// Optional: defaults to a uniform random pick and time.Now.
	PickTip TipPicker
	Now     func() time.Time
}

// implUseCase is the private implementation of chatbot.UseCase.
type implUseCase struct {
	repo     repository.SpendingRepository
	router   router.Router
	fallback Generator
	l        log.Logger

	dates    *datemath.Parser
	budget   decimal.Decimal
	currency string
	pickTip  TipPicker
	now      func() time.Time
}

// New creates a new chatbot UseCase implementation.
func New(repo repository.SpendingRepository, r router.Router, fallback Generator, l log.Logger, cfg Config) (*implUseCase, error) {
	if repo == nil || r == nil || fallback == nil || l == nil {
		return nil, errors.New("chatbot usecase: repository, router, fallback and logger are required")
	}

	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	uc := &implUseCase{
		repo:     repo,
		router:   r,
		fallback: fallback,
		l:        l,
		dates:    dates,
		budget:   decimal.NewFromFloat(cfg.MonthlyBudget),
		currency: cfg.CurrencySymbol,
		pickTip:  cfg.PickTip,
		now:      cfg.Now,
	}
	if uc.pickTip == nil {
		uc.pickTip = rand.Intn
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}
