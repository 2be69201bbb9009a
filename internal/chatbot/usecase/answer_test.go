package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finance-assistant/internal/chatbot"
	"finance-assistant/internal/chatbot/repository"
	chatbotSQLite "finance-assistant/internal/chatbot/repository/sqlite"
	"finance-assistant/internal/router"
	"finance-assistant/pkg/datemath"
	"finance-assistant/pkg/huggingface"
	"finance-assistant/pkg/llmprovider"
	"finance-assistant/pkg/log"
)

// mockRepo returns fixed totals per ledger and period start, and records every call
type mockRepo struct {
	mu     sync.Mutex
	totals map[string]decimal.Decimal
	err    error
	calls  []repository.SumAmountOptions
}

func (m *mockRepo) SumAmount(ctx context.Context, opt repository.SumAmountOptions) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, opt)
	if m.err != nil {
		return decimal.Zero, m.err
	}
	return m.totals[key(opt.Ledger, opt.From)], nil
}

func key(ledger chatbot.Ledger, from time.Time) string {
	return fmt.Sprintf("%s@%s", ledger, from.Format(repository.DateLayout))
}

// mockGenerator is a test implementation of Generator
type mockGenerator struct {
	text   string
	err    error
	delay  time.Duration
	prompt string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.prompt = req.Prompt
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

var kolkata, _ = time.LoadLocation("Asia/Kolkata")

// 2025-03-15 is a Saturday; the last-week window is [2025-03-08, 2025-03-16).
var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, kolkata)

func newTestUseCase(t *testing.T, repo *mockRepo, gen Generator) *implUseCase {
	t.Helper()
	uc, err := New(repo, router.New(log.NewNop()), gen, log.NewNop(), Config{
		MonthlyBudget:  10000,
		CurrencySymbol: "₹",
		Timezone:       "Asia/Kolkata",
		PickTip:        func(n int) int { return n - 1 },
		Now:            func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, kolkata)
}

func TestAnswer_Deterministic(t *testing.T) {
	repo := &mockRepo{totals: map[string]decimal.Decimal{
		key(chatbot.LedgerExpenses, day(2025, 3, 1)): decimal.NewFromInt(4200),
		key(chatbot.LedgerExpenses, day(2025, 2, 1)): decimal.NewFromInt(5000),
		key(chatbot.LedgerPayments, day(2025, 3, 8)): decimal.NewFromInt(500),
		key(chatbot.LedgerPayments, day(2025, 2, 1)): decimal.RequireFromString("1234.5"),
		key(chatbot.LedgerPayments, day(2025, 3, 1)): decimal.NewFromInt(3100),
	}}
	uc := newTestUseCase(t, repo, &mockGenerator{text: "unused"})

	tests := []struct {
		message string
		intent  router.Intent
		want    string
	}{
		{"What are my savings?", router.IntentSavings, "Your estimated savings this month are ₹5800. (Budget: ₹10000, Expenses: ₹4200)"},
		{"What is my spending trend this month?", router.IntentTrend, "Your spending has decreased by ₹800 compared to last month. (This month: ₹4200, Last month: ₹5000)"},
		{"How much did I spend last week?", router.IntentLastWeek, "You have spent ₹500 in the last week."},
		{"How much did I spend last month?", router.IntentLastMonth, "You have spent ₹1234.5 last month."},
		{"What are my expenses this month?", router.IntentExpensesThisMonth, "Your total expenses this month are ₹4200."},
		{"How much have I spent this month?", router.IntentSpendingThisMonth, "You have spent ₹3100 this month."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			out, err := uc.Answer(context.Background(), chatbot.AnswerInput{Message: tt.message})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Intent != tt.intent {
				t.Errorf("expected intent %s, got %s", tt.intent, out.Intent)
			}
			if out.Answer != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out.Answer)
			}
		})
	}
}

func TestAnswer_LastWeekRange(t *testing.T) {
	repo := &mockRepo{totals: map[string]decimal.Decimal{
		key(chatbot.LedgerPayments, day(2025, 3, 8)): decimal.NewFromInt(500),
	}}
	uc := newTestUseCase(t, repo, &mockGenerator{})

	out, _ := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "How much did I spend last week?"})
	if out.Answer != "You have spent ₹500 in the last week." {
		t.Errorf("unexpected answer: %q", out.Answer)
	}

	if len(repo.calls) != 1 {
		t.Fatalf("expected 1 read, got %d", len(repo.calls))
	}
	call := repo.calls[0]
	if call.Ledger != chatbot.LedgerPayments || !call.From.Equal(day(2025, 3, 8)) || !call.To.Equal(day(2025, 3, 16)) {
		t.Errorf("unexpected read: %+v", call)
	}
}

func TestAnswer_TrendReadsTwice(t *testing.T) {
	cases := []struct {
		this, last int64
		direction  string
	}{
		{700, 500, TrendIncreased},
		{500, 700, TrendDecreased},
		{500, 500, TrendSame},
	}

	for _, c := range cases {
		t.Run(c.direction, func(t *testing.T) {
			repo := &mockRepo{totals: map[string]decimal.Decimal{
				key(chatbot.LedgerExpenses, day(2025, 3, 1)): decimal.NewFromInt(c.this),
				key(chatbot.LedgerExpenses, day(2025, 2, 1)): decimal.NewFromInt(c.last),
			}}
			uc := newTestUseCase(t, repo, &mockGenerator{})

			out, _ := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "show my trend"})

			if len(repo.calls) != 2 {
				t.Fatalf("expected exactly 2 reads, got %d", len(repo.calls))
			}
			if !repo.calls[0].From.Equal(day(2025, 3, 1)) || !repo.calls[1].From.Equal(day(2025, 2, 1)) {
				t.Errorf("expected this month then last month, got %+v", repo.calls)
			}
			for _, call := range repo.calls {
				if call.Ledger != chatbot.LedgerExpenses {
					t.Errorf("trend must read expenses, got %s", call.Ledger)
				}
			}
			if !strings.HasPrefix(out.Answer, "Your spending has "+c.direction+" by ₹") {
				t.Errorf("unexpected answer: %q", out.Answer)
			}
		})
	}
}

func TestAnswer_TipsComeFromFixedList(t *testing.T) {
	repo := &mockRepo{}
	gen := &mockGenerator{}
	uc := newTestUseCase(t, repo, gen)

	for i := range Tips {
		idx := i
		uc.pickTip = func(n int) int { return idx }

		out, err := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "Give me a health tip"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Answer != "Financial Health Tip: "+Tips[idx] {
			t.Errorf("unexpected answer: %q", out.Answer)
		}
	}

	if len(repo.calls) != 0 || gen.prompt != "" {
		t.Error("tip intent must not touch the store or the fallback")
	}
}

func TestAnswer_DataStoreFailure(t *testing.T) {
	repo := &mockRepo{err: fmt.Errorf("%w: connection refused", repository.ErrFailedToAggregate)}
	uc := newTestUseCase(t, repo, &mockGenerator{})

	for _, msg := range []string{"my savings", "trend", "last week", "last month", "expenses this month", "spent this month"} {
		out, err := uc.Answer(context.Background(), chatbot.AnswerInput{Message: msg})
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", msg, err)
		}
		if out.Answer != AnswerDataStoreApology {
			t.Errorf("%q: expected data apology, got %q", msg, out.Answer)
		}
	}
}

func TestAnswer_Fallback(t *testing.T) {
	t.Run("Relays Original Text", func(t *testing.T) {
		gen := &mockGenerator{text: "  A mutual fund pools money from investors.  "}
		uc := newTestUseCase(t, &mockRepo{}, gen)

		out, err := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "What is a Mutual Fund?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.prompt != "What is a Mutual Fund?" {
			t.Errorf("expected original casing, got %q", gen.prompt)
		}
		if out.Intent != router.IntentFallback || out.Answer != "A mutual fund pools money from investors." {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{}, &mockGenerator{text: "   "})
		out, _ := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "hello"})
		if out.Answer != AnswerNotUnderstood {
			t.Errorf("unexpected answer: %q", out.Answer)
		}
	})

	t.Run("API Error Is Relayed", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", llmprovider.ErrAllProvidersFailed,
			&llmprovider.ProviderError{Provider: "huggingface", Err: &huggingface.APIError{StatusCode: 503, Message: "Model is loading"}})
		uc := newTestUseCase(t, &mockRepo{}, &mockGenerator{err: err})

		out, _ := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "hello"})
		if out.Answer != "AI error: Model is loading" {
			t.Errorf("unexpected answer: %q", out.Answer)
		}
	})

	t.Run("Unexpected Shape", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{}, &mockGenerator{err: huggingface.ErrUnexpectedResponse})
		out, _ := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "hello"})
		if out.Answer != AnswerNotUnderstood {
			t.Errorf("unexpected answer: %q", out.Answer)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		gen := &mockGenerator{delay: time.Second, text: "too late"}
		uc := newTestUseCase(t, &mockRepo{}, gen)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		out, err := uc.Answer(ctx, chatbot.AnswerInput{Message: "Explain compound interest"})
		if err != nil {
			t.Fatalf("timeout must not surface as an error, got %v", err)
		}
		if out.Answer != "Sorry, I could not answer that right now. Please try again later." {
			t.Errorf("unexpected answer: %q", out.Answer)
		}
	})

	t.Run("Manager Timeout", func(t *testing.T) {
		slow := &mockGenerator{delay: time.Second, text: "too late"}
		manager := llmprovider.NewManager([]llmprovider.Provider{providerFunc(slow.GenerateContent)}, &llmprovider.Config{
			RetryAttempts:   1,
			MaxTotalTimeout: 20 * time.Millisecond,
		}, log.NewNop())
		uc := newTestUseCase(t, &mockRepo{}, manager)

		out, err := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "Explain compound interest"})
		if err != nil || out.Answer != AnswerFallbackApology {
			t.Errorf("expected apology without error, got %q, %v", out.Answer, err)
		}
	})
}

// providerFunc adapts a function to llmprovider.Provider
type providerFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)

func (f providerFunc) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return f(ctx, req)
}
func (f providerFunc) Name() string  { return "func" }
func (f providerFunc) Model() string { return "func" }

func TestAggregate_UnsupportedPeriod(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(t, repo, &mockGenerator{})

	_, err := uc.aggregate(context.Background(), chatbot.LedgerExpenses, "yesterday")
	if !errors.Is(err, chatbot.ErrUnsupportedPeriod) {
		t.Fatalf("expected ErrUnsupportedPeriod, got %v", err)
	}
	if len(repo.calls) != 0 {
		t.Error("no read expected for an unsupported period")
	}
}

func TestAnswer_Concurrent(t *testing.T) {
	repo := &mockRepo{totals: map[string]decimal.Decimal{
		key(chatbot.LedgerPayments, day(2025, 3, 8)): decimal.NewFromInt(500),
	}}
	uc := newTestUseCase(t, repo, &mockGenerator{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, _ := uc.Answer(context.Background(), chatbot.AnswerInput{Message: "last week"})
			if out.Answer != "You have spent ₹500 in the last week." {
				t.Errorf("unexpected answer: %q", out.Answer)
			}
		}()
	}
	wg.Wait()
}

func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := New(nil, router.New(log.NewNop()), &mockGenerator{}, log.NewNop(), Config{Timezone: "UTC"}); err == nil {
		t.Error("expected error for nil repository")
	}
	if _, err := New(&mockRepo{}, router.New(log.NewNop()), &mockGenerator{}, log.NewNop(), Config{Timezone: "Mars/Olympus"}); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestAnswer_RoundsFloatSums(t *testing.T) {
	repo := &mockRepo{totals: map[string]decimal.Decimal{
		key(chatbot.LedgerExpenses, day(2025, 3, 1)): decimal.RequireFromString("0.30000000000000004"),
		key(chatbot.LedgerExpenses, day(2025, 2, 1)): decimal.RequireFromString("0.1"),
	}}
	uc := newTestUseCase(t, repo, &mockGenerator{})

	tests := []struct {
		message string
		want    string
	}{
		{"What are my expenses this month?", "Your total expenses this month are ₹0.3."},
		{"my savings", "Your estimated savings this month are ₹9999.7. (Budget: ₹10000, Expenses: ₹0.3)"},
		{"trend", "Your spending has increased by ₹0.2 compared to last month. (This month: ₹0.3, Last month: ₹0.1)"},
	}

	for _, tt := range tests {
		out, _ := uc.Answer(context.Background(), chatbot.AnswerInput{Message: tt.message})
		if out.Answer != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.message, tt.want, out.Answer)
		}
	}
}

func TestAnswer_SQLiteStore(t *testing.T) {
	db, err := sql.Open(chatbotSQLite.DriverName, filepath.Join(t.TempDir(), "finance.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer db.Close()
	if err := chatbotSQLite.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, stmt := range []string{
		`INSERT INTO expenses (amount, date) VALUES (0.1, '2025-03-02')`,
		`INSERT INTO expenses (amount, date) VALUES (0.2, '2025-03-03')`,
		`INSERT INTO payments (amount, payment_date) VALUES (120, '2025-03-07')`,
		`INSERT INTO payments (amount, payment_date) VALUES (80, '2025-03-08')`,
		`INSERT INTO payments (amount, payment_date) VALUES (45.5, '2025-03-15')`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed %q: %v", stmt, err)
		}
	}

	uc, err := New(chatbotSQLite.New(db, log.NewNop()), router.New(log.NewNop()), &mockGenerator{}, log.NewNop(), Config{
		MonthlyBudget:  10000,
		CurrencySymbol: "₹",
		Timezone:       "Asia/Kolkata",
		Now:            func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		message string
		want    string
	}{
		{"What are my expenses this month?", "Your total expenses this month are ₹0.3."},
		{"How much did I spend last week?", "You have spent ₹125.5 in the last week."},
		{"How much have I spent this month?", "You have spent ₹245.5 this month."},
	}

	for _, tt := range tests {
		out, err := uc.Answer(context.Background(), chatbot.AnswerInput{Message: tt.message})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Answer != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.message, tt.want, out.Answer)
		}
	}
}

func TestAggregate_RangesAroundToday(t *testing.T) {
	tests := []struct {
		period       chatbot.Period
		containsNow  bool
		alsoContains time.Time
	}{
		{chatbot.PeriodThisMonth, true, day(2025, 3, 31)},
		{chatbot.PeriodLastWeek, true, day(2025, 3, 8)},
		{chatbot.PeriodLastMonth, false, day(2025, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			repo := &mockRepo{}
			uc := newTestUseCase(t, repo, &mockGenerator{})

			if _, err := uc.aggregate(context.Background(), chatbot.LedgerExpenses, tt.period); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(repo.calls) != 1 {
				t.Fatalf("expected 1 read, got %d", len(repo.calls))
			}

			rng := datemath.Range{From: repo.calls[0].From, To: repo.calls[0].To}
			if rng.Contains(fixedNow) != tt.containsNow {
				t.Errorf("range %v contains now: expected %t", rng, tt.containsNow)
			}
			if !rng.Contains(tt.alsoContains) {
				t.Errorf("range %v should contain %s", rng, tt.alsoContains)
			}
			if rng.Contains(rng.To) {
				t.Errorf("range %v must exclude its upper bound", rng)
			}
		})
	}
}
