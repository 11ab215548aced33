package stats

import (
	"context"
	"strings"
	"testing"
	"time"
)

// MockReader is a mock implementation of Reader interface
type MockReader struct {
	TotalsByTypeFunc       func(ctx context.Context, p Period) (Totals, error)
	ExpenseByCategoryFunc  func(ctx context.Context, p Period) ([]CategoryExpense, error)
	DailySeriesFunc        func(ctx context.Context, since time.Time) ([]DayTotals, error)
	WalletBalancesFunc     func(ctx context.Context) ([]WalletBalance, error)
	PeriodTransactionsFunc func(ctx context.Context, p Period) ([]ReviewTransaction, error)
}

func (m *MockReader) TotalsByType(ctx context.Context, p Period) (Totals, error) {
	if m.TotalsByTypeFunc != nil {
		return m.TotalsByTypeFunc(ctx, p)
	}
	return Totals{}, nil
}

func (m *MockReader) ExpenseByCategory(ctx context.Context, p Period) ([]CategoryExpense, error) {
	if m.ExpenseByCategoryFunc != nil {
		return m.ExpenseByCategoryFunc(ctx, p)
	}
	return nil, nil
}

func (m *MockReader) DailySeries(ctx context.Context, since time.Time) ([]DayTotals, error) {
	if m.DailySeriesFunc != nil {
		return m.DailySeriesFunc(ctx, since)
	}
	return nil, nil
}

func (m *MockReader) WalletBalances(ctx context.Context) ([]WalletBalance, error) {
	if m.WalletBalancesFunc != nil {
		return m.WalletBalancesFunc(ctx)
	}
	return nil, nil
}

func (m *MockReader) PeriodTransactions(ctx context.Context, p Period) ([]ReviewTransaction, error) {
	if m.PeriodTransactionsFunc != nil {
		return m.PeriodTransactionsFunc(ctx, p)
	}
	return nil, nil
}

func fl(v float64) *float64 { return &v }
func sp(s string) *string   { return &s }

func TestOverview_TotalsAndDerived(t *testing.T) {
	reader := &MockReader{
		TotalsByTypeFunc: func(ctx context.Context, p Period) (Totals, error) {
			// expense deleted in the source scenario, so it reports zero
			return Totals{Income: 1000, Transfer: 300}, nil
		},
		WalletBalancesFunc: func(ctx context.Context) ([]WalletBalance, error) {
			return []WalletBalance{
				{ID: "a", Name: "Efectivo", Currency: "COP", Balance: 700},
				{ID: "b", Name: "Banco", Currency: "USD", Balance: 300},
			}, nil
		},
	}
	svc := NewService(reader)

	ov, err := svc.Overview(context.Background(), Period{})
	if err != nil {
		t.Fatalf("Overview() error: %v", err)
	}

	if ov.Income != 1000 || ov.Expenses != 0 || ov.Transfers != 300 {
		t.Errorf("totals = %v/%v/%v, want 1000/0/300", ov.Income, ov.Expenses, ov.Transfers)
	}
	if ov.Balance != 1000 {
		t.Errorf("Balance = %v, want 1000", ov.Balance)
	}
	// raw cross-currency sum, COP and USD added as-is
	if ov.TotalBalance != 1000 {
		t.Errorf("TotalBalance = %v, want 1000", ov.TotalBalance)
	}
	if ov.SavingsRate != 1 {
		t.Errorf("SavingsRate = %v, want 1", ov.SavingsRate)
	}
}

func TestOverview_BudgetFlag(t *testing.T) {
	reader := &MockReader{
		ExpenseByCategoryFunc: func(ctx context.Context, p Period) ([]CategoryExpense, error) {
			return []CategoryExpense{
				{CategoryID: sp("c-1"), CategoryName: sp("Comida"), BudgetLimit: fl(200000), Total: 250000, Count: 12},
				{CategoryID: sp("c-2"), CategoryName: sp("Transporte"), BudgetLimit: fl(200000), Total: 150000, Count: 8},
				{CategoryID: nil, Total: 99999, Count: 3}, // uncategorized, no limit
			}, nil
		},
	}
	svc := NewService(reader)

	ov, err := svc.Overview(context.Background(), Period{})
	if err != nil {
		t.Fatalf("Overview() error: %v", err)
	}

	if !ov.ByCategory[0].OverBudget {
		t.Error("250000 over a 200000 limit must be flagged over budget")
	}
	if ov.ByCategory[1].OverBudget {
		t.Error("150000 under a 200000 limit must not be flagged")
	}
	if ov.ByCategory[2].OverBudget {
		t.Error("the uncategorized bucket has no limit and must never be flagged")
	}
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		income, expenses, want float64
	}{
		{1000, 400, 0.6},
		{1000, 1000, 0},
		{1000, 1500, -0.5},
		{0, 500, 0}, // undefined, reported as 0
	}
	for _, tt := range tests {
		if got := SavingsRate(tt.income, tt.expenses); got != tt.want {
			t.Errorf("SavingsRate(%v, %v) = %v, want %v", tt.income, tt.expenses, got, tt.want)
		}
	}
}

func TestMonthPeriod(t *testing.T) {
	now := time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC)
	p := MonthPeriod(now)

	if got := p.Start.Format("2006-01-02"); got != "2026-02-01" {
		t.Errorf("Start = %s, want 2026-02-01", got)
	}
	if got := p.End.Format("2006-01-02"); got != "2026-02-28" {
		t.Errorf("End = %s, want 2026-02-28", got)
	}
}

func TestBuildReviewContext(t *testing.T) {
	reader := &MockReader{
		PeriodTransactionsFunc: func(ctx context.Context, p Period) ([]ReviewTransaction, error) {
			return []ReviewTransaction{
				{Type: "income", Amount: 1000, Currency: "COP", Description: "sueldo", Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), WalletName: sp("Banco")},
				{Type: "expense", Amount: 400, Currency: "COP", Description: "mercado", Date: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), CategoryName: sp("Comida")},
			}, nil
		},
	}
	svc := NewService(reader)

	text, count, err := svc.BuildReviewContext(context.Background(), Period{})
	if err != nil {
		t.Fatalf("BuildReviewContext() error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	for _, want := range []string{"TOTAL INCOME: 1000.00", "TOTAL EXPENSES: 400.00", "PERIOD BALANCE: 600.00", "Comida", "Banco"} {
		if !strings.Contains(text, want) {
			t.Errorf("review context missing %q:\n%s", want, text)
		}
	}
}

func TestBuildReviewContext_EmptyPeriod(t *testing.T) {
	svc := NewService(&MockReader{})

	text, count, err := svc.BuildReviewContext(context.Background(), Period{})
	if err != nil {
		t.Fatalf("BuildReviewContext() error: %v", err)
	}
	if count != 0 || text != "" {
		t.Errorf("empty period should produce no context, got count=%d text=%q", count, text)
	}
}

// The daily series window starts at midnight so the oldest day is counted
// in full regardless of the time of day the overview is requested.
func TestOverview_DailyWindowStartsAtMidnight(t *testing.T) {
	var gotSince time.Time
	reader := &MockReader{
		DailySeriesFunc: func(ctx context.Context, since time.Time) ([]DayTotals, error) {
			gotSince = since
			return nil, nil
		},
	}
	svc := NewService(reader)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 17, 45, 12, 0, time.UTC) }

	if _, err := svc.Overview(context.Background(), Period{}); err != nil {
		t.Fatalf("Overview() error: %v", err)
	}

	want := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	if !gotSince.Equal(want) {
		t.Errorf("daily series since = %v, want %v", gotSince, want)
	}
}
