package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gastos/internal/domain/stats"
)

// MockStatsReader implements stats.Reader for testing
type MockStatsReader struct {
	TotalsByTypeFunc       func(ctx context.Context, p stats.Period) (stats.Totals, error)
	ExpenseByCategoryFunc  func(ctx context.Context, p stats.Period) ([]stats.CategoryExpense, error)
	DailySeriesFunc        func(ctx context.Context, since time.Time) ([]stats.DayTotals, error)
	WalletBalancesFunc     func(ctx context.Context) ([]stats.WalletBalance, error)
	PeriodTransactionsFunc func(ctx context.Context, p stats.Period) ([]stats.ReviewTransaction, error)
}

func (m *MockStatsReader) TotalsByType(ctx context.Context, p stats.Period) (stats.Totals, error) {
	if m.TotalsByTypeFunc != nil {
		return m.TotalsByTypeFunc(ctx, p)
	}
	return stats.Totals{}, nil
}

func (m *MockStatsReader) ExpenseByCategory(ctx context.Context, p stats.Period) ([]stats.CategoryExpense, error) {
	if m.ExpenseByCategoryFunc != nil {
		return m.ExpenseByCategoryFunc(ctx, p)
	}
	return nil, nil
}

func (m *MockStatsReader) DailySeries(ctx context.Context, since time.Time) ([]stats.DayTotals, error) {
	if m.DailySeriesFunc != nil {
		return m.DailySeriesFunc(ctx, since)
	}
	return nil, nil
}

func (m *MockStatsReader) WalletBalances(ctx context.Context) ([]stats.WalletBalance, error) {
	if m.WalletBalancesFunc != nil {
		return m.WalletBalancesFunc(ctx)
	}
	return nil, nil
}

func (m *MockStatsReader) PeriodTransactions(ctx context.Context, p stats.Period) ([]stats.ReviewTransaction, error) {
	if m.PeriodTransactionsFunc != nil {
		return m.PeriodTransactionsFunc(ctx, p)
	}
	return nil, nil
}

// MockReviewer implements Reviewer for testing
type MockReviewer struct {
	ReviewFunc func(ctx context.Context, periodContext string) (string, error)
}

func (m *MockReviewer) Review(ctx context.Context, periodContext string) (string, error) {
	if m.ReviewFunc != nil {
		return m.ReviewFunc(ctx, periodContext)
	}
	return "", nil
}

func TestHandleStats_OverviewDefaultsToCurrentMonth(t *testing.T) {
	var gotPeriod stats.Period
	reader := &MockStatsReader{
		TotalsByTypeFunc: func(ctx context.Context, p stats.Period) (stats.Totals, error) {
			gotPeriod = p
			return stats.Totals{Income: 1000}, nil
		},
	}
	handler := NewStatsHandler(stats.NewService(reader), nil)
	handler.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	handler.HandleStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if gotPeriod.Start == nil || gotPeriod.Start.Format("2006-01-02") != "2026-08-01" {
		t.Errorf("period start = %v, want 2026-08-01", gotPeriod.Start)
	}
	if gotPeriod.End == nil || gotPeriod.End.Format("2006-01-02") != "2026-08-31" {
		t.Errorf("period end = %v, want 2026-08-31", gotPeriod.End)
	}
}

func TestHandleStats_MonthIgnoresExplicitDates(t *testing.T) {
	var gotPeriod stats.Period
	reader := &MockStatsReader{
		TotalsByTypeFunc: func(ctx context.Context, p stats.Period) (stats.Totals, error) {
			gotPeriod = p
			return stats.Totals{}, nil
		},
	}
	handler := NewStatsHandler(stats.NewService(reader), nil)
	handler.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	req := httptest.NewRequest(http.MethodGet, "/api/stats?period=month&startDate=2025-01-01&endDate=2025-06-30", nil)
	w := httptest.NewRecorder()
	handler.HandleStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if gotPeriod.Start == nil || gotPeriod.Start.Format("2006-01-02") != "2026-08-01" {
		t.Errorf("period start = %v, want 2026-08-01 (month must win over explicit dates)", gotPeriod.Start)
	}
	if gotPeriod.End == nil || gotPeriod.End.Format("2006-01-02") != "2026-08-31" {
		t.Errorf("period end = %v, want 2026-08-31", gotPeriod.End)
	}
}

func TestHandleStats_OverviewAllPeriod(t *testing.T) {
	var gotPeriod stats.Period
	reader := &MockStatsReader{
		TotalsByTypeFunc: func(ctx context.Context, p stats.Period) (stats.Totals, error) {
			gotPeriod = p
			return stats.Totals{}, nil
		},
	}
	handler := NewStatsHandler(stats.NewService(reader), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats?period=all", nil)
	w := httptest.NewRecorder()
	handler.HandleStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotPeriod.Start != nil || gotPeriod.End != nil {
		t.Errorf("period = %+v, want unbounded", gotPeriod)
	}
}

func TestHandleStats_ReviewEmptyPeriodSkipsReviewer(t *testing.T) {
	reviewerCalled := false
	reviewer := &MockReviewer{
		ReviewFunc: func(ctx context.Context, periodContext string) (string, error) {
			reviewerCalled = true
			return "should not happen", nil
		},
	}
	handler := NewStatsHandler(stats.NewService(&MockStatsReader{}), reviewer)

	req := httptest.NewRequest(http.MethodPost, "/api/stats", bytes.NewBufferString(`{"period":"all"}`))
	w := httptest.NewRecorder()
	handler.HandleStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if reviewerCalled {
		t.Error("reviewer must not be called for an empty period")
	}

	var resp struct {
		Data ReviewResponse `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Review == "" {
		t.Error("empty period must still produce a friendly message")
	}
}

func TestHandleStats_ReviewNotConfigured(t *testing.T) {
	handler := NewStatsHandler(stats.NewService(&MockStatsReader{}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/stats", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	handler.HandleStats(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
