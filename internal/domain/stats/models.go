package stats

import "time"

// Period is a date range for scoping statistics, inclusive on both ends.
// Nil bounds are unbounded; the zero Period means "all".
type Period struct {
	Start *time.Time
	End   *time.Time
}

// MonthPeriod returns the current calendar month of now.
func MonthPeriod(now time.Time) Period {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Period{Start: &start, End: &end}
}

// Totals holds the per-type sums for a period. A type with no transactions
// is present as zero, never absent.
type Totals struct {
	Income   float64 `json:"income"`
	Expense  float64 `json:"expenses"`
	Transfer float64 `json:"transfers"`
}

// CategoryExpense is one row of the per-category expense breakdown. A nil
// CategoryID is the synthetic bucket for uncategorized expenses. OverBudget
// is derived (limit set and exceeded), not stored.
type CategoryExpense struct {
	CategoryID    *string  `json:"categoryId"`
	CategoryName  *string  `json:"categoryName"`
	CategoryEmoji *string  `json:"categoryEmoji"`
	CategoryColor *string  `json:"categoryColor"`
	BudgetLimit   *float64 `json:"budgetLimit"`
	Total         float64  `json:"total"`
	Count         int64    `json:"count"`
	OverBudget    bool     `json:"overBudget"`
}

// DayTotals is one row of the daily series. The series is sparse: dates with
// no transactions produce no row, so consumers must not assume consecutive
// dates.
type DayTotals struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// WalletBalance is a balance snapshot of one non-archived wallet.
type WalletBalance struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Emoji    string  `json:"emoji"`
	Color    string  `json:"color"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}

// PeriodRange echoes the resolved bounds back to the caller.
type PeriodRange struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// Overview is the aggregate view over one period. TotalBalance is the raw
// arithmetic sum of every wallet balance regardless of currency code; no
// conversion is applied.
type Overview struct {
	Period       PeriodRange       `json:"period"`
	Income       float64           `json:"income"`
	Expenses     float64           `json:"expenses"`
	Transfers    float64           `json:"transfers"`
	Balance      float64           `json:"balance"`
	SavingsRate  float64           `json:"savingsRate"`
	TotalBalance float64           `json:"totalBalance"`
	ByCategory   []CategoryExpense `json:"byCategory"`
	ByDay        []DayTotals       `json:"byDay"`
	Wallets      []WalletBalance   `json:"wallets"`
}

// ReviewTransaction is the compact transaction rendering handed to the
// period-review collaborator.
type ReviewTransaction struct {
	Type         string
	Amount       float64
	Currency     string
	Description  string
	Date         time.Time
	CategoryName *string
	WalletName   *string
}
