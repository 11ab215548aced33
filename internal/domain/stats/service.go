package stats

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultWindowDays is the trailing window of the daily series.
const DefaultWindowDays = 30

// Service derives aggregate statistics from the ledger. It is strictly
// read-only; nothing here mutates wallets or transactions.
type Service struct {
	reader     Reader
	windowDays int
	now        func() time.Time
}

// NewService creates a new statistics service
func NewService(reader Reader) *Service {
	return &Service{reader: reader, windowDays: DefaultWindowDays, now: time.Now}
}

// Overview assembles the full aggregate view for one period: per-type
// totals, the per-category expense breakdown with budget flags, the sparse
// daily series over the trailing window, and the wallet balance snapshot.
func (s *Service) Overview(ctx context.Context, p Period) (*Overview, error) {
	totals, err := s.reader.TotalsByType(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("totals by type: %w", err)
	}

	byCategory, err := s.reader.ExpenseByCategory(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("expense by category: %w", err)
	}
	for i := range byCategory {
		row := &byCategory[i]
		row.OverBudget = row.BudgetLimit != nil && row.Total > *row.BudgetLimit
	}

	// Truncate to midnight so the earliest day of the window is included
	// in full when comparing against calendar dates.
	since := s.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -s.windowDays)
	byDay, err := s.reader.DailySeries(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("daily series: %w", err)
	}

	wallets, err := s.reader.WalletBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("wallet balances: %w", err)
	}

	// Raw sum across currencies, no conversion. Every wallet's balance is
	// added regardless of its currency code.
	var totalBalance float64
	for _, w := range wallets {
		totalBalance += w.Balance
	}

	return &Overview{
		Period:       p.rangeStrings(),
		Income:       totals.Income,
		Expenses:     totals.Expense,
		Transfers:    totals.Transfer,
		Balance:      totals.Income - totals.Expense,
		SavingsRate:  SavingsRate(totals.Income, totals.Expense),
		TotalBalance: totalBalance,
		ByCategory:   byCategory,
		ByDay:        byDay,
		Wallets:      wallets,
	}, nil
}

// SavingsRate is (income - expenses) / income, or 0 when there is no income.
func SavingsRate(income, expenses float64) float64 {
	if income == 0 {
		return 0
	}
	return (income - expenses) / income
}

// BuildReviewContext renders the period's data as the plain-text context
// handed to the review collaborator. The returned count lets callers skip
// the collaborator entirely for empty periods.
func (s *Service) BuildReviewContext(ctx context.Context, p Period) (string, int, error) {
	txs, err := s.reader.PeriodTransactions(ctx, p)
	if err != nil {
		return "", 0, fmt.Errorf("period transactions: %w", err)
	}
	if len(txs) == 0 {
		return "", 0, nil
	}

	var income, expenses float64
	for _, tx := range txs {
		switch tx.Type {
		case "income":
			income += tx.Amount
		case "expense":
			expenses += tx.Amount
		}
	}

	r := p.rangeStrings()
	var b strings.Builder
	fmt.Fprintf(&b, "PERIOD: %s to %s\n", orAll(r.StartDate), orAll(r.EndDate))
	fmt.Fprintf(&b, "TODAY: %s\n", s.now().UTC().Format("2006-01-02"))
	fmt.Fprintf(&b, "TOTAL INCOME: %.2f\n", income)
	fmt.Fprintf(&b, "TOTAL EXPENSES: %.2f\n", expenses)
	fmt.Fprintf(&b, "PERIOD BALANCE: %.2f\n\n", income-expenses)
	fmt.Fprintf(&b, "TRANSACTIONS (%d total):\n", len(txs))
	for _, tx := range txs {
		fmt.Fprintf(&b, "- [%s] %s %.2f %s | category: %s | wallet: %s | %q\n",
			tx.Date.Format("2006-01-02"), strings.ToUpper(tx.Type), tx.Amount, tx.Currency,
			orNone(tx.CategoryName), orNone(tx.WalletName), tx.Description)
	}

	return b.String(), len(txs), nil
}

func (p Period) rangeStrings() PeriodRange {
	var r PeriodRange
	if p.Start != nil {
		s := p.Start.Format("2006-01-02")
		r.StartDate = &s
	}
	if p.End != nil {
		e := p.End.Format("2006-01-02")
		r.EndDate = &e
	}
	return r
}

func orAll(s *string) string {
	if s == nil {
		return "(all)"
	}
	return *s
}

func orNone(s *string) string {
	if s == nil {
		return "(none)"
	}
	return *s
}
