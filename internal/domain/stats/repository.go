package stats

import (
	"context"
	"time"
)

// Reader defines the read-only aggregation queries the statistics service
// runs against the ledger store.
type Reader interface {
	// TotalsByType sums transaction amounts per type over the period.
	TotalsByType(ctx context.Context, p Period) (Totals, error)

	// ExpenseByCategory aggregates expense transactions per category
	// (uncategorized ones in a synthetic nil bucket), ordered by total
	// descending. Only categories with at least one expense in the period
	// appear.
	ExpenseByCategory(ctx context.Context, p Period) ([]CategoryExpense, error)

	// DailySeries returns per-date income/expense sums for every date on or
	// after since that has at least one transaction, ordered by date.
	DailySeries(ctx context.Context, since time.Time) ([]DayTotals, error)

	// WalletBalances snapshots every non-archived wallet in creation order.
	WalletBalances(ctx context.Context) ([]WalletBalance, error)

	// PeriodTransactions lists the period's transactions with display names
	// for the review collaborator, ordered by date ascending.
	PeriodTransactions(ctx context.Context, p Period) ([]ReviewTransaction, error)
}
