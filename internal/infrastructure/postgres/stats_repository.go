package postgres

import (
	"context"
	"fmt"
	"time"

	"gastos/internal/domain/stats"
)

type StatsRepository struct {
	db *DB
}

func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// periodFilter renders the inclusive date bounds of p as SQL conditions.
// startIdx is the first free placeholder number.
func periodFilter(p stats.Period, startIdx int) (string, []any) {
	clause := ""
	var args []any
	idx := startIdx

	if p.Start != nil {
		clause += fmt.Sprintf(" AND t.date >= $%d", idx)
		args = append(args, *p.Start)
		idx++
	}
	if p.End != nil {
		clause += fmt.Sprintf(" AND t.date <= $%d", idx)
		args = append(args, *p.End)
	}

	return clause, args
}

func (r *StatsRepository) TotalsByType(ctx context.Context, p stats.Period) (stats.Totals, error) {
	clause, args := periodFilter(p, 1)

	query := `
		SELECT t.type, COALESCE(SUM(t.amount), 0)
		FROM transactions t
		WHERE 1=1` + clause + `
		GROUP BY t.type
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return stats.Totals{}, fmt.Errorf("failed to sum by type: %w", err)
	}
	defer rows.Close()

	var totals stats.Totals
	for rows.Next() {
		var typ string
		var sum float64
		if err := rows.Scan(&typ, &sum); err != nil {
			return stats.Totals{}, fmt.Errorf("failed to scan type total: %w", err)
		}
		switch typ {
		case "income":
			totals.Income = sum
		case "expense":
			totals.Expense = sum
		case "transfer":
			totals.Transfer = sum
		}
	}

	return totals, rows.Err()
}

func (r *StatsRepository) ExpenseByCategory(ctx context.Context, p stats.Period) ([]stats.CategoryExpense, error) {
	clause, args := periodFilter(p, 1)

	// Uncategorized expenses group under the NULL category key.
	query := `
		SELECT t.category_id, c.name, c.emoji, c.color, c.budget_limit,
		       SUM(t.amount), COUNT(*)
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.type = 'expense'` + clause + `
		GROUP BY t.category_id, c.name, c.emoji, c.color, c.budget_limit
		ORDER BY SUM(t.amount) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by category: %w", err)
	}
	defer rows.Close()

	var results []stats.CategoryExpense
	for rows.Next() {
		var row stats.CategoryExpense
		err := rows.Scan(
			&row.CategoryID, &row.CategoryName, &row.CategoryEmoji, &row.CategoryColor,
			&row.BudgetLimit, &row.Total, &row.Count,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (r *StatsRepository) DailySeries(ctx context.Context, since time.Time) ([]stats.DayTotals, error) {
	query := `
		SELECT t.date::text,
		       COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'income'), 0),
		       COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'expense'), 0)
		FROM transactions t
		WHERE t.date >= $1
		GROUP BY t.date
		ORDER BY t.date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily series: %w", err)
	}
	defer rows.Close()

	var series []stats.DayTotals
	for rows.Next() {
		var day stats.DayTotals
		if err := rows.Scan(&day.Date, &day.Income, &day.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan day totals: %w", err)
		}
		series = append(series, day)
	}

	return series, rows.Err()
}

func (r *StatsRepository) WalletBalances(ctx context.Context) ([]stats.WalletBalance, error) {
	query := `
		SELECT id, name, emoji, color, currency, balance
		FROM wallets
		WHERE is_archived = FALSE
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot wallet balances: %w", err)
	}
	defer rows.Close()

	var balances []stats.WalletBalance
	for rows.Next() {
		var b stats.WalletBalance
		if err := rows.Scan(&b.ID, &b.Name, &b.Emoji, &b.Color, &b.Currency, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan wallet balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *StatsRepository) PeriodTransactions(ctx context.Context, p stats.Period) ([]stats.ReviewTransaction, error) {
	clause, args := periodFilter(p, 1)

	query := `
		SELECT t.type, t.amount, t.currency, t.description, t.date, c.name, w.name
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		LEFT JOIN wallets w ON w.id = t.wallet_id
		WHERE 1=1` + clause + `
		ORDER BY t.date ASC, t.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list period transactions: %w", err)
	}
	defer rows.Close()

	var txs []stats.ReviewTransaction
	for rows.Next() {
		var tx stats.ReviewTransaction
		err := rows.Scan(&tx.Type, &tx.Amount, &tx.Currency, &tx.Description, &tx.Date, &tx.CategoryName, &tx.WalletName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
