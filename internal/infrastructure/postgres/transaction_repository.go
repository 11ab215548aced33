package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gastos/internal/domain/ledger"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts the transaction row and applies its balance deltas inside
// one SQL transaction. The balance updates are in-database increments, so
// concurrent creates against the same wallet serialize at the row level
// without any read-modify-write in application code.
func (r *TransactionRepository) Create(ctx context.Context, params ledger.CreateParams, deltas []ledger.Delta) (*ledger.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO transactions (id, type, amount, currency, category_id, wallet_id, wallet_destination_id, description, date, ai_generated, raw_input)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, type, amount, currency, category_id, wallet_id, wallet_destination_id, description, date, ai_generated, raw_input, created_at
	`

	var t ledger.Transaction
	err = tx.QueryRowContext(
		ctx, query,
		params.ID, params.Type, params.Amount, params.Currency, params.CategoryID,
		params.WalletID, params.WalletDestinationID, params.Description, params.Date,
		params.AIGenerated, params.RawInput,
	).Scan(
		&t.ID, &t.Type, &t.Amount, &t.Currency, &t.CategoryID,
		&t.WalletID, &t.WalletDestinationID, &t.Description, &t.Date,
		&t.AIGenerated, &t.RawInput, &t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := applyDeltas(ctx, tx, deltas); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit create: %v", ledger.ErrConsistency, err)
	}

	return &t, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*ledger.Transaction, error) {
	query := `
		SELECT id, type, amount, currency, category_id, wallet_id, wallet_destination_id, description, date, ai_generated, raw_input, created_at
		FROM transactions
		WHERE id = $1
	`

	var t ledger.Transaction
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Type, &t.Amount, &t.Currency, &t.CategoryID,
		&t.WalletID, &t.WalletDestinationID, &t.Description, &t.Date,
		&t.AIGenerated, &t.RawInput, &t.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &t, nil
}

// Delete applies the reversal deltas and removes the row inside one SQL
// transaction. If the row vanished between the caller's read and this call
// the whole unit rolls back, so the reversal is never applied twice.
func (r *TransactionRepository) Delete(ctx context.Context, id string, deltas []ledger.Delta) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ledger.ErrNotFound
	}

	if err := applyDeltas(ctx, tx, deltas); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit delete: %v", ledger.ErrConsistency, err)
	}

	return nil
}

func applyDeltas(ctx context.Context, tx *Tx, deltas []ledger.Delta) error {
	for _, d := range deltas {
		result, err := tx.ExecContext(ctx,
			`UPDATE wallets SET balance = balance + $1 WHERE id = $2`,
			d.Amount, d.WalletID,
		)
		if err != nil {
			return fmt.Errorf("failed to adjust wallet balance: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check balance adjustment: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: wallet %s does not exist", ledger.ErrConsistency, d.WalletID)
		}
	}
	return nil
}

func (r *TransactionRepository) Query(ctx context.Context, filter ledger.QueryFilter, limit, offset int) ([]*ledger.QueryRow, int64, error) {
	conditions, args := buildFilter(filter)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM transactions t` + where

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
		SELECT t.id, t.type, t.amount, t.currency, t.category_id, t.wallet_id, t.wallet_destination_id,
		       t.description, t.date, t.ai_generated, t.raw_input, t.created_at,
		       c.name, c.emoji, c.color,
		       w.name, w.emoji
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		LEFT JOIN wallets w ON w.id = t.wallet_id` + where + fmt.Sprintf(`
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var results []*ledger.QueryRow
	for rows.Next() {
		var row ledger.QueryRow
		err := rows.Scan(
			&row.ID, &row.Type, &row.Amount, &row.Currency, &row.CategoryID,
			&row.WalletID, &row.WalletDestinationID, &row.Description, &row.Date,
			&row.AIGenerated, &row.RawInput, &row.CreatedAt,
			&row.CategoryName, &row.CategoryEmoji, &row.CategoryColor,
			&row.WalletName, &row.WalletEmoji,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		results = append(results, &row)
	}

	return results, total, rows.Err()
}

func buildFilter(filter ledger.QueryFilter) ([]string, []any) {
	var conditions []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != nil {
		add("t.type = $%d", *filter.Type)
	}
	if filter.CategoryID != nil {
		add("t.category_id = $%d", *filter.CategoryID)
	}
	if filter.WalletID != nil {
		add("t.wallet_id = $%d", *filter.WalletID)
	}
	if filter.DateFrom != nil {
		add("t.date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("t.date <= $%d", *filter.DateTo)
	}

	return conditions, args
}

// RecomputeBalance derives a wallet's balance from first principles: the
// opening balance plus the signed effect of every live transaction touching
// the wallet as source or destination. The source and destination effects
// are summed separately so a transfer from a wallet to itself nets to zero,
// the same as the pair of increments applied when it was created.
func (r *TransactionRepository) RecomputeBalance(ctx context.Context, walletID string, openingBalance float64) (float64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE
				WHEN wallet_id = $1 AND type = 'income' THEN amount
				WHEN wallet_id = $1 AND type = 'expense' THEN -amount
				WHEN wallet_id = $1 AND type = 'transfer' THEN -amount
				ELSE 0
			END
			+
			CASE
				WHEN wallet_destination_id = $1 AND type = 'transfer' THEN amount
				ELSE 0
			END
		), 0)
		FROM transactions
		WHERE wallet_id = $1 OR wallet_destination_id = $1
	`

	var sum float64
	if err := r.db.QueryRowContext(ctx, query, walletID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to recompute balance: %w", err)
	}

	return openingBalance + sum, nil
}
