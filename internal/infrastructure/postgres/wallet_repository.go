package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"gastos/internal/domain/wallet"
)

type WalletRepository struct {
	db *DB
}

func NewWalletRepository(db *DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Create(ctx context.Context, params wallet.CreateParams) (*wallet.Wallet, error) {
	query := `
		INSERT INTO wallets (id, name, emoji, color, currency, balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, emoji, color, currency, balance, is_archived, created_at
	`

	var w wallet.Wallet
	err := r.db.QueryRowContext(
		ctx, query,
		params.ID, params.Name, params.Emoji, params.Color, params.Currency, params.OpeningBalance,
	).Scan(
		&w.ID, &w.Name, &w.Emoji, &w.Color, &w.Currency, &w.Balance,
		&w.Archived, &w.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &w, nil
}

func (r *WalletRepository) GetByID(ctx context.Context, id string) (*wallet.Wallet, error) {
	query := `
		SELECT id, name, emoji, color, currency, balance, is_archived, created_at
		FROM wallets
		WHERE id = $1
	`

	var w wallet.Wallet
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Emoji, &w.Color, &w.Currency, &w.Balance,
		&w.Archived, &w.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, wallet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &w, nil
}

func (r *WalletRepository) List(ctx context.Context, includeArchived bool) ([]*wallet.Wallet, error) {
	query := `
		SELECT id, name, emoji, color, currency, balance, is_archived, created_at
		FROM wallets
	`
	if !includeArchived {
		query += ` WHERE is_archived = FALSE`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []*wallet.Wallet
	for rows.Next() {
		var w wallet.Wallet
		err := rows.Scan(
			&w.ID, &w.Name, &w.Emoji, &w.Color, &w.Currency, &w.Balance,
			&w.Archived, &w.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, &w)
	}

	return wallets, rows.Err()
}

func (r *WalletRepository) Update(ctx context.Context, id string, params wallet.UpdateParams) (*wallet.Wallet, error) {
	query := `
		UPDATE wallets
		SET name = COALESCE($1, name),
		    emoji = COALESCE($2, emoji),
		    color = COALESCE($3, color),
		    currency = COALESCE($4, currency),
		    balance = COALESCE($5, balance),
		    is_archived = COALESCE($6, is_archived)
		WHERE id = $7
		RETURNING id, name, emoji, color, currency, balance, is_archived, created_at
	`

	var w wallet.Wallet
	err := r.db.QueryRowContext(
		ctx, query,
		params.Name, params.Emoji, params.Color, params.Currency, params.Balance, params.Archived, id,
	).Scan(
		&w.ID, &w.Name, &w.Emoji, &w.Color, &w.Currency, &w.Balance,
		&w.Archived, &w.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, wallet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &w, nil
}

// Archive hides the wallet from listings without deleting its history.
// Archiving an already archived wallet is a no-op.
func (r *WalletRepository) Archive(ctx context.Context, id string) error {
	query := `UPDATE wallets SET is_archived = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to archive wallet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check archive result: %w", err)
	}
	if affected == 0 {
		return wallet.ErrNotFound
	}

	return nil
}
