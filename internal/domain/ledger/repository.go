package ledger

import "context"

// Repository defines the interface for transaction storage. Create and Delete
// are the two write paths and each one MUST apply its deltas and mutate the
// transaction rows inside a single atomic unit against the backing store: a
// transaction row must never exist whose balance effect was not applied, and
// vice versa. Balance adjustments are expected to be atomic increments at the
// store level, not read-modify-write in application code.
type Repository interface {
	// Create persists the transaction row and applies deltas to the affected
	// wallet balances as one atomic unit.
	Create(ctx context.Context, params CreateParams, deltas []Delta) (*Transaction, error)

	// GetByID retrieves a transaction by its ID
	GetByID(ctx context.Context, id string) (*Transaction, error)

	// Delete applies deltas (the reversal of the stored transaction) and
	// removes the row as one atomic unit.
	Delete(ctx context.Context, id string, deltas []Delta) error

	// Query returns a page of transactions joined with display fields,
	// ordered by date descending then creation time descending, plus the
	// total count matching the filter regardless of limit/offset.
	Query(ctx context.Context, filter QueryFilter, limit, offset int) ([]*QueryRow, int64, error)

	// RecomputeBalance derives a wallet's balance from its opening balance
	// and the signed deltas of all live transactions touching it. It exists
	// as a consistency-repair and verification tool; normal operation keeps
	// the stored balance current incrementally.
	RecomputeBalance(ctx context.Context, walletID string, openingBalance float64) (float64, error)
}
