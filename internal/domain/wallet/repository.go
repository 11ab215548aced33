package wallet

import "context"

// Repository defines the interface for wallet data access.
// The interface lives in the domain layer and is implemented in the
// infrastructure layer.
type Repository interface {
	// Create persists a new wallet whose balance starts at the opening balance
	Create(ctx context.Context, params CreateParams) (*Wallet, error)

	// GetByID retrieves a wallet by its ID
	GetByID(ctx context.Context, id string) (*Wallet, error)

	// List retrieves wallets ordered by creation time, excluding archived
	// ones unless includeArchived is set
	List(ctx context.Context, includeArchived bool) ([]*Wallet, error)

	// Update merges only the non-nil fields of params into the wallet
	Update(ctx context.Context, id string, params UpdateParams) (*Wallet, error)

	// Archive marks a wallet archived. Archiving an already archived wallet
	// is a no-op, not an error.
	Archive(ctx context.Context, id string) error
}
