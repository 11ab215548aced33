package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Pagination defaults for transaction queries.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Service is the transaction lifecycle controller. A transaction moves
// nonexistent → active → deleted; there is no edit state. Amending means
// removing and re-creating at the caller layer.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new ledger service
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates the proposal, then persists the row and its balance
// effect as one atomic unit. On any failure no balance mutation is visible.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if params.ID == "" {
		params.ID = uuid.New().String()
	}
	params.ApplyDefaults(s.now())

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params, params.deltas())
}

// Get retrieves a single transaction
func (s *Service) Get(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

// Remove deletes a transaction, exactly undoing its balance effect. The
// reversal is computed from the stored row, never from caller-supplied
// values, so it always matches what was originally applied.
func (s *Service) Remove(ctx context.Context, id string) error {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, tx.ID, Reversal(*tx))
}

// Query returns a filtered page of transactions with display fields and the
// total count matching the filter.
func (s *Service) Query(ctx context.Context, filter QueryFilter, limit, offset int) ([]*QueryRow, int64, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.Query(ctx, filter, limit, offset)
}

// RecomputeBalance re-derives a wallet balance from first principles.
func (s *Service) RecomputeBalance(ctx context.Context, walletID string, openingBalance float64) (float64, error) {
	return s.repo.RecomputeBalance(ctx, walletID, openingBalance)
}
