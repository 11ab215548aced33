package wallet

import (
	"context"

	"github.com/google/uuid"
)

// Service contains the business logic for wallet operations
type Service struct {
	repo Repository
}

// NewService creates a new wallet service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateWallet creates a new wallet with display defaults and validation
func (s *Service) CreateWallet(ctx context.Context, params CreateParams) (*Wallet, error) {
	if params.ID == "" {
		params.ID = uuid.New().String()
	}
	params.ApplyDefaults()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

// GetWallet retrieves a wallet by ID
func (s *Service) GetWallet(ctx context.Context, id string) (*Wallet, error) {
	return s.repo.GetByID(ctx, id)
}

// ListWallets retrieves wallets in creation order, excluding archived ones
// unless includeArchived is set
func (s *Service) ListWallets(ctx context.Context, includeArchived bool) ([]*Wallet, error) {
	return s.repo.List(ctx, includeArchived)
}

// UpdateWallet merges the provided fields into an existing wallet
func (s *Service) UpdateWallet(ctx context.Context, id string, params UpdateParams) (*Wallet, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

// ArchiveWallet soft-deletes a wallet. Its transactions keep referencing it
// for historical display; only listings and statistics skip it.
func (s *Service) ArchiveWallet(ctx context.Context, id string) error {
	return s.repo.Archive(ctx, id)
}
