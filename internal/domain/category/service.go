package category

import (
	"context"

	"github.com/google/uuid"
)

// Service contains the business logic for category operations
type Service struct {
	repo Repository
}

// NewService creates a new category service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateCategory creates a new category with display defaults and validation
func (s *Service) CreateCategory(ctx context.Context, params CreateParams) (*Category, error) {
	if params.ID == "" {
		params.ID = uuid.New().String()
	}
	params.ApplyDefaults()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

// GetCategory retrieves a category by ID
func (s *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCategories retrieves categories ordered by name, excluding archived
// ones unless includeArchived is set
func (s *Service) ListCategories(ctx context.Context, includeArchived bool) ([]*Category, error) {
	return s.repo.List(ctx, includeArchived)
}

// UpdateCategory merges the provided fields into an existing category
func (s *Service) UpdateCategory(ctx context.Context, id string, params UpdateParams) (*Category, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

// ArchiveCategory soft-deletes a category. Transactions keep their reference
// to it so history still resolves.
func (s *Service) ArchiveCategory(ctx context.Context, id string) error {
	return s.repo.Archive(ctx, id)
}
