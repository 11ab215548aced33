package category

import "context"

// Repository defines the interface for category data access.
type Repository interface {
	// Create persists a new category
	Create(ctx context.Context, params CreateParams) (*Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id string) (*Category, error)

	// List retrieves categories ordered by name, excluding archived ones
	// unless includeArchived is set
	List(ctx context.Context, includeArchived bool) ([]*Category, error)

	// Update merges only the provided fields of params into the category
	Update(ctx context.Context, id string, params UpdateParams) (*Category, error)

	// Archive marks a category archived. Archiving twice is a no-op.
	Archive(ctx context.Context, id string) error
}
