package category

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Display defaults applied when the caller omits presentation fields.
const (
	DefaultEmoji = "📦"
	DefaultColor = "#8b5cf6"
	DefaultType  = "both"
)

// Domain errors
var (
	ErrNotFound   = errors.New("category not found")
	ErrValidation = errors.New("invalid category input")
)

// Category labels transactions and optionally carries a monthly budget limit.
// Type is a soft classification hint ("income", "expense" or "both"); it is
// never enforced against the transactions that reference the category.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	Color       string    `json:"color"`
	Type        string    `json:"type"`
	BudgetLimit *float64  `json:"budgetLimit"`
	Archived    bool      `json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateParams contains parameters for creating a new category
type CreateParams struct {
	ID          string
	Name        string
	Emoji       string
	Color       string
	Type        string
	BudgetLimit *float64
}

// ApplyDefaults fills display fields the caller left empty.
func (p *CreateParams) ApplyDefaults() {
	if p.Emoji == "" {
		p.Emoji = DefaultEmoji
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}
	if p.Type == "" {
		p.Type = DefaultType
	}
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: category ID is required", ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// UpdateParams contains the fields an update may touch. Nil fields are left
// unchanged by the store. ClearBudget removes the limit entirely (a nil
// BudgetLimit alone means "leave as is").
type UpdateParams struct {
	Name        *string
	Emoji       *string
	Color       *string
	Type        *string
	BudgetLimit *float64
	ClearBudget bool
	Archived    *bool
}

// Validate rejects updates that would leave the category in an invalid state.
func (p UpdateParams) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	return nil
}
