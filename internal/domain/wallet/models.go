package wallet

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Display defaults applied when the caller omits presentation fields.
const (
	DefaultEmoji    = "💳"
	DefaultColor    = "#6366f1"
	DefaultCurrency = "COP"
)

// Domain errors
var (
	ErrNotFound   = errors.New("wallet not found")
	ErrValidation = errors.New("invalid wallet input")
)

// Wallet represents a named store of money with a currency and a running
// balance. The balance may go negative (e.g. credit card debt) and always
// equals the opening balance plus the signed sum of all live transactions
// touching the wallet.
type Wallet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	Currency  string    `json:"currency"`
	Balance   float64   `json:"balance"`
	Archived  bool      `json:"isArchived"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateParams contains parameters for creating a new wallet
type CreateParams struct {
	ID             string
	Name           string
	Emoji          string
	Color          string
	Currency       string
	OpeningBalance float64
}

// ApplyDefaults fills display fields the caller left empty.
func (p *CreateParams) ApplyDefaults() {
	if p.Emoji == "" {
		p.Emoji = DefaultEmoji
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: wallet ID is required", ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// UpdateParams contains the fields an update may touch. Nil fields are left
// unchanged by the store.
type UpdateParams struct {
	Name     *string
	Emoji    *string
	Color    *string
	Currency *string
	Balance  *float64
	Archived *bool
}

// Validate rejects updates that would leave the wallet in an invalid state.
func (p UpdateParams) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	return nil
}
