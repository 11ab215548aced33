package ledger

import (
	"errors"
	"fmt"
	"time"
)

// Transaction types. Closed set: there is no "both" on transactions.
const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeTransfer = "transfer"
)

// DefaultCurrency is applied when a proposal does not specify one.
const DefaultCurrency = "COP"

// Domain errors
var (
	ErrNotFound    = errors.New("transaction not found")
	ErrValidation  = errors.New("invalid transaction input")
	ErrConsistency = errors.New("ledger consistency failure")
)

// Transaction is one dated monetary event. Amount is always stored positive;
// its sign on wallet balances comes from Type (see Deltas). Date is the
// user-meaningful calendar date; CreatedAt is the insertion timestamp and
// drives tie-break ordering for same-day entries.
type Transaction struct {
	ID                  string    `json:"id"`
	Type                string    `json:"type"`
	Amount              float64   `json:"amount"`
	Currency            string    `json:"currency"`
	CategoryID          *string   `json:"categoryId"`
	WalletID            string    `json:"walletId"`
	WalletDestinationID *string   `json:"walletDestinationId"`
	Description         string    `json:"description"`
	AIGenerated         bool      `json:"aiGenerated"`
	RawInput            *string   `json:"rawInput"`
	Date                time.Time `json:"date"`
	CreatedAt           time.Time `json:"createdAt"`
}

// QueryRow is a transaction joined with the display fields of its category
// and source wallet. Pointers stay nil when the reference is absent or the
// referenced row no longer matches (there are no cascading deletes, so joins
// against archived entities still resolve).
type QueryRow struct {
	Transaction
	CategoryName  *string `json:"categoryName"`
	CategoryEmoji *string `json:"categoryEmoji"`
	CategoryColor *string `json:"categoryColor"`
	WalletName    *string `json:"walletName"`
	WalletEmoji   *string `json:"walletEmoji"`
}

// QueryFilter narrows a transaction page. Nil fields match everything.
type QueryFilter struct {
	Type       *string
	CategoryID *string
	WalletID   *string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// CreateParams contains parameters for recording a new transaction
type CreateParams struct {
	ID                  string
	Type                string
	Amount              float64
	Currency            string
	CategoryID          *string
	WalletID            string
	WalletDestinationID *string
	Description         string
	AIGenerated         bool
	RawInput            *string
	Date                time.Time
}

// ApplyDefaults fills currency and date when the caller omitted them.
func (p *CreateParams) ApplyDefaults(now time.Time) {
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Date.IsZero() {
		p.Date = now
	}
	p.Date = truncateToDay(p.Date)
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	switch p.Type {
	case TypeIncome, TypeExpense, TypeTransfer:
	case "":
		return fmt.Errorf("%w: type is required", ErrValidation)
	default:
		return fmt.Errorf("%w: unknown type %q", ErrValidation, p.Type)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if p.WalletID == "" {
		return fmt.Errorf("%w: walletId is required", ErrValidation)
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
