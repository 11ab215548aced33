package interpret

import (
	"context"
	"errors"
	"strings"
)

// Defaults applied to a proposal when the collaborator leaves a field out.
const (
	DefaultType          = "expense"
	DefaultCurrency      = "COP"
	DefaultCategoryName  = "Sin categoría"
	DefaultCategoryEmoji = "📦"
	DefaultWalletName    = "Efectivo"
	DefaultWalletEmoji   = "💵"
	DefaultConfidence    = 0.8
)

// ErrInterpreter means the collaborator produced output that could not be
// turned into a proposal.
var ErrInterpreter = errors.New("could not interpret message")

// EntityMatch is a proposed wallet or category. When Exists is true, ID
// points at a stored entity; otherwise Name and Emoji describe one the user
// may want to create.
type EntityMatch struct {
	ID     *string `json:"id"`
	Name   string  `json:"name"`
	Emoji  string  `json:"emoji"`
	Exists bool    `json:"exists"`
}

// Proposal is a structured transaction candidate. It is advisory only; the
// caller decides whether to turn it into a real transaction.
type Proposal struct {
	Type              string       `json:"type"`
	Amount            float64      `json:"amount"`
	Currency          string       `json:"currency"`
	Description       string       `json:"description"`
	Category          EntityMatch  `json:"category"`
	Wallet            EntityMatch  `json:"wallet"`
	WalletDestination *EntityMatch `json:"walletDestination"`
	Confidence        float64      `json:"confidence"`
	Clarification     *string      `json:"clarification"`
	RawText           string       `json:"rawText"`
}

// WalletRef is the slice of a wallet handed to the interpreter as matching
// context.
type WalletRef struct {
	ID    string
	Name  string
	Emoji string
}

// CategoryRef is the slice of a category handed to the interpreter.
type CategoryRef struct {
	ID    string
	Name  string
	Emoji string
	Type  string
}

// Interpreter turns free-form text into a transaction proposal, matching
// against the caller's wallets and categories where possible.
type Interpreter interface {
	Interpret(ctx context.Context, text string, wallets []WalletRef, categories []CategoryRef) (*Proposal, error)
}

// Normalize fills the gaps a partial proposal may carry so that callers
// always see a fully populated one. rawText is echoed back verbatim.
func (p *Proposal) Normalize(rawText string) {
	if p.Type != "income" && p.Type != "expense" && p.Type != "transfer" {
		p.Type = DefaultType
	}
	if strings.TrimSpace(p.Currency) == "" {
		p.Currency = DefaultCurrency
	}
	if strings.TrimSpace(p.Description) == "" {
		p.Description = rawText
	}
	if strings.TrimSpace(p.Category.Name) == "" {
		p.Category = EntityMatch{Name: DefaultCategoryName, Emoji: DefaultCategoryEmoji}
	}
	if strings.TrimSpace(p.Wallet.Name) == "" {
		p.Wallet = EntityMatch{Name: DefaultWalletName, Emoji: DefaultWalletEmoji}
	}
	if p.Confidence <= 0 || p.Confidence > 1 {
		p.Confidence = DefaultConfidence
	}
	p.RawText = rawText
}
