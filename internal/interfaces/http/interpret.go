package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"gastos/internal/domain/category"
	"gastos/internal/domain/interpret"
	"gastos/internal/domain/wallet"
)

type InterpretHandler struct {
	interpreter interpret.Interpreter
	wallets     *wallet.Service
	categories  *category.Service
}

// NewInterpretHandler creates a handler. interpreter may be nil when no AI
// backend is configured; the endpoint then reports itself unavailable.
func NewInterpretHandler(interpreter interpret.Interpreter, wallets *wallet.Service, categories *category.Service) *InterpretHandler {
	return &InterpretHandler{interpreter: interpreter, wallets: wallets, categories: categories}
}

type InterpretRequest struct {
	Text string `json:"text"`
}

// HandleInterpret turns free-form text into a transaction proposal. The
// proposal is advisory; nothing is persisted here.
func (h *InterpretHandler) HandleInterpret(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.interpreter == nil {
		respondError(w, http.StatusServiceUnavailable, "AI interpretation is not configured")
		return
	}

	var req InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	wallets, err := h.wallets.ListWallets(r.Context(), false)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	categories, err := h.categories.ListCategories(r.Context(), false)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	walletRefs := make([]interpret.WalletRef, 0, len(wallets))
	for _, w := range wallets {
		walletRefs = append(walletRefs, interpret.WalletRef{ID: w.ID, Name: w.Name, Emoji: w.Emoji})
	}
	categoryRefs := make([]interpret.CategoryRef, 0, len(categories))
	for _, c := range categories {
		categoryRefs = append(categoryRefs, interpret.CategoryRef{ID: c.ID, Name: c.Name, Emoji: c.Emoji, Type: c.Type})
	}

	proposal, err := h.interpreter.Interpret(r.Context(), req.Text, walletRefs, categoryRefs)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, proposal)
}
