package http

import (
	"encoding/json"
	"net/http"

	"gastos/internal/domain/wallet"
)

type WalletHandler struct {
	wallets *wallet.Service
}

func NewWalletHandler(wallets *wallet.Service) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// Request DTOs

type CreateWalletRequest struct {
	Name     string  `json:"name"`
	Emoji    string  `json:"emoji"`
	Color    string  `json:"color"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}

type UpdateWalletRequest struct {
	ID         string   `json:"id"`
	Name       *string  `json:"name,omitempty"`
	Emoji      *string  `json:"emoji,omitempty"`
	Color      *string  `json:"color,omitempty"`
	Currency   *string  `json:"currency,omitempty"`
	Balance    *float64 `json:"balance,omitempty"`
	IsArchived *bool    `json:"isArchived,omitempty"`
}

// HandleWallets routes requests to the appropriate handler based on method
func (h *WalletHandler) HandleWallets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodPut:
		h.handleUpdate(w, r)
	case http.MethodDelete:
		h.handleArchive(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *WalletHandler) handleList(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	wallets, err := h.wallets.ListWallets(r.Context(), includeArchived)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if wallets == nil {
		wallets = []*wallet.Wallet{}
	}

	respondData(w, http.StatusOK, wallets)
}

func (h *WalletHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.wallets.CreateWallet(r.Context(), wallet.CreateParams{
		Name:           req.Name,
		Emoji:          req.Emoji,
		Color:          req.Color,
		Currency:       req.Currency,
		OpeningBalance: req.Balance,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

func (h *WalletHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	updated, err := h.wallets.UpdateWallet(r.Context(), req.ID, wallet.UpdateParams{
		Name:     req.Name,
		Emoji:    req.Emoji,
		Color:    req.Color,
		Currency: req.Currency,
		Balance:  req.Balance,
		Archived: req.IsArchived,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

func (h *WalletHandler) handleArchive(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.wallets.ArchiveWallet(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]bool{"success": true})
}
