package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"gastos/internal/domain/ledger"
)

type TransactionHandler struct {
	transactions *ledger.Service
}

func NewTransactionHandler(transactions *ledger.Service) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// Request/Response DTOs

type CreateTransactionRequest struct {
	Type                string  `json:"type"`
	Amount              float64 `json:"amount"`
	Currency            string  `json:"currency"`
	Description         string  `json:"description"`
	CategoryID          *string `json:"categoryId,omitempty"`
	WalletID            string  `json:"walletId"`
	WalletDestinationID *string `json:"walletDestinationId,omitempty"`
	Date                string  `json:"date,omitempty"`
	AIGenerated         bool    `json:"aiGenerated,omitempty"`
	RawInput            *string `json:"rawInput,omitempty"`
}

type TransactionPageResponse struct {
	Transactions []*ledger.QueryRow `json:"transactions"`
	Total        int64              `json:"total"`
}

// HandleTransactions routes requests to the appropriate handler based on method
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *TransactionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := ledger.DefaultLimit
	if v := q.Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	offset := 0
	if v := q.Get("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		offset = parsed
	}

	var filter ledger.QueryFilter
	if v := q.Get("type"); v != "" {
		filter.Type = &v
	}
	if v := q.Get("categoryId"); v != "" {
		filter.CategoryID = &v
	}
	if v := q.Get("walletId"); v != "" {
		filter.WalletID = &v
	}
	if v := q.Get("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid startDate")
			return
		}
		filter.DateFrom = &t
	}
	if v := q.Get("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid endDate")
			return
		}
		filter.DateTo = &t
	}

	rows, total, err := h.transactions.Query(r.Context(), filter, limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if rows == nil {
		rows = []*ledger.QueryRow{}
	}

	respondData(w, http.StatusOK, TransactionPageResponse{Transactions: rows, Total: total})
}

func (h *TransactionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := ledger.CreateParams{
		Type:                req.Type,
		Amount:              req.Amount,
		Currency:            req.Currency,
		Description:         req.Description,
		CategoryID:          req.CategoryID,
		WalletID:            req.WalletID,
		WalletDestinationID: req.WalletDestinationID,
		AIGenerated:         req.AIGenerated,
		RawInput:            req.RawInput,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		params.Date = date
	}

	created, err := h.transactions.Create(r.Context(), params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

func (h *TransactionHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.transactions.Remove(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]bool{"success": true})
}
