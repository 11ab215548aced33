package http

import (
	"encoding/json"
	"net/http"

	"gastos/internal/domain/category"
)

type CategoryHandler struct {
	categories *category.Service
}

func NewCategoryHandler(categories *category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Request DTOs

type CreateCategoryRequest struct {
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji"`
	Color       string   `json:"color"`
	Type        string   `json:"type"`
	BudgetLimit *float64 `json:"budgetLimit,omitempty"`
}

// UpdateCategoryRequest distinguishes "leave the budget alone" (field
// absent) from "remove the limit" (explicit null) by decoding into a
// double pointer.
type UpdateCategoryRequest struct {
	ID          string    `json:"id"`
	Name        *string   `json:"name,omitempty"`
	Emoji       *string   `json:"emoji,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Type        *string   `json:"type,omitempty"`
	BudgetLimit **float64 `json:"budgetLimit,omitempty"`
	IsArchived  *bool     `json:"isArchived,omitempty"`
}

// HandleCategories routes requests to the appropriate handler based on method
func (h *CategoryHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
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

func (h *CategoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	categories, err := h.categories.ListCategories(r.Context(), includeArchived)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if categories == nil {
		categories = []*category.Category{}
	}

	respondData(w, http.StatusOK, categories)
}

func (h *CategoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.categories.CreateCategory(r.Context(), category.CreateParams{
		Name:        req.Name,
		Emoji:       req.Emoji,
		Color:       req.Color,
		Type:        req.Type,
		BudgetLimit: req.BudgetLimit,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

func (h *CategoryHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	params := category.UpdateParams{
		Name:     req.Name,
		Emoji:    req.Emoji,
		Color:    req.Color,
		Type:     req.Type,
		Archived: req.IsArchived,
	}
	if req.BudgetLimit != nil {
		if *req.BudgetLimit == nil {
			params.ClearBudget = true
		} else {
			params.BudgetLimit = *req.BudgetLimit
		}
	}

	updated, err := h.categories.UpdateCategory(r.Context(), req.ID, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

func (h *CategoryHandler) handleArchive(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.categories.ArchiveCategory(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]bool{"success": true})
}
