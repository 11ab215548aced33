package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gastos/internal/domain/category"
	"gastos/internal/domain/interpret"
	"gastos/internal/domain/ledger"
	"gastos/internal/domain/wallet"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dataEnvelope{Data: data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Error: msg})
}

// respondDomainError maps domain errors onto HTTP statuses. Anything not in
// the taxonomy is a 500 with a generic message; the details go to the log.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wallet.ErrValidation),
		errors.Is(err, category.ErrValidation),
		errors.Is(err, ledger.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, wallet.ErrNotFound),
		errors.Is(err, category.ErrNotFound),
		errors.Is(err, ledger.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, interpret.ErrInterpreter):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("Internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
