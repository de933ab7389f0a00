package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/thiagolinoz/fastfood-orders/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError maps the domain error kinds to HTTP responses. State
// conflicts are unprocessable rather than bad requests, so callers can tell
// a rejected transition from a malformed one.
func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrStateConflict):
		respondError(w, http.StatusUnprocessableEntity, "state_conflict", err.Error())
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusBadRequest, "not_found", err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		respondError(w, http.StatusBadRequest, "product_unavailable", err.Error())
	case errors.Is(err, domain.ErrUpstream):
		respondError(w, http.StatusBadGateway, "upstream_error", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
