package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fitrinurazis/batik-storefront/internal/backend"
	"github.com/fitrinurazis/batik-storefront/internal/cart/repository"
	"github.com/fitrinurazis/batik-storefront/internal/checkout"
	"github.com/fitrinurazis/batik-storefront/internal/orderstatus"
	"github.com/fitrinurazis/batik-storefront/internal/payment"
	"github.com/fitrinurazis/batik-storefront/internal/session"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
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

// handleServiceError translates domain errors to HTTP status codes. Backend
// errors pass their status and server-provided message through.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		respondError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		respondError(w, apiErr.Status, "backend_error", apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, repository.ErrCartNotFound),
		errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, session.ErrNoCurrentOrder),
		errors.Is(err, orderstatus.ErrNoPayment):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, orderstatus.ErrPaymentNotPending),
		errors.Is(err, payment.ErrAlreadyCompleted):
		respondError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, payment.ErrPaymentWindowClosed):
		respondError(w, http.StatusGone, "payment_window_closed", err.Error())
	case errors.Is(err, payment.ErrProofRequired),
		errors.Is(err, payment.ErrProofTooLarge),
		errors.Is(err, payment.ErrProofBadType),
		errors.Is(err, payment.ErrProofNotAccepted),
		errors.Is(err, payment.ErrNoMethodSelected),
		errors.Is(err, payment.ErrUnknownAccount),
		errors.Is(err, payment.ErrCODDisabled),
		errors.Is(err, orderstatus.ErrEmptyReason):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
