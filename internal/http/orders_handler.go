package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/fitrinurazis/batik-storefront/internal/orderstatus"
	"github.com/fitrinurazis/batik-storefront/internal/session"
)

// OrderBackend is the slice of the backend client the order views need.
type OrderBackend interface {
	TrackOrder(ctx context.Context, id int64) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type OrdersHandler struct {
	backend OrderBackend
	admin   *orderstatus.AdminService
	current *session.OrderStore
	timeout time.Duration
}

func NewOrdersHandler(backend OrderBackend, admin *orderstatus.AdminService, current *session.OrderStore, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		backend: backend,
		admin:   admin,
		current: current,
		timeout: timeout,
	}
}

type orderStatusResponse struct {
	Order    *domain.Order       `json:"order"`
	Timeline []orderstatus.Stage `json:"timeline"`
	Badge    orderstatus.Badge   `json:"payment_badge"`
}

// Track is the public, read-only customer view: order, timeline, badge.
func (h *OrdersHandler) Track(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	order, err := h.backend.TrackOrder(ctx, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orderStatusResponse{
		Order:    order,
		Timeline: orderstatus.Timeline(order),
		Badge:    orderstatus.PaymentBadge(order.Payment),
	})
}

// Current returns the session's in-flight order from checkout, if any.
func (h *OrdersHandler) Current(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	order, err := h.current.Get(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"order": order})
}

// AdminGet is the admin order view with the same timeline and badge.
func (h *OrdersHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	order, err := h.backend.GetOrder(ctx, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orderStatusResponse{
		Order:    order,
		Timeline: orderstatus.Timeline(order),
		Badge:    orderstatus.PaymentBadge(order.Payment),
	})
}

type updateStatusRequestDTO struct {
	Status string `json:"status"`
}

func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	var req updateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		return
	}

	if err := h.backend.UpdateOrderStatus(ctx, orderID, status); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// VerifyPayment transitions the order's payment to verified. The payment
// must still be awaiting verification.
func (h *OrdersHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	order, err := h.backend.GetOrder(ctx, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.admin.Verify(ctx, order.Payment); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

type rejectPaymentRequestDTO struct {
	RejectionReason string `json:"rejection_reason"`
}

// RejectPayment requires a non-empty reason; empty input never reaches the
// backend.
func (h *OrdersHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := parseOrderID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	var req rejectPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.backend.GetOrder(ctx, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.admin.Reject(ctx, order.Payment, req.RejectionReason); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}
