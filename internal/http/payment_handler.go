package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/backend"
	"github.com/fitrinurazis/batik-storefront/internal/cart"
	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/fitrinurazis/batik-storefront/internal/orderstatus"
	"github.com/fitrinurazis/batik-storefront/internal/payment"
	"github.com/fitrinurazis/batik-storefront/internal/session"
	"github.com/go-chi/chi/v5"
)

// PaymentBackend is the slice of the backend client the payment flow needs.
type PaymentBackend interface {
	payment.ProofUploader
	TrackOrder(ctx context.Context, id int64) (*domain.Order, error)
	GetPaymentByOrder(ctx context.Context, orderID int64) (*domain.Payment, error)
	GetPaymentOptions(ctx context.Context) (*domain.PaymentOptions, error)
}

type PaymentHandler struct {
	backend PaymentBackend
	carts   *cart.Service
	orders  *session.OrderStore
	timeout time.Duration
	maxBody int64
}

func NewPaymentHandler(backend PaymentBackend, carts *cart.Service, orders *session.OrderStore, timeout time.Duration, maxBody int64) *PaymentHandler {
	return &PaymentHandler{
		backend: backend,
		carts:   carts,
		orders:  orders,
		timeout: timeout,
		maxBody: maxBody,
	}
}

// ClearSession drops the cart and the current-order slot once a payment flow
// confirms.
func (h *PaymentHandler) ClearSession(ctx context.Context, sessionID string) error {
	errCart := h.carts.Clear(ctx, sessionID)
	errOrder := h.orders.Clear(ctx, sessionID)
	return errors.Join(errCart, errOrder)
}

func (h *PaymentHandler) Methods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	options, err := h.backend.GetPaymentOptions(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, options)
}

type paymentStatusResponse struct {
	Order            *domain.Order     `json:"order"`
	Payment          *domain.Payment   `json:"payment,omitempty"`
	Badge            orderstatus.Badge `json:"payment_badge"`
	Deadline         time.Time         `json:"deadline"`
	RemainingSeconds int64             `json:"remaining_seconds"`
	Expired          bool              `json:"expired"`
}

// Status reports the order plus the advisory payment deadline. The countdown
// is anchored to the order's server-recorded created_at; the backend remains
// the source of truth for actual expiry.
func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
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

	options, err := h.backend.GetPaymentOptions(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// No payment record yet is a normal state for a fresh order.
	paymentRecord, err := h.backend.GetPaymentByOrder(ctx, orderID)
	if err != nil {
		var apiErr *backend.APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
			handleServiceError(w, err)
			return
		}
		paymentRecord = nil
	}

	flow := payment.NewFlow(order, *options, h.backend, h)
	respondJSON(w, http.StatusOK, paymentStatusResponse{
		Order:            order,
		Payment:          paymentRecord,
		Badge:            orderstatus.PaymentBadge(paymentRecord),
		Deadline:         flow.Deadline(),
		RemainingSeconds: int64(flow.Remaining().Seconds()),
		Expired:          flow.Expired(),
	})
}

// Confirm runs the whole payment flow for one request: select the method,
// stage the proof when one was sent, and confirm. Bank and e-wallet uploads
// arrive as multipart form data.
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	orderID, err := parseOrderID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a positive integer")
		return
	}

	// Oversized uploads are cut off at the transport before parsing.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := r.ParseMultipartForm(payment.MaxProofSize + 1<<20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid multipart form")
		return
	}

	order, err := h.backend.TrackOrder(ctx, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	options, err := h.backend.GetPaymentOptions(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	flow := payment.NewFlow(order, *options, h.backend, h)

	method := domain.PaymentMethod(r.FormValue("payment_method"))
	accountID := r.FormValue("bank")
	switch method {
	case domain.PaymentMethodBankTransfer:
		err = flow.SelectBank(accountID)
	case domain.PaymentMethodEwallet:
		err = flow.SelectEwallet(accountID)
	case domain.PaymentMethodCOD:
		err = flow.SelectCOD()
	default:
		respondError(w, http.StatusBadRequest, "invalid_method", "unknown payment method")
		return
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if file, header, errFile := r.FormFile("payment_proof"); errFile == nil {
		defer file.Close()
		proof := payment.ProofFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        file,
		}
		if err := flow.AttachProof(proof); err != nil {
			handleServiceError(w, err)
			return
		}
	}

	confirmation, err := flow.Confirm(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"confirmation": confirmation,
		"total":        flow.DisplayTotal(),
	})
}

func parseOrderID(r *http.Request) (int64, error) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, strconv.ErrSyntax
	}
	return orderID, nil
}
