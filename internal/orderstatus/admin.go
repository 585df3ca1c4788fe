package orderstatus

import (
	"context"
	"errors"
	"strings"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

var (
	ErrNoPayment         = errors.New("order has no payment to act on")
	ErrPaymentNotPending = errors.New("payment is not awaiting verification")
	ErrEmptyReason       = errors.New("rejection reason must not be empty")
)

type PaymentAdmin interface {
	VerifyPayment(ctx context.Context, paymentID int64) error
	RejectPayment(ctx context.Context, paymentID int64, reason string) error
}

// AdminService guards the admin payment actions before they hit the backend.
// Failures are surfaced as-is; the client never retries on its own.
type AdminService struct {
	backend PaymentAdmin
}

func NewAdminService(backend PaymentAdmin) *AdminService {
	return &AdminService{backend: backend}
}

// Verify requires the payment to be awaiting verification.
func (s *AdminService) Verify(ctx context.Context, payment *domain.Payment) error {
	if payment == nil {
		return ErrNoPayment
	}
	if payment.Status != domain.PaymentStatusPending {
		return ErrPaymentNotPending
	}
	return s.backend.VerifyPayment(ctx, payment.ID)
}

// Reject blocks before the network call when the reason is empty.
func (s *AdminService) Reject(ctx context.Context, payment *domain.Payment, reason string) error {
	if payment == nil {
		return ErrNoPayment
	}
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	return s.backend.RejectPayment(ctx, payment.ID, reason)
}
