package orderstatus

import (
	"context"
	"testing"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentAdmin struct {
	verified []int64
	rejected []int64
	reason   string
}

func (m *mockPaymentAdmin) VerifyPayment(_ context.Context, paymentID int64) error {
	m.verified = append(m.verified, paymentID)
	return nil
}

func (m *mockPaymentAdmin) RejectPayment(_ context.Context, paymentID int64, reason string) error {
	m.rejected = append(m.rejected, paymentID)
	m.reason = reason
	return nil
}

func TestVerify(t *testing.T) {
	backend := &mockPaymentAdmin{}
	svc := NewAdminService(backend)

	err := svc.Verify(context.Background(), &domain.Payment{ID: 3, Status: domain.PaymentStatusPending})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, backend.verified)
}

func TestVerify_RequiresPendingPayment(t *testing.T) {
	backend := &mockPaymentAdmin{}
	svc := NewAdminService(backend)

	err := svc.Verify(context.Background(), &domain.Payment{ID: 3, Status: domain.PaymentStatusVerified})
	assert.ErrorIs(t, err, ErrPaymentNotPending)
	assert.Empty(t, backend.verified, "backend must not be called")

	err = svc.Verify(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoPayment)
}

func TestReject(t *testing.T) {
	backend := &mockPaymentAdmin{}
	svc := NewAdminService(backend)

	err := svc.Reject(context.Background(), &domain.Payment{ID: 5, Status: domain.PaymentStatusPending}, "bukti transfer tidak terbaca")
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, backend.rejected)
	assert.Equal(t, "bukti transfer tidak terbaca", backend.reason)
}

func TestReject_EmptyReasonBlocked(t *testing.T) {
	backend := &mockPaymentAdmin{}
	svc := NewAdminService(backend)

	payment := &domain.Payment{ID: 5, Status: domain.PaymentStatusPending}

	assert.ErrorIs(t, svc.Reject(context.Background(), payment, ""), ErrEmptyReason)
	assert.ErrorIs(t, svc.Reject(context.Background(), payment, "   "), ErrEmptyReason)
	assert.Empty(t, backend.rejected, "backend must not be called without a reason")
}
