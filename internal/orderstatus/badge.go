package orderstatus

import "github.com/fitrinurazis/batik-storefront/internal/domain"

// Badge is the combined payment-status badge shown on both the customer and
// admin views. Order status and payment status are independent but
// correlated, so the badge derives only from the payment record.
type Badge struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func PaymentBadge(payment *domain.Payment) Badge {
	if payment == nil {
		return Badge{Code: "not_uploaded", Label: "Belum ada bukti pembayaran"}
	}

	switch payment.Status {
	case domain.PaymentStatusPending:
		return Badge{Code: "awaiting_verification", Label: "Menunggu verifikasi"}
	case domain.PaymentStatusVerified:
		return Badge{Code: "paid", Label: "Lunas"}
	case domain.PaymentStatusRejected:
		return Badge{Code: "rejected", Label: "Ditolak, harap unggah ulang"}
	default:
		return Badge{Code: "unknown", Label: string(payment.Status)}
	}
}
