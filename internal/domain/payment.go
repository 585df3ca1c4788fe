package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "transfer_bank"
	PaymentMethodEwallet      PaymentMethod = "ewallet"
	PaymentMethodCOD          PaymentMethod = "cod"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment is the upstream record of a proof-of-payment or COD confirmation.
// Verify/reject transitions are admin-only and happen server-side.
type Payment struct {
	ID              int64         `json:"id"`
	OrderID         int64         `json:"order_id"`
	Method          PaymentMethod `json:"payment_method"`
	Amount          float64       `json:"amount"`
	Status          PaymentStatus `json:"status"`
	ProofURL        string        `json:"payment_proof,omitempty"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	VerifiedAt      *time.Time    `json:"verified_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

type EwalletAccount struct {
	ID            string `json:"id"`
	Provider      string `json:"provider"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// PaymentOptions is the backend-configured set of enabled payment methods.
type PaymentOptions struct {
	Banks      []BankAccount    `json:"banks"`
	Ewallets   []EwalletAccount `json:"ewallets"`
	CODEnabled bool             `json:"cod_enabled"`
	CODFee     float64          `json:"cod_fee"`
}

func (o PaymentOptions) Bank(id string) *BankAccount {
	for i := range o.Banks {
		if o.Banks[i].ID == id {
			return &o.Banks[i]
		}
	}
	return nil
}

func (o PaymentOptions) Ewallet(id string) *EwalletAccount {
	for i := range o.Ewallets {
		if o.Ewallets[i].ID == id {
			return &o.Ewallets[i]
		}
	}
	return nil
}

// ShopSettings is the public shop contact block served by the backend.
type ShopSettings struct {
	ShopName string `json:"shop_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Address  string `json:"address,omitempty"`
}
