package payment

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateMethodUnselected State = "method_unselected"
	StateMethodSelected   State = "method_selected"
	StateConfirming       State = "confirming"
	StateCompleted        State = "completed"
	StateExpired          State = "expired"
)

// Window is how long the customer has to confirm payment, anchored to the
// order's server-recorded creation time. It is advisory; the backend remains
// authoritative for whether a pending order has expired.
const Window = 24 * time.Hour

var (
	ErrNoMethodSelected    = errors.New("no payment method selected")
	ErrProofNotAccepted    = errors.New("cash on delivery does not take a payment proof")
	ErrProofRequired       = errors.New("payment proof is required before confirming")
	ErrUnknownAccount      = errors.New("unknown payment account")
	ErrCODDisabled         = errors.New("cash on delivery is not available")
	ErrAlreadyCompleted    = errors.New("payment already confirmed")
	ErrPaymentWindowClosed = errors.New("payment window has closed")
)

type ProofUploader interface {
	UploadPaymentProof(ctx context.Context, orderID int64, accountID string, method domain.PaymentMethod, filename string, file io.Reader) (*domain.Payment, error)
}

// SessionCleaner drops the session's cart and current-order slot once the
// flow reaches Confirming.
type SessionCleaner interface {
	ClearSession(ctx context.Context, sessionID string) error
}

// Flow drives one order from created to awaiting-verification (or COD
// confirmed). Bank and e-wallet methods require a validated proof file before
// Confirm is allowed; COD confirms immediately but adds the configured fee to
// the displayed total.
type Flow struct {
	order   *domain.Order
	options domain.PaymentOptions

	state     State
	method    domain.PaymentMethod
	accountID string
	proof     *ProofFile

	uploader ProofUploader
	cleaner  SessionCleaner
	now      func() time.Time
}

func NewFlow(order *domain.Order, options domain.PaymentOptions, uploader ProofUploader, cleaner SessionCleaner) *Flow {
	return &Flow{
		order:    order,
		options:  options,
		state:    StateMethodUnselected,
		uploader: uploader,
		cleaner:  cleaner,
		now:      time.Now,
	}
}

func (f *Flow) State() State {
	if f.state != StateCompleted && f.Expired() {
		return StateExpired
	}
	return f.state
}

func (f *Flow) Method() domain.PaymentMethod {
	return f.method
}

func (f *Flow) SelectBank(accountID string) error {
	account := f.options.Bank(accountID)
	if account == nil {
		return ErrUnknownAccount
	}
	return f.selectMethod(domain.PaymentMethodBankTransfer, accountID)
}

func (f *Flow) SelectEwallet(accountID string) error {
	account := f.options.Ewallet(accountID)
	if account == nil {
		return ErrUnknownAccount
	}
	return f.selectMethod(domain.PaymentMethodEwallet, accountID)
}

func (f *Flow) SelectCOD() error {
	if !f.options.CODEnabled {
		return ErrCODDisabled
	}
	return f.selectMethod(domain.PaymentMethodCOD, "")
}

func (f *Flow) selectMethod(method domain.PaymentMethod, accountID string) error {
	if f.state == StateCompleted {
		return ErrAlreadyCompleted
	}
	if f.Expired() {
		return ErrPaymentWindowClosed
	}

	f.method = method
	f.accountID = accountID
	f.proof = nil // switching methods discards any staged proof
	f.state = StateMethodSelected
	return nil
}

// AttachProof stages a validated proof file. Rejected files never reach the
// network and leave Confirm blocked.
func (f *Flow) AttachProof(proof ProofFile) error {
	if f.method == "" {
		return ErrNoMethodSelected
	}
	if f.method == domain.PaymentMethodCOD {
		return ErrProofNotAccepted
	}
	if err := proof.Validate(); err != nil {
		return err
	}

	f.proof = &proof
	return nil
}

// CanConfirm reports whether the confirm action is enabled: COD immediately
// after selection, bank/e-wallet only once a proof is staged.
func (f *Flow) CanConfirm() bool {
	if f.state != StateMethodSelected || f.Expired() {
		return false
	}
	if f.method == domain.PaymentMethodCOD {
		return true
	}
	return f.proof != nil
}

// DisplayTotal is the amount shown to the customer: the order total, plus the
// COD fee when COD is selected.
func (f *Flow) DisplayTotal() float64 {
	total := decimal.NewFromFloat(f.order.Total)
	if f.method == domain.PaymentMethodCOD {
		total = total.Add(decimal.NewFromFloat(f.options.CODFee))
	}
	return total.InexactFloat64()
}

// Confirmation reflects the customer's contact details back on the success
// screen.
type Confirmation struct {
	OrderID int64           `json:"order_id"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Payment *domain.Payment `json:"payment,omitempty"`
}

// Confirm uploads the proof for bank/e-wallet methods, or completes directly
// for COD. The session's cart and current-order slot are cleared either way.
func (f *Flow) Confirm(ctx context.Context, sessionID string) (*Confirmation, error) {
	if f.state == StateCompleted {
		return nil, ErrAlreadyCompleted
	}
	if f.Expired() {
		f.state = StateExpired
		return nil, ErrPaymentWindowClosed
	}
	if f.method == "" {
		return nil, ErrNoMethodSelected
	}

	f.state = StateConfirming

	var payment *domain.Payment
	if f.method != domain.PaymentMethodCOD {
		if f.proof == nil {
			f.state = StateMethodSelected
			return nil, ErrProofRequired
		}

		uploaded, err := f.uploader.UploadPaymentProof(ctx, f.order.ID, f.accountID, f.method, f.proof.Filename, f.proof.Data)
		if err != nil {
			f.state = StateMethodSelected
			return nil, err
		}
		payment = uploaded
	}

	if err := f.cleaner.ClearSession(ctx, sessionID); err != nil {
		log.Printf("failed to clear session %s after payment: %v", sessionID, err)
	}

	f.state = StateCompleted
	return &Confirmation{
		OrderID: f.order.ID,
		Email:   f.order.Email,
		Phone:   f.order.Phone,
		Payment: payment,
	}, nil
}

// Deadline is the end of the payment window, anchored strictly to the
// order's created_at.
func (f *Flow) Deadline() time.Time {
	return f.order.CreatedAt.Add(Window)
}

func (f *Flow) Remaining() time.Duration {
	remaining := f.Deadline().Sub(f.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (f *Flow) Expired() bool {
	return !f.now().Before(f.Deadline())
}
