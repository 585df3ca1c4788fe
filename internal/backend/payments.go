package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

type paymentEnvelope struct {
	Payment domain.Payment `json:"payment"`
}

// UploadPaymentProof sends the proof-of-payment file as multipart form data
// along with the chosen account id and the mapped payment method.
func (c *Client) UploadPaymentProof(ctx context.Context, orderID int64, accountID string, method domain.PaymentMethod, filename string, file io.Reader) (*domain.Payment, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("payment_proof", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy proof file: %w", err)
	}

	fields := map[string]string{
		"order_id":       fmt.Sprintf("%d", orderID),
		"bank":           accountID,
		"payment_method": string(method),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	path := fmt.Sprintf("/api/payments/upload/%d", orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp paymentEnvelope
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp.Payment, nil
}

func (c *Client) GetPaymentByOrder(ctx context.Context, orderID int64) (*domain.Payment, error) {
	var resp paymentEnvelope
	path := fmt.Sprintf("/api/payments/order/%d", orderID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Payment, nil
}

func (c *Client) VerifyPayment(ctx context.Context, paymentID int64) error {
	path := fmt.Sprintf("/api/payments/%d/verify", paymentID)
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) RejectPayment(ctx context.Context, paymentID int64, reason string) error {
	body := map[string]string{"rejection_reason": reason}
	path := fmt.Sprintf("/api/payments/%d/reject", paymentID)
	return c.doJSON(ctx, http.MethodPost, path, body, nil)
}
