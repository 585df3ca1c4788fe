package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *TokenStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := NewTokenStore()
	client := NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, tokens)
	return client, tokens
}

func TestListProducts_Envelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"id":1,"name":"Batik Parang","price":250000},{"id":2,"name":"Batik Mega Mendung","price":180000}]}`))
	})

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Batik Parang", products[0].Name)
	assert.Equal(t, 250000.0, products[0].Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Produk tidak ditemukan"}`))
	})

	_, err := client.GetProduct(context.Background(), 999)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Produk tidak ditemukan", apiErr.Message)
}

func TestAPIError_MessagePreference(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field wins", `{"message":"stok habis","error":"ignored"}`, "stok habis"},
		{"error field fallback", `{"error":"invalid order"}`, "invalid order"},
		{"non json body", `<html>bad gateway</html>`, genericUnreachableMsg},
		{"empty body", ``, genericUnreachableMsg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(http.StatusBadRequest, []byte(tt.body))
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestDo_UnauthorizedClearsToken(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	tokens.Set("stale-token")

	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, tokens.Token(), "401 must drop the stored token")
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"user":{"id":1,"username":"admin"}}`))
	})
	tokens.Set("abc123")

	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestDo_PropagatesRequestID(t *testing.T) {
	var gotRequestID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"products":[]}`))
	})

	ctx := context.WithValue(context.Background(), "request_id", "req-123")
	_, err := client.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-123", gotRequestID)
}

func TestLogin_StoresToken(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"jwt-token","user":{"id":1,"username":"admin"}}`))
	})

	user, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "jwt-token", tokens.Token())
}

func TestLogout_ClearsTokenEvenOnBackendError(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	tokens.Set("abc123")

	err := client.Logout(context.Background())
	require.Error(t, err)
	assert.Empty(t, tokens.Token())
}

func TestUploadPaymentProof_Multipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/upload/42", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		assert.Equal(t, "42", r.FormValue("order_id"))
		assert.Equal(t, "bca", r.FormValue("bank"))
		assert.Equal(t, "transfer_bank", r.FormValue("payment_method"))

		file, header, err := r.FormFile("payment_proof")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "bukti.jpg", header.Filename)

		w.Write([]byte(`{"payment":{"id":7,"order_id":42,"status":"pending"}}`))
	})

	payment, err := client.UploadPaymentProof(context.Background(), 42, "bca", "transfer_bank", "bukti.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), payment.ID)
}

func TestGetPaymentByOrder_Envelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/order/42", r.URL.Path)
		w.Write([]byte(`{"payment":{"id":7,"order_id":42,"payment_method":"transfer_bank","status":"pending"}}`))
	})

	payment, err := client.GetPaymentByOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), payment.ID)
	assert.Equal(t, "pending", string(payment.Status))
}

func TestRejectPayment_SendsReason(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/5/reject", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		w.Write([]byte(`{}`))
	})

	err := client.RejectPayment(context.Background(), 5, "bukti tidak terbaca")
	require.NoError(t, err)
	assert.JSONEq(t, `{"rejection_reason":"bukti tidak terbaca"}`, gotBody)
}
