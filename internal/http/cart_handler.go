package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/cart"
	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts    *cart.Service
	products cart.ProductResolver
	timeout  time.Duration
}

func NewCartHandler(carts *cart.Service, products cart.ProductResolver, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		timeout:  timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Cart   *domain.Cart      `json:"cart"`
	Totals domain.CartTotals `json:"totals"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	cartData, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	totals, err := h.carts.Totals(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse{Cart: cartData, Totals: totals})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	// Stock ceiling is enforced here against live product data, not inside
	// the store.
	product, err := h.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	existing := 0
	if current, errGet := h.carts.Get(ctx, sessionID); errGet == nil {
		if line := current.Line(req.ProductID); line != nil {
			existing = line.Quantity
		}
	}
	if !product.InStock(existing + req.Quantity) {
		respondError(w, http.StatusBadRequest, "insufficient_stock", "requested quantity exceeds available stock")
		return
	}

	line := domain.CartLine{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Name:      product.Name,
		Price:     product.Price,
	}
	if err := h.carts.AddItem(ctx, sessionID, line); err != nil {
		handleServiceError(w, err)
		return
	}

	updated, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse{Cart: updated})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, err := h.products.GetProduct(ctx, productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if !product.InStock(req.Quantity) {
		respondError(w, http.StatusBadRequest, "insufficient_stock", "requested quantity exceeds available stock")
		return
	}

	if err := h.carts.SetQuantity(ctx, sessionID, productID, req.Quantity); err != nil {
		handleServiceError(w, err)
		return
	}

	updated, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse{Cart: updated})
}

// RemoveItem is two-phase: without confirm=true the handler stages the
// removal and answers 409, mirroring the storefront's confirmation dialog.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		respondJSON(w, http.StatusConflict, ErrorResponse{
			Error:   "removal requires confirmation",
			Code:    "confirm_required",
			Details: "repeat the request with confirm=true",
		})
		return
	}

	if err := h.carts.RemoveItem(ctx, sessionID, productID); err != nil {
		handleServiceError(w, err)
		return
	}

	updated, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse{Cart: updated})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		respondJSON(w, http.StatusConflict, ErrorResponse{
			Error:   "clearing the cart requires confirmation",
			Code:    "confirm_required",
			Details: "repeat the request with confirm=true",
		})
		return
	}

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *CartHandler) Totals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "no_session", "missing session")
		return
	}

	totals, err := h.carts.Totals(ctx, sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, totals)
}

func parseProductID(r *http.Request) (int64, error) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return 0, strconv.ErrSyntax
	}
	return productID, nil
}
