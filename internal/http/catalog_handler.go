package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/catalog"
	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

// ProductLister is the slice of the backend client the catalog needs.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

type CatalogHandler struct {
	backend ProductLister
	timeout time.Duration
}

func NewCatalogHandler(backend ProductLister, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		backend: backend,
		timeout: timeout,
	}
}

// ListProducts fetches the full catalog from upstream and applies
// search/category/sort filters plus pagination locally, the way the
// storefront always has.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.backend.ListProducts(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := catalog.Apply(products, catalog.Filter{
		Query:    q.Get("search"),
		Category: q.Get("category"),
		Sort:     catalog.SortOrder(q.Get("sort")),
	})

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	respondJSON(w, http.StatusOK, catalog.Paginate(filtered, page, perPage))
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	product, err := h.backend.GetProduct(ctx, productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
