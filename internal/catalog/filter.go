package catalog

import (
	"sort"
	"strings"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortName      SortOrder = "name"
)

type Filter struct {
	Query    string
	Category string
	Sort     SortOrder
}

// Apply filters and sorts the product list without mutating the input.
// Search matches name or description case-insensitively; category is an
// exact match. Price sorts use the discounted price, which is what the
// customer actually pays.
func Apply(products []domain.Product, f Filter) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		result = append(result, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].FinalPrice().LessThan(result[j].FinalPrice())
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].FinalPrice().LessThan(result[i].FinalPrice())
		})
	case SortName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].CreatedAt.Equal(result[j].CreatedAt) {
				return result[i].ID > result[j].ID
			}
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}

type Page struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
}

const DefaultPerPage = 12

// Paginate slices the list for the requested page. Out-of-range pages clamp
// to the nearest valid page instead of erroring.
func Paginate(products []domain.Product, page, perPage int) Page {
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	totalItems := len(products)
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Items:      products[start:end],
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
