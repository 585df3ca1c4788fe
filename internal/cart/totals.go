package cart

import (
	"context"
	"log"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Totals resolves every line against live product data and accumulates the
// cart's derived amounts. Lines whose product no longer exists are skipped
// silently and contribute nothing, quantity included. Shipping is decided at
// checkout, so GrandTotal equals Subtotal here.
func (s *Service) Totals(ctx context.Context, sessionID string) (domain.CartTotals, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.CartTotals{}, err
	}

	var (
		subtotal      = decimal.Zero
		totalDiscount = decimal.Zero
		totalItems    int
	)

	for _, line := range cart.Items {
		product, errGet := s.products.GetProduct(ctx, line.ProductID)
		if errGet != nil || product == nil {
			log.Printf("skipping unresolvable product %d in totals: %v", line.ProductID, errGet)
			continue
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(product.FinalPrice().Mul(qty))
		totalDiscount = totalDiscount.Add(product.UnitDiscount().Mul(qty))
		totalItems += line.Quantity
	}

	return domain.CartTotals{
		Subtotal:      subtotal.InexactFloat64(),
		TotalItems:    totalItems,
		TotalDiscount: totalDiscount.InexactFloat64(),
		GrandTotal:    subtotal.InexactFloat64(),
	}, nil
}
