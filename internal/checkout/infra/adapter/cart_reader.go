package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Snapshot(ctx context.Context) ([]checkoutapp.CartLine, uint64, error) {
	view, version, err := r.svc.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}

	items := make([]checkoutapp.CartLine, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, checkoutapp.CartLine{
			SKU:      it.SKU,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return items, version, nil
}

func (r *CartServiceReader) SubmitAt(ctx context.Context, version uint64) error {
	_, err := r.svc.SubmitAt(ctx, version)
	return err
}
