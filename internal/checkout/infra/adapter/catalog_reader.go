package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, sku string) (checkoutapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, sku)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		SKU:   p.SKU,
		Name:  p.Name,
		Price: p.Price,
	}, nil
}
