package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, sku string) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, sku)
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		SKU:   p.SKU,
		Name:  p.Name,
		Price: p.Price,
	}, nil
}
