package seed

import (
	"context"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// Products returns the storefront's built-in catalog.
func Products() []domain.Product {
	return []domain.Product{
		{SKU: "item0001", Name: "Widget", Price: decimal.RequireFromString("9.99")},
		{SKU: "item0002", Name: "Premium Widget", Price: decimal.RequireFromString("19.99")},
		{SKU: "item0003", Name: "Deluxe Widget", Price: decimal.RequireFromString("29.99")},
	}
}

type Source struct{}

func (Source) Products(ctx context.Context) ([]domain.Product, error) {
	return Products(), nil
}
