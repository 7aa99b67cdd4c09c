package app

import (
	"context"

	"github.com/shopspring/decimal"
)

type CatalogReader interface {
	GetProduct(ctx context.Context, sku string) (Product, error)
}

type Product struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}
