package app

import (
	"context"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
)

// ProductSource supplies the full product list, either the static seed or an
// external feed.
type ProductSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
}
