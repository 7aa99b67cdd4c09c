package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	cartdomain "github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CartReader reads the cart as a versioned snapshot and clears it only if it
// has not moved since that snapshot.
type CartReader interface {
	Snapshot(ctx context.Context) ([]CartLine, uint64, error)
	SubmitAt(ctx context.Context, version uint64) error
}

type CartLine struct {
	SKU      string
	Name     string
	Price    decimal.Decimal
	Quantity int
}

type CatalogReader interface {
	GetProduct(ctx context.Context, sku string) (Product, error)
}

type Product struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	log           *slog.Logger
	maxConcurrent int
	now           func() time.Time
}

func NewService(log *slog.Logger, cart CartReader, catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		log:           log,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

var ErrEmptyCart = errors.New("cart is empty")

// Quote prices every cart line against the current catalog.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items, _, err := s.Cart.Snapshot(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	return s.quote(ctx, items)
}

func (s *Service) quote(ctx context.Context, items []CartLine) (domain.Quote, error) {
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(gctx, it.SKU)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.SKU, err)
			}

			line := domain.QuoteLine{
				SKU:       product.SKU,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
			}
			if !it.Price.Equal(product.Price) {
				cartPrice := it.Price
				line.CartPrice = &cartPrice
			}
			lines[idx] = line
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	total := decimal.Zero
	count := 0
	for _, line := range lines {
		total = total.Add(line.LineTotal)
		count += line.Quantity
	}

	return domain.Quote{
		Lines:      lines,
		TotalItems: count,
		Total:      total,
		Formatted:  cartdomain.FormatUSD(total),
	}, nil
}

// Checkout quotes a snapshot of the cart and clears the cart only if it still
// matches that snapshot. A cart that changed while pricing is left as it is
// and the cart store's conflict error is returned.
func (s *Service) Checkout(ctx context.Context) (domain.Receipt, error) {
	items, version, err := s.Cart.Snapshot(ctx)
	if err != nil {
		return domain.Receipt{}, err
	}

	q, err := s.quote(ctx, items)
	if err != nil {
		return domain.Receipt{}, err
	}

	if err := s.Cart.SubmitAt(ctx, version); err != nil {
		s.log.Warn("checkout not placed", slog.Uint64("version", version), slog.Any("err", err))
		return domain.Receipt{}, fmt.Errorf("submit cart: %w", err)
	}

	receipt := domain.Receipt{
		ID:       uuid.NewString(),
		Quote:    q,
		PlacedAt: s.now().UTC(),
	}
	s.log.Info("order placed",
		slog.String("receipt_id", receipt.ID),
		slog.Int("total_items", q.TotalItems),
		slog.String("total", q.Formatted),
		slog.Bool("price_changed", q.PriceChanged()),
	)
	return receipt, nil
}
