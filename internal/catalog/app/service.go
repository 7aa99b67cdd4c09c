package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	log *slog.Logger

	mu       sync.RWMutex
	products []domain.Product
	bySKU    map[string]int
}

func NewService(log *slog.Logger, seed []domain.Product) (*Service, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{log: log}
	if err := s.replace(seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products), nil
}

func (s *Service) GetProduct(ctx context.Context, sku string) (domain.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return domain.Product{}, ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.bySKU[sku]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: sku %q", ErrNotFound, sku)
	}
	return s.products[idx], nil
}

// Refresh replaces the catalog with the products src returns. When src fails
// or returns an invalid list the current catalog stays in place; the failure
// is logged and returned.
func (s *Service) Refresh(ctx context.Context, src ProductSource) error {
	products, err := src.Products(ctx)
	if err != nil {
		s.log.Warn("catalog refresh failed, keeping current products", slog.Any("err", err))
		return err
	}
	if err := s.replace(products); err != nil {
		s.log.Warn("catalog refresh rejected, keeping current products", slog.Any("err", err))
		return err
	}
	s.log.Info("catalog refreshed", slog.Int("products", len(products)))
	return nil
}

func (s *Service) replace(products []domain.Product) error {
	bySKU := make(map[string]int, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := bySKU[p.SKU]; dup {
			return fmt.Errorf("%w: duplicate sku %q", domain.ErrInvalidProduct, p.SKU)
		}
		bySKU[p.SKU] = i
	}

	s.mu.Lock()
	s.products = slices.Clone(products)
	s.bySKU = bySKU
	s.mu.Unlock()
	return nil
}
