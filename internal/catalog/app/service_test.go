package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type fakeSource struct {
	products []domain.Product
	err      error
}

func (f fakeSource) Products(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{SKU: "item0001", Name: "Widget", Price: decimal.RequireFromString("9.99")},
		{SKU: "item0002", Name: "Premium Widget", Price: decimal.RequireFromString("19.99")},
	}
}

func TestNewServiceValidation(t *testing.T) {
	t.Run("short sku -> invalid", func(t *testing.T) {
		_, err := NewService(quietLogger(), []domain.Product{{SKU: "x1", Name: "Widget"}})
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("non-numeric suffix -> invalid", func(t *testing.T) {
		_, err := NewService(quietLogger(), []domain.Product{{SKU: "itemABCD", Name: "Widget"}})
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := NewService(quietLogger(), []domain.Product{{SKU: "item0001", Name: "Widget", Price: decimal.NewFromInt(-1)}})
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("duplicate sku -> invalid", func(t *testing.T) {
		p := seedProducts()[0]
		_, err := NewService(quietLogger(), []domain.Product{p, p})
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})
}

func TestGetProduct(t *testing.T) {
	svc, err := NewService(quietLogger(), seedProducts())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	t.Run("blank sku -> invalid", func(t *testing.T) {
		if _, err := svc.GetProduct(context.Background(), "  "); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown sku -> not found", func(t *testing.T) {
		if _, err := svc.GetProduct(context.Background(), "item9999"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("known sku", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), "item0002")
		if err != nil || p.Name != "Premium Widget" {
			t.Fatalf("unexpected result %+v, %v", p, err)
		}
	})
}

func TestListProductsReturnsCopy(t *testing.T) {
	svc, err := NewService(quietLogger(), seedProducts())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}

	list, _ := svc.ListProducts(context.Background())
	list[0].Name = "Tampered"

	again, _ := svc.ListProducts(context.Background())
	if again[0].Name != "Widget" {
		t.Fatalf("catalog was mutated through ListProducts")
	}
}

func TestRefresh(t *testing.T) {
	t.Run("failure keeps current products", func(t *testing.T) {
		svc, _ := NewService(quietLogger(), seedProducts())
		err := svc.Refresh(context.Background(), fakeSource{err: errors.New("connection refused")})
		if err == nil {
			t.Fatalf("expected error")
		}
		list, _ := svc.ListProducts(context.Background())
		if len(list) != 2 {
			t.Fatalf("expected seed to survive, got %d products", len(list))
		}
	})

	t.Run("invalid feed keeps current products", func(t *testing.T) {
		svc, _ := NewService(quietLogger(), seedProducts())
		err := svc.Refresh(context.Background(), fakeSource{products: []domain.Product{{SKU: "bad"}}})
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
		if _, err := svc.GetProduct(context.Background(), "item0001"); err != nil {
			t.Fatalf("seed product lost: %v", err)
		}
	})

	t.Run("success swaps the list", func(t *testing.T) {
		svc, _ := NewService(quietLogger(), seedProducts())
		feed := []domain.Product{{SKU: "item0042", Name: "Gizmo", Price: decimal.RequireFromString("4.50")}}
		if err := svc.Refresh(context.Background(), fakeSource{products: feed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.GetProduct(context.Background(), "item0001"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected old product gone, got %v", err)
		}
		if p, err := svc.GetProduct(context.Background(), "item0042"); err != nil || p.Name != "Gizmo" {
			t.Fatalf("unexpected result %+v, %v", p, err)
		}
	})
}
