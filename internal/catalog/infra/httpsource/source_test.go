package httpsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProducts(t *testing.T) {
	t.Run("decodes numeric prices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"sku":"item0001","name":"Widget","price":9.99},{"sku":"item0042","name":"Gizmo","price":"4.50"}]`))
		}))
		defer srv.Close()

		products, err := New(srv.URL, time.Second).Products(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].Price.String() != "9.99" || products[1].Price.String() != "4.5" {
			t.Fatalf("unexpected prices %s, %s", products[0].Price, products[1].Price)
		}
	})

	t.Run("non-200 -> error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		if _, err := New(srv.URL, time.Second).Products(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad json -> error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"products":`))
		}))
		defer srv.Close()

		if _, err := New(srv.URL, time.Second).Products(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
