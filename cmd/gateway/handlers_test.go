package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront-cart/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront-cart/api/checkout/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeCart struct {
	lastDispatch *cartv1.DispatchRequest
}

func (f *fakeCart) Dispatch(ctx context.Context, in *cartv1.DispatchRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	f.lastDispatch = in
	if in.Payload == nil && in.Type != "SUBMIT" {
		return nil, status.Error(codes.InvalidArgument, "action payload missing")
	}
	return &cartv1.Cart{ID: "cart-1", TotalItems: 1, FormattedTotal: "$9.99"}, nil
}

func (f *fakeCart) GetCart(ctx context.Context, in *cartv1.GetCartRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return &cartv1.Cart{ID: "cart-1", Items: []*cartv1.LineItem{}}, nil
}

func (f *fakeCart) AddProduct(ctx context.Context, in *cartv1.AddProductRequest, _ ...grpc.CallOption) (*cartv1.Cart, error) {
	return nil, status.Error(codes.NotFound, "not found: sku "+in.SKU)
}

type fakeCatalog struct{ catalogv1.CatalogServiceClient }

func (fakeCatalog) ListProducts(ctx context.Context, in *catalogv1.ListProductsRequest, _ ...grpc.CallOption) (*catalogv1.ListProductsResponse, error) {
	return &catalogv1.ListProductsResponse{Products: []*catalogv1.Product{{SKU: "item0001", Name: "Widget", Price: "9.99"}}}, nil
}

type fakeCheckout struct {
	checkoutv1.CheckoutServiceClient
}

func (fakeCheckout) Checkout(ctx context.Context, in *checkoutv1.CheckoutRequest, _ ...grpc.CallOption) (*checkoutv1.CheckoutResponse, error) {
	return nil, status.Error(codes.Unavailable, "cart store closed")
}

func newTestHandler(cart *fakeCart) http.Handler {
	h := &handlers{
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalog:  fakeCatalog{},
		cart:     cart,
		checkout: fakeCheckout{},
	}
	return h.routes()
}

func TestGatewayRoutes(t *testing.T) {
	t.Run("dispatch accepts numeric prices", func(t *testing.T) {
		cart := &fakeCart{}
		rec := httptest.NewRecorder()
		body := `{"type":"ADD","payload":{"sku":"item0001","name":"Widget","price":9.99}}`
		newTestHandler(cart).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/actions", strings.NewReader(body)))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if cart.lastDispatch == nil || cart.lastDispatch.Payload.Price != "9.99" {
			t.Fatalf("unexpected dispatch %+v", cart.lastDispatch)
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Fatalf("missing request id")
		}
	})

	t.Run("missing payload -> 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestHandler(&fakeCart{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/actions", strings.NewReader(`{"type":"REMOVE"}`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var eb errorBody
		if err := json.NewDecoder(rec.Body).Decode(&eb); err != nil || eb.Code != "INVALID_ARGUMENT" {
			t.Fatalf("unexpected body %+v, %v", eb, err)
		}
	})

	t.Run("malformed json -> 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestHandler(&fakeCart{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/actions", strings.NewReader(`{`)))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown product -> 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestHandler(&fakeCart{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/items/item0404", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("list products", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestHandler(&fakeCart{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

		var resp catalogv1.ListProductsResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || len(resp.Products) != 1 {
			t.Fatalf("unexpected response %+v, %v", resp, err)
		}
	})

	t.Run("checkout upstream down -> 503", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newTestHandler(&fakeCart{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}
