package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront-cart/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront-cart/api/checkout/v1"
	"github.com/google/uuid"
)

const maxBody = 64 << 10

type handlers struct {
	log      *slog.Logger
	catalog  catalogv1.CatalogServiceClient
	cart     cartv1.CartServiceClient
	checkout checkoutv1.CheckoutServiceClient
}

func (h *handlers) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("GET /products", h.listProducts)
	mux.HandleFunc("GET /products/{sku}", h.getProduct)
	mux.HandleFunc("GET /cart", h.getCart)
	mux.HandleFunc("POST /cart/actions", h.dispatch)
	mux.HandleFunc("POST /cart/items/{sku}", h.addProduct)
	mux.HandleFunc("POST /checkout/quote", h.quote)
	mux.HandleFunc("POST /checkout", h.placeOrder)

	return h.withRequestID(mux)
}

func (h *handlers) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		h.log.Debug("http request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalog.ListProducts(r.Context(), &catalogv1.ListProductsRequest{})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalog.GetProduct(r.Context(), &catalogv1.GetProductRequest{SKU: r.PathValue("sku")})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Product)
}

func (h *handlers) getCart(w http.ResponseWriter, r *http.Request) {
	resp, err := h.cart.GetCart(r.Context(), &cartv1.GetCartRequest{})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// actionBody accepts prices both as JSON numbers and as strings.
type actionBody struct {
	Type    string `json:"type"`
	Payload *struct {
		SKU      string      `json:"sku"`
		Name     string      `json:"name"`
		Price    json.Number `json:"price"`
		Quantity int64       `json:"quantity"`
	} `json:"payload"`
}

func (h *handlers) dispatch(w http.ResponseWriter, r *http.Request) {
	var body actionBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Code: "INVALID_ARGUMENT", Message: "malformed action: " + err.Error()})
		return
	}

	req := &cartv1.DispatchRequest{Type: body.Type}
	if body.Payload != nil {
		req.Payload = &cartv1.LineItem{
			SKU:      body.Payload.SKU,
			Name:     body.Payload.Name,
			Price:    body.Payload.Price.String(),
			Quantity: body.Payload.Quantity,
		}
	}

	resp, err := h.cart.Dispatch(r.Context(), req)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) addProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := h.cart.AddProduct(r.Context(), &cartv1.AddProductRequest{SKU: r.PathValue("sku")})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) quote(w http.ResponseWriter, r *http.Request) {
	resp, err := h.checkout.Quote(r.Context(), &checkoutv1.QuoteRequest{})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) placeOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := h.checkout.Checkout(r.Context(), &checkoutv1.CheckoutRequest{})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *handlers) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code, name, msg := httpStatusFromGRPC(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("upstream call failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", w.Header().Get("X-Request-ID")),
			slog.Any("err", err),
		)
	}
	writeJSON(w, code, errorBody{Code: name, Message: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		slog.Default().Warn("write response failed", slog.Any("err", err))
	}
}
