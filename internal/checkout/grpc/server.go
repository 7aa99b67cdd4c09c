package grpc

import (
	"context"
	"errors"

	checkoutv1 "github.com/dwikikusuma/storefront-cart/api/checkout/v1"
	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	"github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	"github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	checkoutv1.UnimplementedCheckoutServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Quote(ctx context.Context, _ *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	q, err := s.svc.Quote(ctx)
	if err != nil {
		return nil, mapErr("quote", err)
	}
	return toProto(q), nil
}

func (s *Server) Checkout(ctx context.Context, _ *checkoutv1.CheckoutRequest) (*checkoutv1.CheckoutResponse, error) {
	r, err := s.svc.Checkout(ctx)
	if err != nil {
		return nil, mapErr("checkout", err)
	}
	return &checkoutv1.CheckoutResponse{
		ReceiptID:    r.ID,
		PlacedAtUnix: r.PlacedAt.Unix(),
		Quote:        toProto(r.Quote),
	}, nil
}

func mapErr(op string, err error) error {
	switch {
	case errors.Is(err, app.ErrEmptyCart):
		return status.Error(codes.NotFound, "cart is empty")
	case errors.Is(err, catalogapp.ErrNotFound):
		return status.Errorf(codes.FailedPrecondition, "%s: %v", op, err)
	case errors.Is(err, cartapp.ErrCartChanged):
		return status.Errorf(codes.Aborted, "%s: %v", op, err)
	case errors.Is(err, cartapp.ErrClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Errorf(codes.Internal, "%s failed: %v", op, err)
}

func toProto(q domain.Quote) *checkoutv1.QuoteResponse {
	lines := make([]*checkoutv1.QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		line := &checkoutv1.QuoteLine{
			SKU:       ln.SKU,
			Name:      ln.Name,
			Quantity:  int64(ln.Quantity),
			UnitPrice: ln.UnitPrice.String(),
			LineTotal: ln.LineTotal.StringFixed(2),
		}
		if ln.CartPrice != nil {
			line.CartPrice = ln.CartPrice.String()
		}
		lines = append(lines, line)
	}

	return &checkoutv1.QuoteResponse{
		Lines:          lines,
		TotalItems:     int64(q.TotalItems),
		Total:          q.Total.StringFixed(2),
		FormattedTotal: q.Formatted,
		PriceChanged:   q.PriceChanged(),
	}
}
