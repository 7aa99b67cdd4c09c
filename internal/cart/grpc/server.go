package grpc

import (
	"context"
	"errors"
	"strings"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
	"github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Dispatch(ctx context.Context, req *cartv1.DispatchRequest) (*cartv1.Cart, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body")
	}

	env, err := toEnvelope(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad payload: %v", err)
	}
	action, err := env.Action()
	if err != nil {
		return nil, mapErr(err)
	}

	view, err := s.svc.Dispatch(ctx, action)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(s.svc.ID(), view), nil
}

func (s *Server) GetCart(ctx context.Context, _ *cartv1.GetCartRequest) (*cartv1.Cart, error) {
	view, err := s.svc.View(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(s.svc.ID(), view), nil
}

func (s *Server) AddProduct(ctx context.Context, req *cartv1.AddProductRequest) (*cartv1.Cart, error) {
	if req == nil || strings.TrimSpace(req.SKU) == "" {
		return nil, status.Error(codes.InvalidArgument, "sku is required")
	}
	view, err := s.svc.AddProduct(ctx, req.SKU)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(s.svc.ID(), view), nil
}

func toEnvelope(req *cartv1.DispatchRequest) (domain.Envelope, error) {
	env := domain.Envelope{Type: req.Type}
	if req.Payload == nil {
		return env, nil
	}

	item := domain.LineItem{
		SKU:      req.Payload.SKU,
		Name:     req.Payload.Name,
		Quantity: int(req.Payload.Quantity),
	}
	if req.Payload.Price != "" {
		p, err := decimal.NewFromString(req.Payload.Price)
		if err != nil {
			return env, err
		}
		item.Price = p
	}
	env.Payload = &item
	return env, nil
}

func toProto(id string, v domain.View) *cartv1.Cart {
	items := make([]*cartv1.LineItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, &cartv1.LineItem{
			SKU:      it.SKU,
			Name:     it.Name,
			Price:    it.Price.String(),
			Quantity: int64(it.Quantity),
		})
	}

	return &cartv1.Cart{
		ID:             id,
		Items:          items,
		TotalItems:     int64(v.TotalItems),
		TotalPrice:     v.TotalPrice.StringFixed(2),
		FormattedTotal: v.FormattedTotal(),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingPayload),
		errors.Is(err, domain.ErrUnrecognizedAction),
		errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, catalogapp.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
