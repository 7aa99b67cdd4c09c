package grpc

import (
	"context"
	"errors"

	catalogv1 "github.com/dwikikusuma/storefront-cart/api/catalog/v1"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	catalogv1.UnimplementedCatalogServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListProducts(ctx context.Context, _ *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	products, err := s.svc.ListProducts(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}
	return &catalogv1.ListProductsResponse{Products: out}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body")
	}
	p, err := s.svc.GetProduct(ctx, req.SKU)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.GetProductResponse{Product: toProto(p)}, nil
}

func toProto(p domain.Product) *catalogv1.Product {
	return &catalogv1.Product{
		SKU:   p.SKU,
		Name:  p.Name,
		Price: p.Price.String(),
	}
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
