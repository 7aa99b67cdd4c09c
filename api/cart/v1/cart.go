// Package cartv1 defines the storefront.cart.v1.CartService wire contract.
package cartv1

import (
	"context"

	"github.com/dwikikusuma/storefront-cart/pkg/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "storefront.cart.v1.CartService"

	DispatchMethod   = "/" + ServiceName + "/Dispatch"
	GetCartMethod    = "/" + ServiceName + "/GetCart"
	AddProductMethod = "/" + ServiceName + "/AddProduct"
)

// LineItem prices are decimal strings, e.g. "9.99".
type LineItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name,omitempty"`
	Price    string `json:"price,omitempty"`
	Quantity int64  `json:"quantity,omitempty"`
}

type Cart struct {
	ID             string      `json:"id"`
	Items          []*LineItem `json:"items"`
	TotalItems     int64       `json:"total_items"`
	TotalPrice     string      `json:"total_price"`
	FormattedTotal string      `json:"formatted_total"`
}

// DispatchRequest is a tagged action: Type is ADD, REMOVE, QUANTITY or
// SUBMIT; Payload is required for all but SUBMIT.
type DispatchRequest struct {
	Type    string    `json:"type"`
	Payload *LineItem `json:"payload,omitempty"`
}

type GetCartRequest struct{}

type AddProductRequest struct {
	SKU string `json:"sku"`
}

type CartServiceServer interface {
	Dispatch(context.Context, *DispatchRequest) (*Cart, error)
	GetCart(context.Context, *GetCartRequest) (*Cart, error)
	AddProduct(context.Context, *AddProductRequest) (*Cart, error)
}

type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) Dispatch(context.Context, *DispatchRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method Dispatch not implemented")
}
func (UnimplementedCartServiceServer) GetCart(context.Context, *GetCartRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}
func (UnimplementedCartServiceServer) AddProduct(context.Context, *AddProductRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method AddProduct not implemented")
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Dispatch", Handler: grpcjson.Unary(DispatchMethod, CartServiceServer.Dispatch)},
		{MethodName: "GetCart", Handler: grpcjson.Unary(GetCartMethod, CartServiceServer.GetCart)},
		{MethodName: "AddProduct", Handler: grpcjson.Unary(AddProductMethod, CartServiceServer.AddProduct)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/cart/v1/cart",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient interface {
	Dispatch(ctx context.Context, in *DispatchRequest, opts ...grpc.CallOption) (*Cart, error)
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error)
	AddProduct(ctx context.Context, in *AddProductRequest, opts ...grpc.CallOption) (*Cart, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc: cc}
}

func (c *cartServiceClient) Dispatch(ctx context.Context, in *DispatchRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := c.cc.Invoke(ctx, DispatchMethod, in, out, grpcjson.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := c.cc.Invoke(ctx, GetCartMethod, in, out, grpcjson.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) AddProduct(ctx context.Context, in *AddProductRequest, opts ...grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	if err := c.cc.Invoke(ctx, AddProductMethod, in, out, grpcjson.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
