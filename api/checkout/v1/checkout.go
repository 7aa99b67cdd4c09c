// Package checkoutv1 defines the storefront.checkout.v1.CheckoutService wire contract.
package checkoutv1

import (
	"context"

	"github.com/dwikikusuma/storefront-cart/pkg/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "storefront.checkout.v1.CheckoutService"

	QuoteMethod    = "/" + ServiceName + "/Quote"
	CheckoutMethod = "/" + ServiceName + "/Checkout"
)

type QuoteLine struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	CartPrice string `json:"cart_price,omitempty"`
}

type QuoteRequest struct{}

type QuoteResponse struct {
	Lines          []*QuoteLine `json:"lines"`
	TotalItems     int64        `json:"total_items"`
	Total          string       `json:"total"`
	FormattedTotal string       `json:"formatted_total"`
	PriceChanged   bool         `json:"price_changed"`
}

type CheckoutRequest struct{}

type CheckoutResponse struct {
	ReceiptID    string         `json:"receipt_id"`
	PlacedAtUnix int64          `json:"placed_at_unix"`
	Quote        *QuoteResponse `json:"quote"`
}

type CheckoutServiceServer interface {
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
	Checkout(context.Context, *CheckoutRequest) (*CheckoutResponse, error)
}

type UnimplementedCheckoutServiceServer struct{}

func (UnimplementedCheckoutServiceServer) Quote(context.Context, *QuoteRequest) (*QuoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Quote not implemented")
}
func (UnimplementedCheckoutServiceServer) Checkout(context.Context, *CheckoutRequest) (*CheckoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Checkout not implemented")
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Quote", Handler: grpcjson.Unary(QuoteMethod, CheckoutServiceServer.Quote)},
		{MethodName: "Checkout", Handler: grpcjson.Unary(CheckoutMethod, CheckoutServiceServer.Checkout)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/checkout/v1/checkout",
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

type CheckoutServiceClient interface {
	Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error)
	Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutResponse, error)
}

type checkoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) CheckoutServiceClient {
	return &checkoutServiceClient{cc: cc}
}

func (c *checkoutServiceClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	out := new(QuoteResponse)
	if err := c.cc.Invoke(ctx, QuoteMethod, in, out, grpcjson.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	out := new(CheckoutResponse)
	if err := c.cc.Invoke(ctx, CheckoutMethod, in, out, grpcjson.CallOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
