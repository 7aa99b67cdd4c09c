package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront-cart/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront-cart/api/checkout/v1"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/storefront-cart/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/storefront-cart/internal/cart/infra/adapter"

	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/storefront-cart/internal/catalog/grpc"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/infra/httpsource"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/infra/seed"

	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/storefront-cart/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/storefront-cart/internal/checkout/infra/adapter"

	"github.com/dwikikusuma/storefront-cart/pkg/config"
	"github.com/dwikikusuma/storefront-cart/pkg/grpcserver"
	"github.com/dwikikusuma/storefront-cart/pkg/logger"
	"github.com/dwikikusuma/storefront-cart/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true, Text: cfg.TextLogs()})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogSvc, err := catalogapp.NewService(log, seed.Products())
	if err != nil {
		log.Error("catalog seed invalid", slog.Any("err", err))
		os.Exit(1)
	}

	// Cart
	cartSvc := cartapp.NewService(log, cartadapter.NewCatalogServiceReader(catalogSvc))
	defer cartSvc.Close()

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(log, cartReader, catalogReader, cfg.CheckoutMaxConcurrent)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	srv := grpcserver.New(log)
	catalogv1.RegisterCatalogServiceServer(srv.Server, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(srv.Server, cartgrpc.NewServer(cartSvc))
	checkoutv1.RegisterCheckoutServiceServer(srv.Server, checkoutgrpc.NewServer(checkoutSvc))
	srv.MarkServing(catalogv1.ServiceName, cartv1.ServiceName, checkoutv1.ServiceName)

	var wg sync.WaitGroup

	if cfg.CatalogURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := httpsource.New(cfg.CatalogURL, cfg.CatalogTimeout)
			// Failures are logged by Refresh; the seed keeps serving.
			_ = catalogSvc.Refresh(ctx, src)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", addr), slog.String("cart_id", cartSvc.ID()))
		if err := srv.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	srv.Stop(stopCtx)

	wg.Wait()
	log.Info("bye")
}
