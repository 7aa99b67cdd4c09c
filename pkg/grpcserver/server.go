package grpcserver

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type Server struct {
	Server *grpc.Server
	Health *health.Server
}

func New(log *slog.Logger, opts ...grpc.ServerOption) *Server {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(LoggingInterceptor(log))}, opts...)
	s := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return &Server{
		Server: s,
		Health: hs,
	}
}

// MarkServing flips every named service (and the server as a whole) to SERVING.
func (s *Server) MarkServing(services ...string) {
	s.Health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for _, name := range services {
		s.Health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
}

func (s *Server) Serve(lis net.Listener) error {
	return s.Server.Serve(lis)
}

// Stop drains in-flight calls until ctx expires, then forces the stop.
func (s *Server) Stop(ctx context.Context) {
	s.Health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.Server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.Server.Stop()
	case <-stopped:
	}
}

func LoggingInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.String("code", status.Code(err).String()),
			slog.Duration("took", time.Since(start)),
		}
		if err != nil {
			log.Warn("grpc call failed", append(attrs, slog.Any("err", err))...)
		} else {
			log.Debug("grpc call", attrs...)
		}
		return resp, err
	}
}
