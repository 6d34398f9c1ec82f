package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код/ошибка (аналог HTTP request logger).
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(log, info.FullMethod, time.Since(start), err)
		return resp, err
	}
}

// LoggingStreamInterceptor логирует stream RPC по завершении (например, Health/Watch).
func LoggingStreamInterceptor(log *slog.Logger) grpc.StreamServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(log, info.FullMethod, time.Since(start), err)
		return err
	}
}

func logCall(log *slog.Logger, method string, latency time.Duration, err error) {
	attrs := []any{"method", method, "latency_ms", latency.Milliseconds()}
	if err != nil {
		if st, ok := status.FromError(err); ok {
			attrs = append(attrs, "grpc_code", st.Code(), "error", st.Message())
		} else {
			attrs = append(attrs, "error", err.Error())
		}
		log.Warn("grpc request", attrs...)
		return
	}
	attrs = append(attrs, "grpc_code", codes.OK)
	log.Info("grpc request", attrs...)
}
