package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/api/grpc/health"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/api/grpc/interceptors"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// ServerConfig: настройки gRPC-сервера. Переменные: GSS_GRPC_HOST, GSS_GRPC_PORT.
type ServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// Addr возвращает адрес "host:port".
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Server: gRPC-сервер со стандартным health-сервисом, статус которого следует за сетью.
type Server struct {
	grpc    *grpc.Server
	watcher *health.Watcher
	addr    string
}

// NewServer создаёт gRPC-сервер и регистрирует grpc.health.v1.Health.
// Логирующие интерцепторы пишут метод, latency_ms и grpc_code (аналог HTTP middleware).
func NewServer(cfg ServerConfig, cache ports.IOfflineCache, log *slog.Logger) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)),
		grpc.ChainStreamInterceptor(interceptors.LoggingStreamInterceptor(log)),
	)
	w := health.NewWatcher(cache, log)
	healthpb.RegisterHealthServer(s, w.Server())
	reflection.Register(s)
	return &Server{grpc: s, watcher: w, addr: cfg.Addr()}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.watcher.Start(ctx)
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	s.watcher.Stop()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
