package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "github.com/markbriannn/gss-maasin-app-sub005/internal/api/grpc"
	apihttp "github.com/markbriannn/gss-maasin-app-sub005/internal/api/http"
	cachectl "github.com/markbriannn/gss-maasin-app-sub005/internal/api/http/controllers/cache"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/api/http/controllers/providers"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/api/http/controllers/system"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/click"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/kafka"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/netstatus"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/pkg/logger"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/usecase/discovery"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/usecase/offlinecache"
)

// App: приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (хранилища подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилища и брокер, собирает юзкейсы и запускает HTTP- и gRPC-серверы (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := Open(ctx, a.cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	monitor := netstatus.New(a.cfg.Network, deps.Providers, log)
	go func() {
		_ = monitor.Run(ctx)
	}()
	cache := offlinecache.New(deps.Store, monitor, log, a.cfg.Cache.Options()...)

	var broker ports.IProducer
	var analytics ports.IDiscoveryAnalytics
	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		defer producer.Close()
		broker = producer
	}
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		deps.Pings["clickhouse"] = ch.Ping
		writer := click.NewDiscoveryWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		analytics = writer
	}

	uc := discovery.New(deps.Providers, deps.Providers, cache, broker, analytics, log, a.cfg.Discovery)

	if a.cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc, cache, log)
	go func() {
		if err := grpcSrv.Start(ctx); err != nil {
			log.Error("grpc server failed", "error", err)
		}
	}()

	checks := make(map[string]system.PingFunc, len(deps.Pings))
	for name, ping := range deps.Pings {
		checks[name] = ping
	}

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(cache, log, checks),
		providers.New(uc, log, a.cfg.Server.AllowOrigins),
		cachectl.New(cache, log),
	)

	log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"grpc", a.cfg.Grpc.Addr(),
		"cache_backend", a.cfg.CacheBackend,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = grpcSrv.Stop(shutdownCtx)
	cache.Wait()
	return err
}
