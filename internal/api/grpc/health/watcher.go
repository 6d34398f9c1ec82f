package health

import (
	"context"
	"log/slog"
	"sync"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// Service: имя сервиса в health-проверке. Пустое имя означает общий статус сервера.
const Service = "gss.discovery"

// Watcher переключает health-статус: SERVING, пока сеть доступна, иначе NOT_SERVING.
type Watcher struct {
	srv   *health.Server
	cache ports.IOfflineCache
	log   *slog.Logger

	mu          sync.Mutex
	unsubscribe func()
}

// NewWatcher создаёт health-сервер в статусе NOT_SERVING до первого Start.
func NewWatcher(cache ports.IOfflineCache, log *slog.Logger) *Watcher {
	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	srv.SetServingStatus(Service, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Watcher{srv: srv, cache: cache, log: log}
}

// Server возвращает health-сервер для регистрации.
func (w *Watcher) Server() *health.Server {
	return w.srv
}

// Start выставляет текущий статус и подписывается на изменения сети. Повторный Start ничего не делает.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unsubscribe != nil {
		return
	}
	w.set(w.cache.IsOnline(ctx))
	w.unsubscribe = w.cache.SubscribeToNetworkStatus(w.set)
}

// Stop отписывается от сети и переводит все сервисы в NOT_SERVING.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	w.mu.Unlock()
	w.srv.Shutdown()
}

func (w *Watcher) set(online bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if online {
		st = healthpb.HealthCheckResponse_SERVING
	}
	w.srv.SetServingStatus("", st)
	w.srv.SetServingStatus(Service, st)
	w.log.Info("grpc health status", "status", st.String())
}
