package system

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// PingFunc проверяет одну зависимость для readiness.
type PingFunc func(ctx context.Context) error

const readyTimeout = 3 * time.Second

// Controller: liveness, readiness по зависимостям и состояние сети.
type Controller struct {
	cache  ports.IOfflineCache
	checks map[string]PingFunc
	log    *slog.Logger
}

// New создаёт системный контроллер. checks: имя зависимости -> проверка (mongo, redis, ...).
func New(cache ports.IOfflineCache, log *slog.Logger, checks map[string]PingFunc) *Controller {
	return &Controller{cache: cache, checks: checks, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/api/v1/network", c.network)
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// ready опрашивает все зависимости параллельно и отдаёт статус каждой.
func (c *Controller) ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]string, len(c.checks))
		failed  bool
		g       errgroup.Group
	)
	for name, ping := range c.checks {
		g.Go(func() error {
			status := "ok"
			if err := ping(pingCtx); err != nil {
				c.log.Warn("ready check failed", "dependency", name, "error", err)
				status = err.Error()
			}
			mu.Lock()
			defer mu.Unlock()
			results[name] = status
			failed = failed || status != "ok"
			return nil
		})
	}
	_ = g.Wait()

	if failed {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "checks": results})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ready", "checks": results})
}

// network отдаёт то же online/offline, по которому офлайн-кэш выбирает источник данных.
func (c *Controller) network(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"online": c.cache.IsOnline(ctx.Request.Context())})
}
