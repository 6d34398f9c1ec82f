package cache

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// Controller удаляет записи офлайн-кэша по одной или все сразу.
type Controller struct {
	cache ports.IOfflineCache
	log   *slog.Logger
}

// New создаёт контроллер кэша.
func New(cache ports.IOfflineCache, log *slog.Logger) *Controller {
	return &Controller{cache: cache, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.DELETE("/cache", c.clear)
	api.DELETE("/cache/:key", c.remove)
}

// @Summary Очистить офлайн-кэш
// @Tags cache
// @Success 204
// @Failure 500 {object} map[string]string
// @Router /api/v1/cache [delete]
func (c *Controller) clear(ctx *gin.Context) {
	if !c.cache.ClearAllCache(ctx.Request.Context()) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "cache clear failed"})
		return
	}
	c.log.Info("offline cache cleared", "ip", ctx.ClientIP())
	ctx.Status(http.StatusNoContent)
}

// @Summary Удалить запись офлайн-кэша
// @Tags cache
// @Param key path string true "Ключ, например providers:electrician"
// @Success 204
// @Failure 500 {object} map[string]string
// @Router /api/v1/cache/{key} [delete]
func (c *Controller) remove(ctx *gin.Context) {
	key := ctx.Param("key")
	if !c.cache.RemoveCachedData(ctx.Request.Context(), key) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "cache remove failed", "key": key})
		return
	}
	ctx.Status(http.StatusNoContent)
}
