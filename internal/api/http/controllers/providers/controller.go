package providers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// Controller: разовый поиск провайдеров и живая лента.
type Controller struct {
	uc      ports.IDiscoveryUseCase
	log     *slog.Logger
	origins map[string]struct{}
}

// New создаёт контроллер. allowOrigins ограничивает websocket-рукопожатие; пустой список: без ограничений.
func New(uc ports.IDiscoveryUseCase, log *slog.Logger, allowOrigins []string) *Controller {
	origins := make(map[string]struct{}, len(allowOrigins))
	for _, o := range allowOrigins {
		origins[o] = struct{}{}
	}
	return &Controller{uc: uc, log: log, origins: origins}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/providers", c.search)
	api.GET("/providers/live", c.live)
}

// @Summary Найти провайдеров
// @Description Одобренные провайдеры категории, отсортированные по стратегии. Офлайн отдаётся сохранённая выдача.
// @Tags providers
// @Produce json
// @Param category query string true "Категория услуги"
// @Param lat query number true "Широта клиента"
// @Param lng query number true "Долгота клиента"
// @Param sort query string false "recommended | cheapest | nearest | highest_rated"
// @Param refresh query bool false "Не брать свежий кэш"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/providers [get]
func (c *Controller) search(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		c.log.Warn("search bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	q, err := req.Query()
	if err != nil {
		c.log.Warn("search validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, err := c.uc.Search(ctx.Request.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) || errors.Is(err, domain.ErrUnknownStrategy) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("search failed", "category", q.Category, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, SearchResponse{
		Providers: toDTOs(res.Providers),
		Strategy:  string(res.Strategy),
		FromCache: res.FromCache,
		IsOffline: res.IsOffline,
		Message:   res.Message,
		Error:     errString(res.Err),
	})
}
