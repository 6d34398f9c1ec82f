package discovery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// Build собирает проекции провайдеров относительно опорной точки: расстояние и ETA.
func (u *UseCase) Build(records []domain.ProviderRecord, ref domain.GeoPoint) []domain.Provider {
	out := make([]domain.Provider, 0, len(records))
	for _, rec := range records {
		d := domain.DistanceBetween(rec.Location, &ref)
		out = append(out, domain.Provider{
			ProviderRecord:   rec,
			Distance:         d,
			EstimatedArrival: domain.ArrivalFor(d, u.cfg.TravelSpeedKmh),
		})
	}
	return out
}

// Rank: ранжирование с весами из конфига; вход не изменяется.
func (u *UseCase) Rank(providers []domain.Provider, strategy domain.RankingStrategy) []domain.Provider {
	return u.cfg.Weights.Rank(providers, strategy)
}

// Search выполняет разовый поиск через офлайн-кэш. Результат ранжируется, событие уходит в брокер.
func (u *UseCase) Search(ctx context.Context, q domain.DiscoveryQuery) (*domain.SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if q.Strategy == "" {
		q.Strategy = domain.StrategyRecommended
	}

	var records []domain.ProviderRecord
	fetch := func(ctx context.Context) (any, error) {
		return u.repo.FindProviders(ctx, domain.CategoryFilter(q.Category))
	}
	res, err := u.cache.FetchWithOfflineFallback(ctx, cacheKey(q.Category), fetch, &records,
		ports.FetchOptions{TTL: u.cfg.CacheTTL, ForceRefresh: q.ForceRefresh})
	if err != nil {
		return nil, fmt.Errorf("find providers: %w", err)
	}
	if !res.Found {
		records = nil
	}

	result := &domain.SearchResult{
		Providers: u.Rank(u.Build(records, q.Reference), q.Strategy),
		Strategy:  q.Strategy,
		FromCache: res.FromCache,
		IsOffline: res.IsOffline,
		Message:   searchMessage(res, len(records)),
		Err:       res.Err,
	}
	searchesTotal.WithLabelValues(string(q.Strategy)).Inc()
	u.publish(ctx, q, result)

	return result, nil
}

// searchMessage подбирает сообщение для пользователя по происхождению данных.
func searchMessage(res domain.FetchResult, n int) string {
	switch {
	case res.IsOffline && res.Found:
		return domain.MsgOfflineCached
	case res.IsOffline:
		return domain.MsgOfflineNoData
	case res.Err != nil:
		return domain.MsgStaleFallback
	case n == 0:
		return domain.MsgProvidersEmpty
	}
	return ""
}

// publish отправляет событие поиска в брокер. Ошибка отправки не ломает поиск.
func (u *UseCase) publish(ctx context.Context, q domain.DiscoveryQuery, r *domain.SearchResult) {
	if u.broker == nil {
		return
	}
	ev := domain.DiscoveryEvent{
		ID:          uuid.New(),
		Category:    q.Category,
		Strategy:    q.Strategy,
		Latitude:    q.Reference.Latitude,
		Longitude:   q.Reference.Longitude,
		ResultCount: len(r.Providers),
		FromCache:   r.FromCache,
		IsOffline:   r.IsOffline,
		Timestamp:   u.now(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("discovery event encode", "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(q.Category), value); err != nil {
		u.log.Warn("broker send", "category", q.Category, "error", err)
		return
	}
	u.log.Debug("discovery event published", "id", ev.ID, "category", q.Category, "results", ev.ResultCount)
}

// HandleDiscoveryEvent вызывается консьюмером при получении сообщения из топика discovery.
func (u *UseCase) HandleDiscoveryEvent(ctx context.Context, ev domain.DiscoveryEvent) error {
	if u.analytics == nil {
		u.log.Debug("analytics disabled, event dropped", "id", ev.ID)
		return nil
	}
	if err := u.analytics.WriteDiscovery(ctx, ev); err != nil {
		u.log.Warn("analytics write", "id", ev.ID, "error", err)
		return err
	}
	u.log.Info("discovery event stored to click", "id", ev.ID, "category", ev.Category, "strategy", ev.Strategy, "results", ev.ResultCount)
	return nil
}
