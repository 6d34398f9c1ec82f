package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// FetchFunc загружает свежие данные из сети.
type FetchFunc func(ctx context.Context) (any, error)

// FetchOptions: параметры FetchWithOfflineFallback. TTL 0 означает значение по умолчанию.
type FetchOptions struct {
	TTL          time.Duration
	ForceRefresh bool
}

// IOfflineCache: контракт офлайн-кэша с истечением и политикой загрузки.
type IOfflineCache interface {
	CacheData(ctx context.Context, key string, data any, ttl time.Duration) bool
	GetCachedData(ctx context.Context, key string, dst any) bool
	RemoveCachedData(ctx context.Context, key string) bool
	ClearAllCache(ctx context.Context) bool
	IsOnline(ctx context.Context) bool
	SubscribeToNetworkStatus(cb func(online bool)) (unsubscribe func())
	FetchWithOfflineFallback(ctx context.Context, key string, fetch FetchFunc, dst any, opts FetchOptions) (domain.FetchResult, error)
}

// IDiscoverySession: живая сессия выдачи одного экрана.
type IDiscoverySession interface {
	ID() uuid.UUID
	// Start (пере)подписывает сессию на категорию и опорную точку, снимая прежнюю подписку.
	Start(ctx context.Context, category string, ref domain.GeoPoint) error
	// Close завершает сессию; после возврата onUpdate больше не вызывается.
	Close()
}

// IDiscoveryUseCase: поиск и ранжирование провайдеров, обработка событий из Kafka.
type IDiscoveryUseCase interface {
	Search(ctx context.Context, q domain.DiscoveryQuery) (*domain.SearchResult, error)
	NewSession(onUpdate func(domain.DiscoveryUpdate)) IDiscoverySession
	Rank(providers []domain.Provider, strategy domain.RankingStrategy) []domain.Provider
	HandleDiscoveryEvent(ctx context.Context, ev domain.DiscoveryEvent) error
}
