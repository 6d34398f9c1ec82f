package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// IDiscoveryAnalytics: запись событий поиска в хранилище для аналитики (ClickHouse).
type IDiscoveryAnalytics interface {
	WriteDiscovery(ctx context.Context, ev domain.DiscoveryEvent) error
}
