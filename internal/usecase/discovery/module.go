package discovery

import (
	"log/slog"
	"time"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.IDiscoveryUseCase = (*UseCase)(nil)

// Config: бизнес-параметры выдачи. Переменные: GSS_DISCOVERY_TRAVEL_SPEED_KMH, GSS_DISCOVERY_WEIGHT_RATING и т.д.
type Config struct {
	TravelSpeedKmh float64             `envconfig:"TRAVEL_SPEED_KMH" default:"30"`
	Weights        domain.ScoreWeights `envconfig:"WEIGHT"`
	CacheTTL       time.Duration       `envconfig:"CACHE_TTL" default:"24h"`
}

// withDefaults подставляет значения по умолчанию для незаданных полей.
func (c Config) withDefaults() Config {
	if c.TravelSpeedKmh <= 0 {
		c.TravelSpeedKmh = domain.DefaultTravelSpeedKmh
	}
	if c.Weights == (domain.ScoreWeights{}) {
		c.Weights = domain.DefaultScoreWeights
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = domain.DefaultCacheTTL
	}
	return c
}

// cacheKey формирует ключ офлайн-кэша для выдачи категории, например "providers:electrician".
func cacheKey(category string) string {
	return "providers:" + category
}

// UseCase: поиск, живые сессии и ранжирование провайдеров.
type UseCase struct {
	repo      ports.IProviderRepository
	feed      ports.IProviderFeed
	cache     ports.IOfflineCache
	broker    ports.IProducer
	analytics ports.IDiscoveryAnalytics
	log       *slog.Logger
	cfg       Config
	now       func() time.Time
}

// New создаёт юзкейс выдачи. broker и analytics могут быть nil (Kafka и ClickHouse выключены).
func New(
	repo ports.IProviderRepository,
	feed ports.IProviderFeed,
	cache ports.IOfflineCache,
	broker ports.IProducer,
	analytics ports.IDiscoveryAnalytics,
	log *slog.Logger,
	cfg Config,
) *UseCase {
	return &UseCase{
		repo:      repo,
		feed:      feed,
		cache:     cache,
		broker:    broker,
		analytics: analytics,
		log:       log,
		cfg:       cfg.withDefaults(),
		now:       time.Now,
	}
}
