package offlinecache

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.IOfflineCache = (*Cache)(nil)

const (
	defaultNamespace      = "gss_cache"
	defaultRefreshTimeout = 30 * time.Second
)

// Config: настройки офлайн-кэша. Переменные: GSS_CACHE_NAMESPACE, GSS_CACHE_TTL, GSS_CACHE_REFRESH_TIMEOUT.
type Config struct {
	Namespace      string        `envconfig:"NAMESPACE" default:"gss_cache"`
	TTL            time.Duration `envconfig:"TTL" default:"24h"`
	RefreshTimeout time.Duration `envconfig:"REFRESH_TIMEOUT" default:"30s"`
}

// Options переводит конфиг в опции New.
func (c Config) Options() []Option {
	return []Option{
		WithNamespace(c.Namespace),
		WithTTL(c.TTL),
		WithRefreshTimeout(c.RefreshTimeout),
	}
}

type config struct {
	namespace      string
	ttl            time.Duration
	refreshTimeout time.Duration
	now            func() time.Time
}

// Option задаёт параметр кэша.
type Option func(*config)

// WithNamespace задаёт общий префикс ключей кэша в хранилище.
func WithNamespace(ns string) Option {
	return func(c *config) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithTTL задаёт срок жизни по умолчанию (24 часа).
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithRefreshTimeout ограничивает фоновое обновление (30 секунд).
func WithRefreshTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.refreshTimeout = d
		}
	}
}

// WithClock подменяет часы (для тестов).
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// Cache: офлайн-кэш с истечением поверх постоянного хранилища и политика загрузки с фолбэком.
// Все операции с хранилищем мягкие: ошибки логируются и превращаются в false или промах.
type Cache struct {
	ns  namespace
	net ports.INetworkStatus
	log *slog.Logger
	cfg config

	refreshes singleflight.Group
	wg        sync.WaitGroup
}

// New создаёт кэш. net может быть nil: тогда сеть всегда считается доступной.
func New(store ports.IKeyValueStore, net ports.INetworkStatus, log *slog.Logger, opts ...Option) *Cache {
	cfg := config{
		namespace:      defaultNamespace,
		ttl:            domain.DefaultCacheTTL,
		refreshTimeout: defaultRefreshTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Cache{
		ns:  namespace{store: store, root: cfg.namespace},
		net: net,
		log: log,
		cfg: cfg,
	}
}

// Wait блокируется до завершения всех фоновых обновлений.
func (c *Cache) Wait() {
	c.wg.Wait()
}
