package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/memory"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/mongo"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/pg"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/redis"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// Deps: подключённые хранилища, общие для сервиса и gssctl.
type Deps struct {
	Store     ports.IKeyValueStore
	Providers *mongo.ProviderRepo
	// Pings: проверки доступности для readiness, по имени хранилища.
	Pings map[string]func(context.Context) error

	closers []func() error
}

// Open подключает MongoDB и хранилище офлайн-кэша по GSS_CACHE_BACKEND.
// При ошибке уже открытые подключения закрываются.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (*Deps, error) {
	d := &Deps{Pings: make(map[string]func(context.Context) error)}

	mc, err := mongo.New(ctx, &cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("mongo: %w", err)
	}
	d.closers = append(d.closers, func() error { return mc.Disconnect(context.Background()) })
	if err := mc.EnsureIndexes(ctx); err != nil {
		d.Close()
		return nil, err
	}
	d.Providers = mongo.NewProviderRepo(mc, log)
	d.Pings["mongo"] = d.Providers.Ping

	switch cfg.CacheBackend {
	case BackendRedis, "":
		rs, err := redis.Open(ctx, &cfg.Redis, log)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		d.closers = append(d.closers, rs.Close)
		d.Pings["redis"] = rs.Ping
		d.Store = rs
	case BackendPG:
		db, err := pg.New(ctx, &cfg.PG)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("pg: %w", err)
		}
		d.closers = append(d.closers, db.Close)
		d.Pings["pg"] = db.Ping
		d.Store = pg.NewKVStore(db, log)
	case BackendMemory:
		d.Store = memory.NewKVStore()
	default:
		d.Close()
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
	return d, nil
}

// Close закрывает подключения в обратном порядке.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	d.closers = nil
	return errors.Join(errs...)
}
