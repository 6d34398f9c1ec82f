package offlinecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// CacheData сериализует data и сохраняет его со сроком now+ttl. ttl <= 0 означает срок по умолчанию.
func (c *Cache) CacheData(ctx context.Context, key string, data any, ttl time.Duration) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		c.log.Warn("cache serialize failed", "op", "cacheData", "key", key, "error", err)
		return false
	}
	return c.store(ctx, "cacheData", key, raw, ttl)
}

func (c *Cache) store(ctx context.Context, op, key string, raw []byte, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = c.cfg.ttl
	}
	entry := domain.CachedEntry{
		Key:                 key,
		Value:               raw,
		ExpiresAtEpochMilli: c.cfg.now().Add(ttl).UnixMilli(),
	}
	if err := c.ns.put(ctx, entry); err != nil {
		c.log.Warn("cache write failed", "op", op, "key", key, "error", err)
		return false
	}
	return true
}

// GetCachedData декодирует свежую запись в dst. Истёкшая запись удаляется при чтении.
// Нечитаемые данные считаются промахом.
func (c *Cache) GetCachedData(ctx context.Context, key string, dst any) bool {
	raw, ok := c.lookup(ctx, key)
	if !ok {
		return false
	}
	if err := decodeInto(raw, dst); err != nil {
		cacheLookupsTotal.WithLabelValues(outcomeCorrupt).Inc()
		c.log.Debug("cache decode failed", "op", "getCachedData", "key", key, "error", err)
		return false
	}
	return true
}

// decodeInto декодирует raw в новое значение типа *dst и присваивает его dst
// только при успехе. При ошибке dst не меняется.
func decodeInto(raw []byte, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &json.InvalidUnmarshalError{Type: reflect.TypeOf(dst)}
	}
	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

func (c *Cache) lookup(ctx context.Context, key string) ([]byte, bool) {
	entry, found, err := c.ns.get(ctx, key)
	switch {
	case errors.Is(err, errCorruptEntry):
		cacheLookupsTotal.WithLabelValues(outcomeCorrupt).Inc()
		c.log.Debug("cache entry corrupt", "op", "getCachedData", "key", key)
		return nil, false
	case err != nil:
		cacheLookupsTotal.WithLabelValues(outcomeError).Inc()
		c.log.Warn("cache read failed", "op", "getCachedData", "key", key, "error", err)
		return nil, false
	case !found:
		cacheLookupsTotal.WithLabelValues(outcomeMiss).Inc()
		return nil, false
	}

	if entry.Expired(c.cfg.now()) {
		cacheLookupsTotal.WithLabelValues(outcomeExpired).Inc()
		if err := c.ns.remove(ctx, key); err != nil {
			c.log.Warn("cache expire failed", "op", "getCachedData", "key", key, "error", err)
		}
		return nil, false
	}
	if !json.Valid(entry.Value) {
		cacheLookupsTotal.WithLabelValues(outcomeCorrupt).Inc()
		return nil, false
	}
	cacheLookupsTotal.WithLabelValues(outcomeHit).Inc()
	return entry.Value, true
}

// RemoveCachedData удаляет запись вместе со сроком истечения.
func (c *Cache) RemoveCachedData(ctx context.Context, key string) bool {
	if err := c.ns.remove(ctx, key); err != nil {
		c.log.Warn("cache remove failed", "op", "removeCachedData", "key", key, "error", err)
		return false
	}
	return true
}

// ClearAllCache удаляет все ключи пространства имён кэша.
func (c *Cache) ClearAllCache(ctx context.Context) bool {
	if err := c.ns.clear(ctx); err != nil {
		c.log.Warn("cache clear failed", "op", "clearAllCache", "namespace", c.cfg.namespace, "error", err)
		return false
	}
	return true
}

// IsOnline спрашивает источник статуса сети. Если проверка не удалась, считаем, что сеть есть.
func (c *Cache) IsOnline(ctx context.Context) bool {
	if c.net == nil {
		return true
	}
	st, err := c.net.FetchCurrentStatus(ctx)
	if err != nil {
		c.log.Debug("network status check failed, assuming online", "error", err)
		return true
	}
	return st.Online()
}

// SubscribeToNetworkStatus пересылает изменения сети в cb в виде online/offline.
func (c *Cache) SubscribeToNetworkStatus(cb func(online bool)) func() {
	if c.net == nil {
		return func() {}
	}
	return c.net.Subscribe(func(st domain.NetworkState) {
		cb(st.Online())
	})
}

// FetchWithOfflineFallback выбирает между сетью и кэшем:
//  1. офлайн: отдаёт кэш (Found == false, если его нет), fetch не вызывается;
//  2. онлайн, кэш свежий и ForceRefresh не задан: отдаёт кэш и обновляет его в фоне;
//  3. иначе вызывает fetch; при ошибке отдаёт кэш с Err, а без кэша возвращает ошибку.
//
// Повторов нет. Фоновые обновления одного ключа объединяются.
func (c *Cache) FetchWithOfflineFallback(ctx context.Context, key string, fetch ports.FetchFunc, dst any, opts ports.FetchOptions) (domain.FetchResult, error) {
	if !c.IsOnline(ctx) {
		found := c.GetCachedData(ctx, key, dst)
		cacheFetchesTotal.WithLabelValues("offline").Inc()
		return domain.FetchResult{Found: found, FromCache: true, IsOffline: true}, nil
	}

	if !opts.ForceRefresh && c.GetCachedData(ctx, key, dst) {
		c.revalidate(ctx, key, fetch, opts.TTL)
		cacheFetchesTotal.WithLabelValues("cache").Inc()
		return domain.FetchResult{Found: true, FromCache: true}, nil
	}

	data, err := fetch(ctx)
	if err != nil {
		if c.GetCachedData(ctx, key, dst) {
			c.log.Info("fetch failed, serving cached data", "key", key, "error", err)
			cacheFetchesTotal.WithLabelValues("stale").Inc()
			return domain.FetchResult{Found: true, FromCache: true, Err: err}, nil
		}
		return domain.FetchResult{}, err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("encode fetched data: %w", err)
	}
	c.store(ctx, "fetchWithOfflineFallback", key, raw, opts.TTL)
	if err := decodeInto(raw, dst); err != nil {
		return domain.FetchResult{}, fmt.Errorf("decode fetched data: %w", err)
	}
	cacheFetchesTotal.WithLabelValues("network").Inc()
	return domain.FetchResult{Found: true}, nil
}

// revalidate запускает фоновое обновление ключа. Пока одно обновление идёт, новые к нему присоединяются.
func (c *Cache) revalidate(ctx context.Context, key string, fetch ports.FetchFunc, ttl time.Duration) {
	bg := context.WithoutCancel(ctx)
	c.wg.Add(1)
	ch := c.refreshes.DoChan(key, func() (any, error) {
		rctx, cancel := context.WithTimeout(bg, c.cfg.refreshTimeout)
		defer cancel()

		data, err := fetch(rctx)
		if err != nil {
			c.log.Debug("background refresh failed", "key", key, "error", err)
			return nil, err
		}
		raw, err := json.Marshal(data)
		if err != nil {
			c.log.Debug("background refresh encode failed", "key", key, "error", err)
			return nil, err
		}
		c.store(rctx, "revalidate", key, raw, ttl)
		return nil, nil
	})
	go func() {
		defer c.wg.Done()
		<-ch
	}()
}
