package offlinecache

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var errCorruptEntry = errors.New("corrupt cache entry")

// namespace владеет префиксами ключей и парным ключом срока истечения.
// Хранилище не даёт транзакций, поэтому значение и срок пишутся двумя операциями:
// при конкурентной записи одного ключа возможна потеря обновления, побеждает последняя запись.
type namespace struct {
	store ports.IKeyValueStore
	root  string
}

func (n namespace) prefix() string {
	return n.root + ":"
}

func (n namespace) valueKey(key string) string {
	return n.root + ":v:" + key
}

func (n namespace) expiryKey(key string) string {
	return n.root + ":exp:" + key
}

func (n namespace) put(ctx context.Context, e domain.CachedEntry) error {
	if err := n.store.Set(ctx, n.valueKey(e.Key), string(e.Value)); err != nil {
		return err
	}
	return n.store.Set(ctx, n.expiryKey(e.Key), strconv.FormatInt(e.ExpiresAtEpochMilli, 10))
}

// get читает запись. Запись без срока истечения считается бессрочной.
func (n namespace) get(ctx context.Context, key string) (domain.CachedEntry, bool, error) {
	value, found, err := n.store.Get(ctx, n.valueKey(key))
	if err != nil || !found {
		return domain.CachedEntry{}, false, err
	}
	entry := domain.CachedEntry{Key: key, Value: []byte(value), ExpiresAtEpochMilli: math.MaxInt64}

	exp, found, err := n.store.Get(ctx, n.expiryKey(key))
	if err != nil {
		return domain.CachedEntry{}, false, err
	}
	if found {
		ms, err := strconv.ParseInt(exp, 10, 64)
		if err != nil {
			return domain.CachedEntry{}, false, errCorruptEntry
		}
		entry.ExpiresAtEpochMilli = ms
	}
	return entry, true, nil
}

func (n namespace) remove(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.valueKey(key), n.expiryKey(key))
}

func (n namespace) clear(ctx context.Context) error {
	keys, err := n.store.Keys(ctx, n.prefix())
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return n.store.Delete(ctx, keys...)
}
