package ports

import "context"

// IKeyValueStore: постоянное хранилище ключ-значение под офлайн-кэшем.
// Ключи и значения строковые, транзакций нет: последняя запись побеждает.
type IKeyValueStore interface {
	// Get возвращает found == false, если ключа нет.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	// Keys возвращает все ключи с данным префиксом.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
