package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.IKeyValueStore = (*KVStore)(nil)

// KVStore: хранилище ключ-значение в памяти процесса. Для тестов и GSS_CACHE_BACKEND=memory.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore создаёт пустое хранилище.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Get возвращает значение по ключу.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set перезаписывает значение.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

// Delete удаляет ключи; отсутствующие пропускаются.
func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	for _, k := range keys {
		delete(s.data, k)
	}
	s.mu.Unlock()
	return nil
}

// Keys возвращает отсортированные ключи с префиксом.
func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Len возвращает число ключей.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
