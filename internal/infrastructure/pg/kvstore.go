package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.IKeyValueStore = (*KVStore)(nil)

// KVStore реализует ports.IKeyValueStore на таблице cache_entries.
type KVStore struct {
	db  *DB
	log *slog.Logger
}

// NewKVStore возвращает хранилище ключ-значение в PostgreSQL.
func NewKVStore(db *DB, log *slog.Logger) *KVStore {
	return &KVStore{db: db, log: log}
}

// Get возвращает значение по ключу; found == false, если строки нет.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM cache_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.log.Debug("kv get failed", "key", key, "error", err)
		return "", false, err
	}
	return value, true, nil
}

// Set вставляет или перезаписывает значение.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache_entries (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	if err != nil {
		s.log.Debug("kv set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete удаляет ключи одним запросом.
func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = ANY($1)`, pq.Array(keys)); err != nil {
		s.log.Debug("kv delete failed", "keys", len(keys), "error", err)
		return err
	}
	return nil
}

// Keys возвращает ключи с префиксом в порядке возрастания.
func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM cache_entries WHERE key LIKE $1 ESCAPE '\' ORDER BY key`,
		escapeLike(prefix)+"%")
	if err != nil {
		s.log.Debug("kv keys failed", "prefix", prefix, "error", err)
		return nil, err
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// escapeLike экранирует спецсимволы LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
