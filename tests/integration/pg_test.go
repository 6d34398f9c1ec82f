package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/pg"
	"github.com/markbriannn/gss-maasin-app-sub005/tests/integration/testutil"
)

// pgContainer: контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgStore подключается к тестовой БД (New применяет миграции) и очищает cache_entries.
func setupPgStore(t *testing.T) *pg.KVStore {
	t.Helper()

	ctx := context.Background()
	db, err := pg.New(ctx, pgContainer.Config())
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")

	_, err = db.ExecContext(ctx, "TRUNCATE cache_entries")
	require.NoError(t, err, "не удалось очистить cache_entries")

	t.Cleanup(func() {
		db.Close()
	})

	return pg.NewKVStore(db, newTestLogger())
}

func TestPgKVStore_Upsert(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	store := setupPgStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "1"))
	require.NoError(t, store.Set(ctx, "k", "2"), "конфликт ключа: обновление")

	v, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2", v)
}

func TestPgKVStore_GetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	store := setupPgStore(t)

	v, found, err := store.Get(context.Background(), "нет_такого")
	require.NoError(t, err, "промах: не ошибка")
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestPgKVStore_DeleteMany(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	store := setupPgStore(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, store.Set(ctx, k, k))
	}
	require.NoError(t, store.Delete(ctx, "a", "b"))
	require.NoError(t, store.Delete(ctx), "пустой список ключей допустим")

	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, keys)
}

func TestPgKVStore_KeysEscapesLike(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	store := setupPgStore(t)
	ctx := context.Background()

	for _, k := range []string{"gss_cache:v:a", "gss_cache:exp:a", "gssXcache:v:a", "other"} {
		require.NoError(t, store.Set(ctx, k, "1"))
	}

	keys, err := store.Keys(ctx, "gss_cache:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"gss_cache:v:a", "gss_cache:exp:a"}, keys,
		"подчёркивание в префиксе не должно совпадать с любым символом")
}

func TestPgMigrate_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	setupPgStore(t)
	db, err := pg.New(context.Background(), pgContainer.Config())
	require.NoError(t, err, "повторная миграция не должна падать")
	db.Close()
}
