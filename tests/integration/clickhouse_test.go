package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/click"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/usecase/discovery"
	"github.com/markbriannn/gss-maasin-app-sub005/tests/integration/testutil"
)

// clickContainer: контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) (*click.DiscoveryWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(ctx, clickContainer.Config())
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewDiscoveryWriter(client)

	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")
	require.NoError(t, writer.EnsureTable(ctx), "EnsureTable идемпотентен")

	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.discovery_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

func TestClickWriter_WriteDiscovery(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	ev := domain.DiscoveryEvent{
		ID:          uuid.New(),
		Category:    "electrician",
		Strategy:    domain.StrategyNearest,
		Latitude:    10.1301,
		Longitude:   124.8447,
		ResultCount: 3,
		FromCache:   true,
		IsOffline:   true,
		Timestamp:   time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, writer.WriteDiscovery(ctx, ev), "WriteDiscovery должен успешно записать")

	var (
		category string
		strategy string
		count    uint32
		offline  bool
	)
	row := client.DB().QueryRowContext(ctx,
		"SELECT category, strategy, result_count, is_offline FROM default.discovery_analytics WHERE id = ?", ev.ID)
	require.NoError(t, row.Scan(&category, &strategy, &count, &offline))
	assert.Equal(t, "electrician", category)
	assert.Equal(t, string(domain.StrategyNearest), strategy)
	assert.Equal(t, uint32(3), count)
	assert.True(t, offline)
}

// Путь консьюмера Kafka: событие через юзкейс попадает в ClickHouse.
func TestClickWriter_ViaDiscoveryUseCase(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	uc := discovery.New(nil, nil, nil, nil, writer, newTestLogger(), discovery.Config{})
	for _, cat := range []string{"electrician", "plumber"} {
		require.NoError(t, uc.HandleDiscoveryEvent(ctx, domain.DiscoveryEvent{
			ID:        uuid.New(),
			Category:  cat,
			Strategy:  domain.StrategyRecommended,
			Timestamp: time.Now(),
		}))
	}

	var total uint64
	require.NoError(t, client.DB().QueryRowContext(ctx,
		"SELECT count() FROM default.discovery_analytics").Scan(&total))
	assert.Equal(t, uint64(2), total)
}
