package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/mongo"
	"github.com/markbriannn/gss-maasin-app-sub005/tests/integration/testutil"
)

// mongoContainer: контейнер MongoDB, инициализируется в TestMain.
var mongoContainer *testutil.MongoContainer

// setupMongoRepo подключается к тестовой MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *mongo.ProviderRepo {
	t.Helper()

	ctx := context.Background()

	client, err := mongo.New(ctx, mongoContainer.Config("gss_test"))
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	if err := client.Coll().Drop(ctx); err != nil {
		t.Logf("drop collection: %v (игнорируем)", err)
	}

	t.Cleanup(func() {
		client.Disconnect(context.Background())
	})

	return mongo.NewProviderRepo(client, newTestLogger())
}

func electrician(id string, price float64) domain.ProviderRecord {
	return domain.ProviderRecord{
		ID:              id,
		Name:            "Provider " + id,
		Role:            domain.RoleProvider,
		Status:          domain.StatusApproved,
		ServiceCategory: "electrician",
		Location:        &domain.GeoPoint{Latitude: 10.13, Longitude: 124.84},
		Price:           price,
		PriceType:       domain.PricePerJob,
		Rating:          4.5,
		CompletedJobs:   12,
		Tier:            "gold",
	}
}

func TestMongoRepo_UpsertAndFind(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertProvider(ctx, electrician("p2", 300)))
	require.NoError(t, repo.UpsertProvider(ctx, electrician("p1", 500)))

	pending := electrician("p3", 100)
	pending.Status = "pending"
	require.NoError(t, repo.UpsertProvider(ctx, pending))

	plumber := electrician("p4", 100)
	plumber.ServiceCategory = "plumber"
	require.NoError(t, repo.UpsertProvider(ctx, plumber))

	// Повторный upsert заменяет документ.
	updated := electrician("p1", 450)
	require.NoError(t, repo.UpsertProvider(ctx, updated))

	list, err := repo.FindProviders(ctx, domain.CategoryFilter("electrician"))
	require.NoError(t, err)
	require.Len(t, list, 2, "только одобренные электрики")
	assert.Equal(t, "p1", list[0].ID, "сортировка по id")
	assert.Equal(t, 450.0, list[0].Price, "upsert должен заменить запись")
	assert.Equal(t, updated, list[0])

	byID, err := repo.FindProviders(ctx, domain.ProviderFilter{ProviderIDs: []string{"p3", "p4"}})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
}

func TestMongoRepo_UpsertInvalid(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	err := repo.UpsertProvider(context.Background(), domain.ProviderRecord{Name: "без id"})
	assert.ErrorIs(t, err, domain.ErrInvalidProvider)
}

func TestMongoRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}

// snapshots собирает доставки подписки.
type snapshots struct {
	mu   sync.Mutex
	got  [][]domain.ProviderRecord
	errs []error
}

func (s *snapshots) onSnapshot(list []domain.ProviderRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, list)
}

func (s *snapshots) onError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *snapshots) last() ([]domain.ProviderRecord, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.got) == 0 {
		return nil, 0
	}
	return s.got[len(s.got)-1], len(s.got)
}

func TestMongoRepo_SubscribeDeliversSnapshots(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.UpsertProvider(ctx, electrician("p1", 500)))

	rec := &snapshots{}
	cancel, err := repo.Subscribe(ctx, domain.CategoryFilter("electrician"), rec.onSnapshot, rec.onError)
	require.NoError(t, err, "change stream требует replica set")
	defer cancel()

	require.Eventually(t, func() bool {
		list, _ := rec.last()
		return len(list) == 1
	}, 10*time.Second, 50*time.Millisecond, "первый снимок приходит сразу")

	require.NoError(t, repo.UpsertProvider(ctx, electrician("p2", 300)))

	require.Eventually(t, func() bool {
		list, _ := rec.last()
		return len(list) == 2
	}, 10*time.Second, 50*time.Millisecond, "изменение должно дать полный новый снимок")

	cancel()
	_, n := rec.last()
	require.NoError(t, repo.UpsertProvider(ctx, electrician("p3", 200)))
	time.Sleep(500 * time.Millisecond)
	_, after := rec.last()
	assert.LessOrEqual(t, after, n+1, "после cancel снимки не копятся")

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Empty(t, rec.errs, "отмена: не ошибка")
}

func TestMongoClient_EnsureIndexesIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	ctx := context.Background()
	client, err := mongo.New(ctx, mongoContainer.Config("gss_test_idx"))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	require.NoError(t, client.EnsureIndexes(ctx))
	require.NoError(t, client.EnsureIndexes(ctx), "повторное создание того же индекса не ошибка")

	specs, err := client.Coll().Indexes().ListSpecifications(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "discovery_filter")
}
