package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var (
	_ ports.IProviderRepository = (*ProviderRepo)(nil)
	_ ports.IProviderFeed       = (*ProviderRepo)(nil)
)

// ProviderRepo реализует ports.IProviderRepository и ports.IProviderFeed для MongoDB.
type ProviderRepo struct {
	client *Client
	log    *slog.Logger
}

// NewProviderRepo возвращает репозиторий провайдеров.
func NewProviderRepo(client *Client, log *slog.Logger) *ProviderRepo {
	return &ProviderRepo{client: client, log: log}
}

// FindProviders возвращает записи по фильтру, отсортированные по _id.
func (r *ProviderRepo) FindProviders(ctx context.Context, filter domain.ProviderFilter) ([]domain.ProviderRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.client.Coll().Find(ctx, filterDoc(filter), opts)
	if err != nil {
		r.log.Debug("FindProviders failed", "category", filter.ServiceCategory, "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []providerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.ProviderRecord, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toDomain())
	}
	return list, nil
}

// UpsertProvider вставляет запись или заменяет существующую с тем же ID.
func (r *ProviderRepo) UpsertProvider(ctx context.Context, rec domain.ProviderRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	_, err := r.client.Coll().ReplaceOne(ctx, bson.D{{Key: "_id", Value: rec.ID}}, toDoc(rec),
		options.Replace().SetUpsert(true))
	if err != nil {
		r.log.Debug("UpsertProvider failed", "id", rec.ID, "error", err)
		return fmt.Errorf("upsert provider %s: %w", rec.ID, err)
	}
	return nil
}

// Ping проверяет доступность БД.
func (r *ProviderRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
