package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// watchedOps: события change stream, после которых выборка перечитывается.
var watchedOps = bson.A{"insert", "update", "replace", "delete"}

// Subscribe открывает change stream на коллекцию и отдаёт полный снимок выборки:
// первый сразу, затем после каждого изменения. Change stream требует replica set;
// без него Subscribe возвращает ошибку. cancel не ждёт горутину, но после него снимки не отдаются.
func (r *ProviderRepo) Subscribe(
	ctx context.Context,
	filter domain.ProviderFilter,
	onSnapshot func([]domain.ProviderRecord),
	onError func(error),
) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)

	pipeline := bson.A{bson.D{{Key: "$match", Value: bson.D{
		{Key: "operationType", Value: bson.D{{Key: "$in", Value: watchedOps}}},
	}}}}
	// Поток открывается до первого чтения, чтобы не пропустить изменения между ними.
	stream, err := r.client.Coll().Watch(subCtx, pipeline, options.ChangeStream())
	if err != nil {
		cancel()
		return nil, fmt.Errorf("watch providers: %w", err)
	}

	go func() {
		defer stream.Close(context.Background())

		if !r.snapshot(subCtx, filter, onSnapshot, onError) {
			return
		}
		for stream.Next(subCtx) {
			if !r.snapshot(subCtx, filter, onSnapshot, onError) {
				return
			}
		}
		if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) && subCtx.Err() == nil {
			r.log.Warn("provider change stream failed", "category", filter.ServiceCategory, "error", err)
			onError(err)
		}
	}()

	return cancel, nil
}

// snapshot перечитывает выборку и отдаёт её. false: подписку пора завершить.
func (r *ProviderRepo) snapshot(ctx context.Context, filter domain.ProviderFilter,
	onSnapshot func([]domain.ProviderRecord), onError func(error)) bool {
	list, err := r.FindProviders(ctx, filter)
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		onError(err)
		return false
	}
	onSnapshot(list)
	return true
}
