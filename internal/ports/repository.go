package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// IProviderRepository: чтение и запись записей провайдеров в документном хранилище.
type IProviderRepository interface {
	FindProviders(ctx context.Context, filter domain.ProviderFilter) ([]domain.ProviderRecord, error)
	UpsertProvider(ctx context.Context, rec domain.ProviderRecord) error
	Ping(ctx context.Context) error
}

// IProviderFeed: живая подписка на выборку провайдеров.
// onSnapshot получает полный снимок на каждое изменение, включая первое.
// После cancel новые доставки не начинаются; ошибки потока идут в onError без повторов.
type IProviderFeed interface {
	Subscribe(ctx context.Context, filter domain.ProviderFilter,
		onSnapshot func([]domain.ProviderRecord), onError func(error)) (cancel func(), err error)
}
