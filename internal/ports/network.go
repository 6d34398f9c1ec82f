package ports

//go:generate mockgen -source=network.go -destination=../mocks/network_mock.go -package=mocks

import (
	"context"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// INetworkStatus: источник состояния сети.
type INetworkStatus interface {
	FetchCurrentStatus(ctx context.Context) (domain.NetworkState, error)
	// Subscribe пересылает изменения состояния в cb. Возвращает функцию отписки.
	Subscribe(cb func(domain.NetworkState)) (unsubscribe func())
}
