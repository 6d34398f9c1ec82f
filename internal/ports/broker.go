package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer: контракт отправки сообщений в брокер (Kafka). Топик задаётся конфигом реализации.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}
