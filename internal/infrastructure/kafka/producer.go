package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// Заголовки сообщений топика событий поиска.
const (
	headerContentType = "content-type"
	headerSource      = "source"
	sourceName        = "gss-discovery"
)

// Producer публикует события поиска; ключ сообщения (категория) задаёт партицию.
type Producer struct {
	w   *kafka.Writer
	now func() time.Time
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

func message(key, value []byte, at time.Time) kafka.Message {
	return kafka.Message{
		Key:   key,
		Value: value,
		Time:  at,
		Headers: []kafka.Header{
			{Key: headerContentType, Value: []byte("application/json")},
			{Key: headerSource, Value: []byte(sourceName)},
		},
	}
}

// Send синхронно пишет одно сообщение; ждёт подтверждения не дольше WriteTimeout.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	return p.w.WriteMessages(ctx, message(key, value, p.now()))
}

// Close дописывает буфер и закрывает writer.
func (p *Producer) Close() error {
	return p.w.Close()
}
