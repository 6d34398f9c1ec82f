package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

// Consumer: обёртка над kafka.Reader, декодирует сообщения в domain.DiscoveryEvent и вызывает use case.
type Consumer struct {
	r   *kafka.Reader
	uc  ports.IDiscoveryUseCase
	log *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IDiscoveryUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// decodeEvent разбирает тело сообщения. Событие без категории считается битым.
func decodeEvent(value []byte) (domain.DiscoveryEvent, error) {
	var ev domain.DiscoveryEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return ev, err
	}
	if ev.Category == "" {
		return ev, fmt.Errorf("discovery event %s: empty category", ev.ID)
	}
	return ev, nil
}

// Run в цикле читает сообщения, вызывает uc.HandleDiscoveryEvent и коммитит при успехе.
// Битые сообщения коммитятся и пропускаются. Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		ev, err := decodeEvent(msg.Value)
		if err != nil {
			c.log.Warn("kafka decode error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.uc.HandleDiscoveryEvent(ctx, ev); err != nil {
			c.log.Warn("kafka handle error, will redeliver", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			continue
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
