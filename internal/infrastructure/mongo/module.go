package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Config: настройки подключения к MongoDB. Переменные: GSS_MONGO_*.
type Config struct {
	URI         string        `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database    string        `envconfig:"DATABASE" default:"gss"`
	Collection  string        `envconfig:"COLLECTION" default:"users"`
	PingTimeout time.Duration `envconfig:"PING_TIMEOUT" default:"10s"`
}

// Client: обёртка над mongo.Client.
type Client struct {
	*mongo.Client
	cfg Config
}

// New подключается к MongoDB по конфигу.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Client{Client: client, cfg: *cfg}, nil
}

// DB возвращает базу по конфигу.
func (c *Client) DB() *mongo.Database {
	return c.Database(c.cfg.Database)
}

// Coll возвращает коллекцию пользователей, где лежат записи провайдеров.
func (c *Client) Coll() *mongo.Collection {
	return c.DB().Collection(c.cfg.Collection)
}

// discoveryIndex покрывает фильтр выдачи: роль, категория, статус.
var discoveryIndex = mongo.IndexModel{
	Keys: bson.D{
		{Key: "serviceCategory", Value: 1},
		{Key: "role", Value: 1},
		{Key: "status", Value: 1},
	},
	Options: options.Index().SetName("discovery_filter"),
}

// EnsureIndexes создаёт индекс выдачи. Повторный вызов с тем же описанием ничего не меняет.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	if _, err := c.Coll().Indexes().CreateOne(ctx, discoveryIndex); err != nil {
		return fmt.Errorf("mongo index %s: %w", "discovery_filter", err)
	}
	return nil
}
