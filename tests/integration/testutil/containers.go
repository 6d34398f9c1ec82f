// Package testutil поднимает хранилища для интеграционных тестов и отдаёт
// готовые конфиги пакетов infrastructure.
package testutil

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/click"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/mongo"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/pg"
	gssredis "github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/redis"
)

// Endpoint: адрес контейнера, проброшенный на хост.
type Endpoint struct {
	Host string
	Port string
}

func (e Endpoint) String() string {
	return e.Host + ":" + e.Port
}

// endpoint разбирает "host:port". Без схемы: так отдают Container.Endpoint(ctx, "")
// и ClickHouseContainer.ConnectionHost.
func endpoint(hostPort string, err error) (Endpoint, error) {
	if err != nil {
		return Endpoint{}, fmt.Errorf("endpoint: %w", err)
	}
	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return Endpoint{}, fmt.Errorf("endpoint %q: %w", hostPort, err)
	}
	return Endpoint{Host: host, Port: port}, nil
}

// PostgresContainer: PostgreSQL под альтернативный бэкенд офлайн-кэша.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Endpoint
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const user, password, dbName = "gss", "gss", "gss_test"

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	ep, err := endpoint(container.Endpoint(ctx, ""))
	if err != nil {
		return nil, fmt.Errorf("postgres %w", err)
	}
	return &PostgresContainer{PostgresContainer: container, Endpoint: ep, User: user, Password: password, DBName: dbName}, nil
}

// Config возвращает конфиг pg.New для контейнера.
func (c *PostgresContainer) Config() *pg.Config {
	return &pg.Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		DBName:   c.DBName,
		SSLMode:  "disable",
	}
}

// RedisContainer: Redis, основной бэкенд офлайн-кэша.
type RedisContainer struct {
	*redis.RedisContainer
	Endpoint
}

// NewRedisContainer поднимает Redis.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}
	ep, err := endpoint(container.Endpoint(ctx, ""))
	if err != nil {
		return nil, fmt.Errorf("redis %w", err)
	}
	return &RedisContainer{RedisContainer: container, Endpoint: ep}, nil
}

// Config возвращает конфиг redis.Open для контейнера.
func (c *RedisContainer) Config() *gssredis.Config {
	return &gssredis.Config{URL: "redis://" + net.JoinHostPort(c.Host, c.Port) + "/0", DialTimeout: 5 * time.Second}
}

// MongoContainer: MongoDB одноузловым replica set, без него не работают change stream.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Endpoint
}

// NewMongoContainer поднимает MongoDB.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7", mongodb.WithReplicaSet("rs0"))
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}
	ep, err := endpoint(container.Endpoint(ctx, ""))
	if err != nil {
		return nil, fmt.Errorf("mongo %w", err)
	}
	return &MongoContainer{MongoDBContainer: container, Endpoint: ep}, nil
}

// Config возвращает конфиг mongo.New. Подключение прямое: адрес члена
// replica set внутри контейнера снаружи недоступен.
func (c *MongoContainer) Config(database string) *mongo.Config {
	return &mongo.Config{
		URI:         fmt.Sprintf("mongodb://%s/?directConnection=true", c.Endpoint),
		Database:    database,
		Collection:  "users",
		PingTimeout: 10 * time.Second,
	}
}

// ClickHouseContainer: ClickHouse под аналитику поисков.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Endpoint
}

// NewClickHouseContainer поднимает ClickHouse (нативный протокол).
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		clickhouse.WithDatabase("default"),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	ep, err := endpoint(container.ConnectionHost(ctx))
	if err != nil {
		return nil, fmt.Errorf("clickhouse %w", err)
	}
	return &ClickHouseContainer{ClickHouseContainer: container, Endpoint: ep}, nil
}

// Config возвращает конфиг click.New для контейнера.
func (c *ClickHouseContainer) Config() *click.Config {
	return &click.Config{
		Enabled:  true,
		Host:     c.Host,
		Port:     c.Port,
		Database: "default",
		Username: "default",
	}
}
