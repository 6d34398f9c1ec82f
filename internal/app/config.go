package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "github.com/markbriannn/gss-maasin-app-sub005/internal/api/grpc"
	apihttp "github.com/markbriannn/gss-maasin-app-sub005/internal/api/http"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/click"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/kafka"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/mongo"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/netstatus"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/pg"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/infrastructure/redis"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/pkg/logger"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/usecase/discovery"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/usecase/offlinecache"
)

const AppName = "GSS"

// Хранилища под офлайн-кэшем (GSS_CACHE_BACKEND).
const (
	BackendRedis  = "redis"
	BackendPG     = "pg"
	BackendMemory = "memory"
)

// Config: конфиг приложения. Заполняется через envconfig с префиксом GSS.
type Config struct {
	Log          logger.Config        `envconfig:"LOG"`
	Server       apihttp.ServerConfig `envconfig:"SERVER"`
	Grpc         apigrpc.ServerConfig `envconfig:"GRPC"`
	CacheBackend string               `envconfig:"CACHE_BACKEND" default:"redis"`
	Cache        offlinecache.Config  `envconfig:"CACHE"`
	Discovery    discovery.Config     `envconfig:"DISCOVERY"`
	Network      netstatus.Config     `envconfig:"NETWORK"`
	Mongo        mongo.Config         `envconfig:"MONGO"`
	Redis        redis.Config         `envconfig:"REDIS"`
	PG           pg.Config            `envconfig:"PG"`
	Kafka        kafka.Config         `envconfig:"KAFKA"`
	ClickHouse   click.Config         `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
