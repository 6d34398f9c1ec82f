// Package integration: интеграционные тесты адаптеров хранилищ на реальных
// Redis, PostgreSQL, MongoDB (replica set) и ClickHouse в testcontainers.
//
// Запуск:
//
//	go test ./tests/integration/... -v
//
// Только юнит-тесты (контейнеры не поднимаются):
//
//	go test ./... -short
package integration

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"github.com/markbriannn/gss-maasin-app-sub005/tests/integration/testutil"
)

// terminator: общий метод контейнеров testcontainers.
type terminator interface {
	Terminate(ctx context.Context) error
}

// TestMain поднимает все контейнеры один раз на пакет и гасит их после тестов.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var started []terminator
	shutdown := func() {
		for i := len(started) - 1; i >= 0; i-- {
			if err := started[i].Terminate(ctx); err != nil {
				log.Printf("terminate container: %v", err)
			}
		}
	}

	steps := []struct {
		name  string
		start func() (terminator, error)
	}{
		{"redis", func() (terminator, error) {
			c, err := testutil.NewRedisContainer(ctx)
			redisContainer = c
			return c, err
		}},
		{"postgres", func() (terminator, error) {
			c, err := testutil.NewPostgresContainer(ctx)
			pgContainer = c
			return c, err
		}},
		{"mongo", func() (terminator, error) {
			c, err := testutil.NewMongoContainer(ctx)
			mongoContainer = c
			return c, err
		}},
		{"clickhouse", func() (terminator, error) {
			c, err := testutil.NewClickHouseContainer(ctx)
			clickContainer = c
			return c, err
		}},
	}
	for _, s := range steps {
		c, err := s.start()
		if err != nil {
			shutdown()
			log.Fatalf("start %s: %v", s.name, err)
		}
		started = append(started, c)
		log.Printf("%s container ready", s.name)
	}

	code := m.Run()
	shutdown()
	os.Exit(code)
}
