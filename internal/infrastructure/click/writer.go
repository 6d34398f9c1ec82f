package click

import (
	"context"
	"fmt"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.IDiscoveryAnalytics = (*DiscoveryWriter)(nil)

const discoveryTable = "discovery_analytics"

// DiscoveryWriter пишет события поиска в ClickHouse (спрос по категориям, доля офлайн-выдач и т.д.).
type DiscoveryWriter struct {
	db    *Client
	table string
}

// NewDiscoveryWriter создаёт писатель событий в базе клиента.
func NewDiscoveryWriter(db *Client) *DiscoveryWriter {
	return &DiscoveryWriter{db: db, table: db.database + "." + discoveryTable}
}

// EnsureTable создаёт таблицу событий, если её ещё нет. Вызови один раз при старте приложения.
func (w *DiscoveryWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID,
			category LowCardinality(String),
			strategy LowCardinality(String),
			latitude Float64,
			longitude Float64,
			result_count UInt32,
			from_cache Bool,
			is_offline Bool,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, category)
		PARTITION BY toYYYYMM(created_at)`,
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteDiscovery реализует ports.IDiscoveryAnalytics: пишет одно событие.
func (w *DiscoveryWriter) WriteDiscovery(ctx context.Context, ev domain.DiscoveryEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, category, strategy, latitude, longitude, result_count, from_cache, is_offline, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.ID, ev.Category, string(ev.Strategy), ev.Latitude, ev.Longitude,
		uint32(ev.ResultCount), ev.FromCache, ev.IsOffline, ev.Timestamp)
	if err != nil {
		return fmt.Errorf("insert discovery event: %w", err)
	}
	return nil
}
