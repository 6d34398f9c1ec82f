package offlinecache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы чтения кэша.
const (
	outcomeHit     = "hit"
	outcomeMiss    = "miss"
	outcomeExpired = "expired"
	outcomeCorrupt = "corrupt"
	outcomeError   = "error"
)

var (
	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gss_offline_cache_lookups_total",
			Help: "Offline cache reads by outcome",
		},
		[]string{"outcome"},
	)

	cacheFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gss_offline_cache_fetches_total",
			Help: "FetchWithOfflineFallback results by source",
		},
		[]string{"source"},
	)
)
