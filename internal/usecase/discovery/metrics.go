package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gss_discovery_sessions_active",
		Help: "Live discovery sessions that are not closed yet",
	})

	sessionDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gss_discovery_deliveries_total",
			Help: "Live feed deliveries by result (delivered, stale, error)",
		},
		[]string{"result"},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gss_discovery_searches_total",
			Help: "One-shot provider searches by strategy",
		},
		[]string{"strategy"},
	)
)
