package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session gauges are registered on the default Prometheus registry, which is
// what the /metrics handler serves.
var (
	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "calculator",
		Name:      "sessions_active",
		Help:      "Number of calculator sessions currently held in memory.",
	})

	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "calculator",
		Name:      "sessions_created_total",
		Help:      "Total number of calculator sessions created.",
	})

	sessionsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "calculator",
		Name:      "sessions_expired_total",
		Help:      "Total number of calculator sessions dropped after going idle.",
	})
)
