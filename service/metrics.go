package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "dayz_lookup"

// Metrics holds the Prometheus collectors updated by Lookup.
type Metrics struct {
	DirectoryFetches *prometheus.CounterVec
	SnapshotServers  prometheus.Gauge
	Lookups          *prometheus.CounterVec
}

// NewMetrics creates the lookup collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DirectoryFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "directory_fetches_total",
			Help:      "Upstream server directory fetches by result.",
		}, []string{"result"}),
		SnapshotServers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "snapshot_servers",
			Help:      "Number of servers in the current directory snapshot.",
		}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Resolved lookups by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.DirectoryFetches, m.SnapshotServers, m.Lookups)
	return m
}

func (m *Metrics) fetch(result string) {
	m.DirectoryFetches.WithLabelValues(result).Inc()
}

func (m *Metrics) lookup(outcome string) {
	m.Lookups.WithLabelValues(outcome).Inc()
}
