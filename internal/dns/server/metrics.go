package server

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the server façade's Prometheus counters. A fresh registry is
// used per Server instance so multiple servers (e.g. in tests) don't
// collide on prometheus's global default registry.
type Metrics struct {
	Registry     *prometheus.Registry
	QueriesTotal prometheus.Counter
	ErrorsTotal  prometheus.Counter
	ZoneHits     prometheus.Counter
	ZoneMisses   prometheus.Counter

	// ZonesRegistered counts every successful Server.Zone call.
	ZonesRegistered prometheus.Counter

	// DelegatedZonesTotal counts registered zones whose name sits below
	// its own public-suffix apex (e.g. "dev.example.co.uk", apex
	// "example.co.uk"), as opposed to a zone registered at its apex.
	DelegatedZonesTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		QueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnsd_queries_total",
			Help: "Total DNS queries received across UDP and TCP.",
		}),
		ErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnsd_errors_total",
			Help: "Total decode/transport errors encountered while serving queries.",
		}),
		ZoneHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnsd_zone_hits_total",
			Help: "Total queries whose owner name matched a registered zone.",
		}),
		ZoneMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnsd_zone_misses_total",
			Help: "Total queries whose owner name matched no registered zone.",
		}),
		ZonesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnsd_zones_registered_total",
			Help: "Total zones registered via Server.Zone.",
		}),
		DelegatedZonesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dnsd_delegated_zones_total",
			Help: "Total registered zones whose name is below its public-suffix apex.",
		}),
	}
	reg.MustRegister(m.QueriesTotal, m.ErrorsTotal, m.ZoneHits, m.ZoneMisses, m.ZonesRegistered, m.DelegatedZonesTotal)
	return m
}
