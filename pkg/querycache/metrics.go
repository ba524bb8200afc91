package querycache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes cache counters. A nil *Metrics is a valid no-op
// receiver so library users who don't run a registry pay nothing.
type Metrics struct {
	hits      prometheus.Counter
	staleHits prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_hits_total",
			Help: "Reads served fresh from cache.",
		}),
		staleHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_stale_hits_total",
			Help: "Reads served stale while a refetch ran.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_misses_total",
			Help: "Reads that went to the network.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_evictions_total",
			Help: "Entries dropped by the GC janitor.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.staleHits, m.misses, m.evictions)
	}
	return m
}

func (m *Metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) staleHit() {
	if m != nil {
		m.staleHits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *Metrics) eviction() {
	if m != nil {
		m.evictions.Inc()
	}
}
