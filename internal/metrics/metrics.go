// Package metrics exposes the prometheus counters and gauges that make
// unique-table behaviour observable: unify hits and misses, bucket-array
// resizes and live entries, per named table. Only the SDD node unique
// table is instrumented; the operation caches, the homomorphism unique
// table and the homomorphism cache have no counters, so cache hits are
// not observable through this package.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// TableMetrics groups the hit/miss/rehash counters and the entry gauge
// for one unique table, identified by name (sdd.NewStore registers
// "sdd", the only name in use).
type TableMetrics struct {
	Hits    prometheus.Counter
	Misses  prometheus.Counter
	Rehash  prometheus.Counter
	Entries prometheus.Gauge
}

// Registry owns the metrics for one manager instance. A fresh registry is
// created per manager so that two managers (discouraged but not
// forbidden to construct sequentially) never collide on metric names.
type Registry struct {
	reg    *prometheus.Registry
	tables map[string]*TableMetrics
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		reg:    prometheus.NewRegistry(),
		tables: make(map[string]*TableMetrics),
	}
}

// Table returns (creating on first use) the metrics for the named table.
func (r *Registry) Table(name string) *TableMetrics {
	if tm, ok := r.tables[name]; ok {
		return tm
	}
	tm := &TableMetrics{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "gosdd_table_hits_total",
			Help:        "Number of unify/lookup calls served from an existing canonical entry.",
			ConstLabels: prometheus.Labels{"table": name},
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "gosdd_table_misses_total",
			Help:        "Number of unify/lookup calls that allocated a new canonical entry.",
			ConstLabels: prometheus.Labels{"table": name},
		}),
		Rehash: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "gosdd_table_rehash_total",
			Help:        "Number of bucket-array resizes.",
			ConstLabels: prometheus.Labels{"table": name},
		}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "gosdd_table_entries",
			Help:        "Current number of live entries.",
			ConstLabels: prometheus.Labels{"table": name},
		}),
	}
	r.reg.MustRegister(tm.Hits, tm.Misses, tm.Rehash, tm.Entries)
	r.tables[name] = tm
	return tm
}

// Gatherer exposes the underlying registry for a metrics HTTP endpoint or
// test assertions.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
