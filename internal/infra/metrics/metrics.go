// Package metrics holds the process-wide prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devicequote"

type Registry struct {
	reg *prometheus.Registry

	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	CacheStoreReads    prometheus.Counter
	CacheStoreErrors   prometheus.Counter
	CacheInvalidations prometheus.Counter
	CacheFetchSec      prometheus.Histogram

	// labelled by transaction type and price source
	QuotesResolved *prometheus.CounterVec

	PriceUpdatesApplied  prometheus.Counter
	PriceUpdatesRejected prometheus.Counter

	RecoverySaved  prometheus.Counter
	RecoveryPurged prometheus.Counter

	DBSlowQueries prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	hits := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "cache_hits_total"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "cache_misses_total"})
	storeReads := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "cache_store_reads_total"})
	storeErrors := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "cache_store_errors_total"})
	invalidations := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "cache_invalidations_total"})
	fetchSec := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_fetch_seconds",
		Buckets:   prometheus.DefBuckets,
	})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_resolved_total",
	}, []string{"type", "source"})
	applied := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "price_updates_applied_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "price_updates_rejected_total"})
	saved := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "recovery_sessions_saved_total"})
	purged := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "recovery_sessions_purged_total"})
	slowQueries := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "db_slow_queries_total"})

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		hits, misses, storeReads, storeErrors, invalidations, fetchSec,
		quotes, applied, rejected, saved, purged, slowQueries,
	)

	return &Registry{
		reg:                  r,
		CacheHits:            hits,
		CacheMisses:          misses,
		CacheStoreReads:      storeReads,
		CacheStoreErrors:     storeErrors,
		CacheInvalidations:   invalidations,
		CacheFetchSec:        fetchSec,
		QuotesResolved:       quotes,
		PriceUpdatesApplied:  applied,
		PriceUpdatesRejected: rejected,
		RecoverySaved:        saved,
		RecoveryPurged:       purged,
		DBSlowQueries:        slowQueries,
	}
}

// Register adds a collector owned by another component, such as the
// database pool stats.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.reg.Register(c)
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
