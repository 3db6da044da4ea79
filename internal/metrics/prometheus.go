package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder exposes application metrics through a Prometheus registry.
type PrometheusRecorder struct {
	employeesCreated  prometheus.Counter
	lookupCacheHits   prometheus.Counter
	lookupCacheMisses prometheus.Counter
	dbQueryDuration   *prometheus.HistogramVec
}

// NewPrometheus registers the application metrics with the given Registerer
// and returns a Recorder backed by them.
func NewPrometheus(reg prometheus.Registerer) *PrometheusRecorder {
	return &PrometheusRecorder{
		employeesCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_employees_created_total",
			Help: "Total number of employees created.",
		}),
		lookupCacheHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_lookup_cache_hits_total",
			Help: "Total number of phone lookups served from cache.",
		}),
		lookupCacheMisses: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_lookup_cache_misses_total",
			Help: "Total number of phone lookups that fell through to the database.",
		}),
		dbQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdesk_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}),
	}
}

// IncEmployeeCreated increments the created counter.
func (p *PrometheusRecorder) IncEmployeeCreated() {
	p.employeesCreated.Inc()
}

// IncLookupCacheHit increments the cache hit counter.
func (p *PrometheusRecorder) IncLookupCacheHit() {
	p.lookupCacheHits.Inc()
}

// IncLookupCacheMiss increments the cache miss counter.
func (p *PrometheusRecorder) IncLookupCacheMiss() {
	p.lookupCacheMisses.Inc()
}

// ObserveDBQueryDuration records a database query duration.
func (p *PrometheusRecorder) ObserveDBQueryDuration(queryType string, duration time.Duration) {
	p.dbQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}
