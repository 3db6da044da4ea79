package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	EmployeesCreated  uint64
	LookupCacheHits   uint64
	LookupCacheMisses uint64
	DBQueryCount      uint64
	DBQueryTotalNs    int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	employeesCreated  uint64
	lookupCacheHits   uint64
	lookupCacheMisses uint64
	dbQueryCount      uint64
	dbQueryTotalNs    int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		EmployeesCreated:  atomic.LoadUint64(&m.employeesCreated),
		LookupCacheHits:   atomic.LoadUint64(&m.lookupCacheHits),
		LookupCacheMisses: atomic.LoadUint64(&m.lookupCacheMisses),
		DBQueryCount:      atomic.LoadUint64(&m.dbQueryCount),
		DBQueryTotalNs:    atomic.LoadInt64(&m.dbQueryTotalNs),
	}
}

// IncEmployeeCreated increments the created counter.
func (m *InMemoryRecorder) IncEmployeeCreated() {
	atomic.AddUint64(&m.employeesCreated, 1)
}

// IncLookupCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncLookupCacheHit() {
	atomic.AddUint64(&m.lookupCacheHits, 1)
}

// IncLookupCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncLookupCacheMiss() {
	atomic.AddUint64(&m.lookupCacheMisses, 1)
}

// ObserveDBQueryDuration records a database query duration.
func (m *InMemoryRecorder) ObserveDBQueryDuration(queryType string, duration time.Duration) {
	atomic.AddUint64(&m.dbQueryCount, 1)
	atomic.AddInt64(&m.dbQueryTotalNs, duration.Nanoseconds())
}
