package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncEmployeeCreated is a no-op.
func (n *NoopRecorder) IncEmployeeCreated() {}

// IncLookupCacheHit is a no-op.
func (n *NoopRecorder) IncLookupCacheHit() {}

// IncLookupCacheMiss is a no-op.
func (n *NoopRecorder) IncLookupCacheMiss() {}

// ObserveDBQueryDuration is a no-op.
func (n *NoopRecorder) ObserveDBQueryDuration(queryType string, duration time.Duration) {}
