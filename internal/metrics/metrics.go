// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
type Recorder interface {
	// Employee management metrics
	IncEmployeeCreated()

	// Phone lookup cache metrics
	IncLookupCacheHit()
	IncLookupCacheMiss()

	// Database metrics
	ObserveDBQueryDuration(queryType string, duration time.Duration)
}
