// Package scenariogen generates randomized estimation scenarios and submits
// them to a running service, verifying result invariants along the way.
package scenariogen

import (
	"sync/atomic"
	"time"
)

// Config controls a scenario run.
type Config struct {
	BaseURL      string
	NumScenarios int
	BatchSize    int
	Workers      int
	Timeout      time.Duration
	Verbose      bool
}

// Stats accumulates counters across concurrent submitters.
type Stats struct {
	Submitted      atomic.Int64
	Failed         atomic.Int64
	InvariantFails atomic.Int64
	AboveThreshold atomic.Int64
}
