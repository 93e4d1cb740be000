// Package timer provides the periodic tick source with abstraction for testing.
package timer

import (
	"errors"
	"time"
)

// Timer is a periodic tick source.
type Timer interface {
	// Start starts the timer, or restarts it with a new period if running.
	// The next tick comes one full period after the call.
	Start(period time.Duration) error

	// Period returns the configured period, or 0 before Start.
	Period() time.Duration

	// ClearPending acknowledges the tick being handled. Handlers call it as
	// their last action.
	ClearPending()

	// Stop halts the timer.
	Stop()
}

// ErrInvalidPeriod is returned by Start for non-positive periods.
var ErrInvalidPeriod = errors.New("timer: period must be positive")
