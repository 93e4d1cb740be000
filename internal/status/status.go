// Package status provides a thread-safe status tracker for the button-blinker daemon.
// It is written by the handlers after they leave the critical section and read by
// the heartbeat logger.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/button-blinker/internal/logic"
)

// recentCapacity is how many events the tracker keeps.
const recentCapacity = 16

// Config contains daemon configuration for display.
type Config struct {
	Mode        logic.Mode
	Chip        string
	PinButton   int
	PinLED      int
	Edge        string
	HeartbeatMs int64
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type; safe to use after the lock is released.
type Snapshot struct {
	State     logic.State
	LEDOn     bool
	Recent    []logic.Event
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu     sync.RWMutex
	snap   Snapshot
	recent *ringBuffer
	now    func() time.Time
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
			State:     logic.State{Mode: cfg.Mode},
		},
		recent: newRingBuffer(recentCapacity),
		now:    time.Now,
	}
}

// Update records the core state and LED level after a handler ran, along
// with the events it produced.
func (t *Tracker) Update(st logic.State, ledOn bool, events []logic.Event) {
	t.mu.Lock()
	t.snap.State = st
	t.snap.LEDOn = ledOn
	for _, e := range events {
		t.recent.push(e)
	}
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	s.Recent = t.recent.items()
	t.mu.RUnlock()
	s.Now = t.now()
	return s
}
