package timer

import (
	"sync"
	"time"
)

// RealTimer ticks from a time.Ticker.
type RealTimer struct {
	mu     sync.Mutex
	ticker *time.Ticker
	period time.Duration
	c      chan time.Time
	done   chan struct{}
	once   sync.Once
}

// NewRealTimer creates a stopped timer. Ticks are delivered on C once started.
func NewRealTimer() *RealTimer {
	return &RealTimer{
		c:    make(chan time.Time, 1),
		done: make(chan struct{}),
	}
}

// Start starts the ticker or resets its period. Reset restarts the interval,
// so the in-flight period is discarded.
func (t *RealTimer) Start(period time.Duration) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.period = period
	if t.ticker != nil {
		t.ticker.Reset(period)
		return nil
	}
	t.ticker = time.NewTicker(period)
	go t.forward(t.ticker.C)
	return nil
}

// forward copies ticks onto the stable channel returned by C. It keeps at
// most one tick buffered, like a hardware update flag.
func (t *RealTimer) forward(src <-chan time.Time) {
	for {
		select {
		case <-t.done:
			return
		case now := <-src:
			select {
			case t.c <- now:
			default:
			}
		}
	}
}

// C returns the tick channel.
func (t *RealTimer) C() <-chan time.Time {
	return t.c
}

// Period returns the configured period.
func (t *RealTimer) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

// ClearPending is a no-op: receiving from C consumes the tick.
func (t *RealTimer) ClearPending() {}

// Stop halts the ticker. A stopped timer cannot be restarted.
func (t *RealTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ticker != nil {
		t.ticker.Stop()
	}
	t.once.Do(func() { close(t.done) })
}
