package timer

import "time"

// FakeTimer records starts and acknowledgements for test assertions.
type FakeTimer struct {
	// Starts contains every period passed to Start, in order.
	Starts []time.Duration

	// Cleared counts ClearPending calls.
	Cleared int

	// Stopped tracks if Stop was called.
	Stopped bool

	// StartError, if set, will be returned by Start.
	StartError error

	// OnClear, if set, is called from ClearPending.
	OnClear func()

	// OnStart, if set, is called from Start.
	OnStart func(time.Duration)
}

// NewFakeTimer creates a FakeTimer.
func NewFakeTimer() *FakeTimer {
	return &FakeTimer{}
}

// Start records the period.
func (f *FakeTimer) Start(period time.Duration) error {
	if f.OnStart != nil {
		f.OnStart(period)
	}
	if f.StartError != nil {
		return f.StartError
	}
	if period <= 0 {
		return ErrInvalidPeriod
	}
	f.Starts = append(f.Starts, period)
	f.Stopped = false
	return nil
}

// Period returns the last started period.
func (f *FakeTimer) Period() time.Duration {
	if len(f.Starts) == 0 {
		return 0
	}
	return f.Starts[len(f.Starts)-1]
}

// ClearPending records the acknowledgement.
func (f *FakeTimer) ClearPending() {
	f.Cleared++
	if f.OnClear != nil {
		f.OnClear()
	}
}

// Stop marks the timer as stopped.
func (f *FakeTimer) Stop() {
	f.Stopped = true
}
