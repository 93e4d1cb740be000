// Package logic contains the pure state machines for the button/LED controller.
// This package has NO external dependencies (no GPIO, locking, OS, or wall clock).
// Time is measured in timer ticks, supplied by the caller.
package logic

import "time"

// Mode selects which behavior the core runs.
type Mode string

const (
	// ModeBlink arms a six-toggle blink episode on a double click.
	// The timer runs at a fixed BlinkPeriod.
	ModeBlink Mode = "blink"
	// ModePeriod shortens the timer period on every click and toggles
	// the LED on every tick.
	ModePeriod Mode = "period"
)

const (
	// DoubleClickWindow is the tick gap at which two clicks stop combining.
	DoubleClickWindow uint32 = 4
	// BlinkToggleLimit is the number of LED toggles in one blink episode.
	BlinkToggleLimit uint32 = 6
	// BlinkPeriod is the fixed timer period in blink mode.
	BlinkPeriod = 500 * time.Millisecond

	// MaxDelayMs is the initial and wrap-around timer period in period mode.
	MaxDelayMs uint32 = 2000
	// MinDelayMs is the shortest timer period in period mode.
	MinDelayMs uint32 = 500
	// DelayStepMs is subtracted from the period on each click.
	DelayStepMs uint32 = 500
)

// EventType names something the core observed.
type EventType string

const (
	EventDoubleClick   EventType = "DOUBLE_CLICK"
	EventBlinkEnd      EventType = "BLINK_END"
	EventPeriodChanged EventType = "PERIOD_CHANGED"
	EventClickExpired  EventType = "CLICK_EXPIRED"
)

// Event is emitted by the core for logging and status.
type Event struct {
	Tick    uint32
	Type    EventType
	DelayMs uint32 // period mode only
}

// Actions are the outputs a handler must apply after a core step.
type Actions struct {
	ToggleLED bool
	Reprogram bool
	Period    time.Duration // valid when Reprogram is set
	Events    []Event
}

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	Clicks        int
	Ticks         int
	DoubleClicks  int
	BlinkEnds     int
	PeriodChanges int
	ClickExpiries int
}

// State is a value snapshot of the core.
type State struct {
	Mode          Mode
	Tick          uint32
	Clicks        uint32
	LastClickTick uint32
	Blinking      bool
	BlinkToggles  uint32
	DelayMs       uint32
	Counts        EventCounts
}
