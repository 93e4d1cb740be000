package logic

import (
	"fmt"
	"time"
)

// Core couples the tick counter with the mode-specific click handling.
// It is not safe for concurrent use; callers serialize access.
type Core struct {
	mode   Mode
	clock  TickCounter
	clicks ClickDetector
	blink  BlinkSequencer
	period *PeriodController
	counts EventCounts
}

// NewCore creates a core in the given mode.
func NewCore(mode Mode) (*Core, error) {
	switch mode {
	case ModeBlink, ModePeriod:
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	return &Core{
		mode:   mode,
		period: NewPeriodController(),
	}, nil
}

// Mode returns the mode selected at construction.
func (c *Core) Mode() Mode {
	return c.mode
}

// InitialPeriod returns the period the timer must be started with.
func (c *Core) InitialPeriod() time.Duration {
	if c.mode == ModePeriod {
		return msToDuration(c.period.DelayMs())
	}
	return BlinkPeriod
}

// ButtonEdge processes one qualifying button edge.
// The tick counter is read, never advanced, here.
func (c *Core) ButtonEdge() Actions {
	c.counts.Clicks++
	now := c.clock.Now()

	if c.mode == ModePeriod {
		delay := c.period.Step()
		c.counts.PeriodChanges++
		return Actions{
			Reprogram: true,
			Period:    msToDuration(delay),
			Events:    []Event{{Tick: now, Type: EventPeriodChanged, DelayMs: delay}},
		}
	}

	var act Actions
	double, expired := c.clicks.Click(now)
	if expired {
		c.counts.ClickExpiries++
		act.Events = append(act.Events, Event{Tick: now, Type: EventClickExpired})
	}
	if double {
		c.blink.Arm()
		c.counts.DoubleClicks++
		act.Events = append(act.Events, Event{Tick: now, Type: EventDoubleClick})
	}
	return act
}

// TimerTick processes one timer period. The tick counter advances after the
// blink step so that events carry the tick they happened in.
func (c *Core) TimerTick() Actions {
	c.counts.Ticks++
	now := c.clock.Now()
	defer c.clock.Advance()

	if c.mode == ModePeriod {
		return Actions{ToggleLED: true}
	}

	var act Actions
	toggle, finished := c.blink.Tick()
	act.ToggleLED = toggle
	if finished {
		c.counts.BlinkEnds++
		act.Events = append(act.Events, Event{Tick: now, Type: EventBlinkEnd})
	}
	return act
}

// State returns a snapshot of the core.
func (c *Core) State() State {
	return State{
		Mode:          c.mode,
		Tick:          c.clock.Now(),
		Clicks:        c.clicks.Pending(),
		LastClickTick: c.clicks.LastClick(),
		Blinking:      c.blink.Armed(),
		BlinkToggles:  c.blink.Toggles(),
		DelayMs:       c.period.DelayMs(),
		Counts:        c.counts,
	}
}

func msToDuration(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
