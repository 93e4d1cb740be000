// Package firmware implements the button-edge and timer-tick handlers.
//
// Each handler enters the store's critical section once, runs one core step,
// applies the resulting outputs to the borrowed peripherals and clears its
// source's pending flag as the last action. Status publication and logging
// happen after the critical section is left.
package firmware

import (
	"fmt"
	"log"

	"github.com/sweeney/button-blinker/internal/logic"
	"github.com/sweeney/button-blinker/internal/shared"
	"github.com/sweeney/button-blinker/internal/status"
)

// Firmware dispatches hardware events into the shared store.
type Firmware struct {
	store   *shared.Store
	tracker *status.Tracker

	// Fatal is called when a peripheral fails inside a handler. The system
	// cannot continue, so the default exits the process.
	Fatal func(err error)
}

// New creates handlers for store. tracker may be nil.
func New(store *shared.Store, tracker *status.Tracker) *Firmware {
	return &Firmware{
		store:   store,
		tracker: tracker,
		Fatal: func(err error) {
			log.Fatalf("fatal: %v", err)
		},
	}
}

// observation is what a handler carries out of the critical section.
type observation struct {
	state  logic.State
	ledOn  bool
	events []logic.Event
	err    error
}

// ButtonEdge handles one qualifying button edge.
func (f *Firmware) ButtonEdge() []logic.Event {
	var obs observation
	f.store.Free(func(cs *shared.Section) {
		button := cs.Button()
		if button == nil {
			return
		}
		core := cs.Core()

		act := core.ButtonEdge()
		if act.Reprogram {
			if err := cs.Timer().Start(act.Period); err != nil {
				obs.err = fmt.Errorf("reprogram timer to %v: %w", act.Period, err)
			}
		}

		obs.state = core.State()
		obs.ledOn = cs.LED().On()
		obs.events = act.Events
		button.ClearPending()
	})
	return f.finish(obs)
}

// TimerTick handles one timer period.
func (f *Firmware) TimerTick() []logic.Event {
	var obs observation
	f.store.Free(func(cs *shared.Section) {
		tm := cs.Timer()
		if tm == nil {
			return
		}
		core := cs.Core()
		led := cs.LED()

		act := core.TimerTick()
		if act.ToggleLED {
			if err := led.Toggle(); err != nil {
				obs.err = fmt.Errorf("toggle LED: %w", err)
			}
		}

		obs.state = core.State()
		obs.ledOn = led.On()
		obs.events = act.Events
		tm.ClearPending()
	})
	return f.finish(obs)
}

// State returns the core state and LED level, read inside the critical section.
func (f *Firmware) State() (logic.State, bool) {
	var (
		st    logic.State
		ledOn bool
	)
	f.store.Free(func(cs *shared.Section) {
		st = cs.Core().State()
		if led := cs.LED(); led != nil {
			ledOn = led.On()
		}
	})
	return st, ledOn
}

func (f *Firmware) finish(obs observation) []logic.Event {
	if obs.err != nil {
		f.Fatal(obs.err)
		return nil
	}
	if obs.state.Mode == "" {
		// Ran before handoff.
		return nil
	}

	for _, e := range obs.events {
		if e.Type == logic.EventPeriodChanged {
			log.Printf("event: %s (tick=%d delay=%dms)", e.Type, e.Tick, e.DelayMs)
			continue
		}
		log.Printf("event: %s (tick=%d)", e.Type, e.Tick)
	}
	if f.tracker != nil {
		f.tracker.Update(obs.state, obs.ledOn, obs.events)
	}
	return obs.events
}
