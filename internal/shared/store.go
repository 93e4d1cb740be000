// Package shared holds the state that the button and timer handlers share.
// Every cell is reachable only inside Store.Free, which runs its function
// with the store locked. That lock is the critical section both handlers
// and startup code go through.
package shared

import (
	"errors"
	"sync"

	"github.com/sweeney/button-blinker/internal/gpio"
	"github.com/sweeney/button-blinker/internal/logic"
	"github.com/sweeney/button-blinker/internal/timer"
)

var (
	// ErrHandedOff is returned by a second Handoff.
	ErrHandedOff = errors.New("shared: peripherals already handed off")
	// ErrNilPeripheral is returned when Handoff is given a nil peripheral.
	ErrNilPeripheral = errors.New("shared: nil peripheral")
)

type cells struct {
	core   *logic.Core
	button gpio.Button
	led    gpio.LED
	timer  timer.Timer
}

// Store owns the core state and, after Handoff, the peripherals.
type Store struct {
	mu    sync.Mutex
	cells cells
}

// New creates a store around core. Peripherals are absent until Handoff.
func New(core *logic.Core) *Store {
	return &Store{cells: cells{core: core}}
}

// Free runs fn exclusively. The Section passed to fn is only valid until
// fn returns.
func (s *Store) Free(fn func(cs *Section)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := &Section{cells: &s.cells}
	defer cs.close()
	fn(cs)
}

// Handoff transfers ownership of the peripherals into the store. Callers
// must not keep using them afterwards.
func (s *Store) Handoff(button gpio.Button, led gpio.LED, tm timer.Timer) error {
	if button == nil || led == nil || tm == nil {
		return ErrNilPeripheral
	}

	var err error
	s.Free(func(cs *Section) {
		if cs.cells.button != nil {
			err = ErrHandedOff
			return
		}
		cs.cells.button = button
		cs.cells.led = led
		cs.cells.timer = tm
	})
	return err
}

// Section grants access to the shared cells for the duration of one Free call.
type Section struct {
	cells *cells
}

func (cs *Section) close() {
	cs.cells = nil
}

func (cs *Section) borrow() *cells {
	if cs.cells == nil {
		panic("shared: section used outside Store.Free")
	}
	return cs.cells
}

// Core returns the state machine.
func (cs *Section) Core() *logic.Core {
	return cs.borrow().core
}

// Button returns the button, or nil before Handoff.
func (cs *Section) Button() gpio.Button {
	return cs.borrow().button
}

// LED returns the LED, or nil before Handoff.
func (cs *Section) LED() gpio.LED {
	return cs.borrow().led
}

// Timer returns the timer, or nil before Handoff.
func (cs *Section) Timer() timer.Timer {
	return cs.borrow().timer
}
