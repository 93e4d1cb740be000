//go:build linux

package gpio

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/warthog618/go-gpiocdev"
)

const consumer = "button-blinker"

// RealButton reports edges on a GPIO line through the kernel event interface.
type RealButton struct {
	line    *gpiocdev.Line
	pending atomic.Bool
}

// NewRealButton requests pin on chip as a pulled-up input and calls onEdge
// for every edge in the given direction. onEdge runs on the line's event
// goroutine.
func NewRealButton(chip string, pin int, edge Edge, onEdge func()) (*RealButton, error) {
	edgeOpt := gpiocdev.WithFallingEdge
	if edge == EdgeRising {
		edgeOpt = gpiocdev.WithRisingEdge
	}

	b := &RealButton{}
	handler := func(evt gpiocdev.LineEvent) {
		if b.pending.Swap(true) {
			log.Printf("gpio: edge seq %d arrived before previous edge was cleared", evt.Seqno)
		}
		onEdge()
	}

	line, err := gpiocdev.RequestLine(chip, pin,
		gpiocdev.WithConsumer(consumer),
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		edgeOpt,
		gpiocdev.WithDebounce(debouncePeriod),
		gpiocdev.WithEventHandler(handler))
	if err != nil {
		return nil, fmt.Errorf("request button pin %d: %w", pin, err)
	}
	b.line = line
	return b, nil
}

// ClearPending acknowledges the edge being handled.
func (b *RealButton) ClearPending() {
	b.pending.Store(false)
}

// Close reconfigures the line to the boot default (input with pull-down)
// and releases it.
func (b *RealButton) Close() error {
	return closeLine(b.line, "button")
}

// RealLED drives an LED from a GPIO output line.
type RealLED struct {
	line *gpiocdev.Line
	on   bool
}

// NewRealLED requests pin on chip as an output, initially off.
func NewRealLED(chip string, pin int) (*RealLED, error) {
	line, err := gpiocdev.RequestLine(chip, pin,
		gpiocdev.WithConsumer(consumer),
		gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("request LED pin %d: %w", pin, err)
	}
	return &RealLED{line: line}, nil
}

// Toggle flips the LED.
func (l *RealLED) Toggle() error {
	v := 1
	if l.on {
		v = 0
	}
	if err := l.line.SetValue(v); err != nil {
		return fmt.Errorf("set LED pin: %w", err)
	}
	l.on = !l.on
	return nil
}

// On reports whether the LED is lit.
func (l *RealLED) On() bool {
	return l.on
}

// Close turns the LED off, reconfigures the line to the boot default and
// releases it.
func (l *RealLED) Close() error {
	var errs []error
	if l.line != nil && l.on {
		if err := l.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("switch LED off: %w", err))
		}
	}
	if err := closeLine(l.line, "LED"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// closeLine restores the Raspberry Pi boot default (input with pull-down)
// so attached hardware sees a known level during the next boot.
func closeLine(line *gpiocdev.Line, name string) error {
	if line == nil {
		return nil
	}

	var errs []error
	if err := line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
		errs = append(errs, fmt.Errorf("reconfigure %s pin: %w", name, err))
	}
	if err := line.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close %s pin: %w", name, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
