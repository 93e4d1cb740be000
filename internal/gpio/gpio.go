// Package gpio provides the button input and LED output with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

import (
	"fmt"
	"time"
)

// Button is an edge-triggered input line.
type Button interface {
	// ClearPending acknowledges the edge being handled. Handlers call it as
	// their last action.
	ClearPending()

	// Close releases GPIO resources.
	Close() error
}

// LED is a binary output line.
type LED interface {
	// Toggle flips the output.
	Toggle() error

	// On reports the current output level.
	On() bool

	// Close releases GPIO resources.
	Close() error
}

// Edge selects which button transition is reported.
type Edge string

const (
	EdgeRising  Edge = "rising"
	EdgeFalling Edge = "falling"
)

// ParseEdge validates an edge name.
func ParseEdge(s string) (Edge, error) {
	switch e := Edge(s); e {
	case EdgeRising, EdgeFalling:
		return e, nil
	}
	return "", fmt.Errorf("unknown edge %q", s)
}

// Defaults (BCM numbering)
const (
	DefaultChip      = "gpiochip0"
	DefaultPinButton = 17
	DefaultPinLED    = 27
)

// debouncePeriod filters contact bounce in the kernel before edges reach us.
const debouncePeriod = 5 * time.Millisecond
