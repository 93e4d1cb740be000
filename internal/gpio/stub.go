//go:build !linux

package gpio

import "errors"

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// RealButton is not available on non-Linux platforms.
type RealButton struct{}

// NewRealButton returns an error on non-Linux platforms.
func NewRealButton(chip string, pin int, edge Edge, onEdge func()) (*RealButton, error) {
	return nil, errUnsupported
}

// ClearPending is not implemented on non-Linux platforms.
func (b *RealButton) ClearPending() {}

// Close is not implemented on non-Linux platforms.
func (b *RealButton) Close() error {
	return nil
}

// RealLED is not available on non-Linux platforms.
type RealLED struct{}

// NewRealLED returns an error on non-Linux platforms.
func NewRealLED(chip string, pin int) (*RealLED, error) {
	return nil, errUnsupported
}

// Toggle is not implemented on non-Linux platforms.
func (l *RealLED) Toggle() error {
	return errUnsupported
}

// On is not implemented on non-Linux platforms.
func (l *RealLED) On() bool {
	return false
}

// Close is not implemented on non-Linux platforms.
func (l *RealLED) Close() error {
	return nil
}
