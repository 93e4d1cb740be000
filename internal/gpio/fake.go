package gpio

// FakeButton is a test double that records acknowledgements.
type FakeButton struct {
	// Cleared counts ClearPending calls.
	Cleared int

	// Closed tracks if Close was called
	Closed bool

	// OnClear, if set, is called from ClearPending.
	OnClear func()
}

// NewFakeButton creates a FakeButton.
func NewFakeButton() *FakeButton {
	return &FakeButton{}
}

// ClearPending records the acknowledgement.
func (f *FakeButton) ClearPending() {
	f.Cleared++
	if f.OnClear != nil {
		f.OnClear()
	}
}

// Close marks the button as closed.
func (f *FakeButton) Close() error {
	f.Closed = true
	return nil
}

// FakeLED is a test double that records toggles.
type FakeLED struct {
	// Lit is the current output level.
	Lit bool

	// Toggles counts successful Toggle calls.
	Toggles int

	// ToggleError, if set, will be returned by Toggle()
	ToggleError error

	// Closed tracks if Close was called
	Closed bool

	// OnToggle, if set, is called from Toggle.
	OnToggle func()
}

// NewFakeLED creates a FakeLED, initially off.
func NewFakeLED() *FakeLED {
	return &FakeLED{}
}

// Toggle flips Lit unless ToggleError is set.
func (f *FakeLED) Toggle() error {
	if f.OnToggle != nil {
		f.OnToggle()
	}
	if f.ToggleError != nil {
		return f.ToggleError
	}
	f.Lit = !f.Lit
	f.Toggles++
	return nil
}

// On returns Lit.
func (f *FakeLED) On() bool {
	return f.Lit
}

// Close marks the LED as closed.
func (f *FakeLED) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded state.
func (f *FakeLED) Reset() {
	f.Lit = false
	f.Toggles = 0
	f.ToggleError = nil
	f.Closed = false
}
