package logic

// BlinkSequencer toggles the LED a fixed number of times once armed,
// then disarms itself.
type BlinkSequencer struct {
	armed   bool
	toggles uint32
}

// Arm starts a blink episode. Arming during an episode does not restart it.
func (b *BlinkSequencer) Arm() {
	b.armed = true
}

// Tick advances the sequencer by one timer period. toggle reports whether the
// LED must be flipped; finished reports that this toggle ended the episode.
func (b *BlinkSequencer) Tick() (toggle, finished bool) {
	if !b.armed {
		return false, false
	}

	b.toggles++
	if b.toggles >= BlinkToggleLimit {
		b.armed = false
		b.toggles = 0
		return true, true
	}
	return true, false
}

// Armed reports whether an episode is in progress.
func (b *BlinkSequencer) Armed() bool {
	return b.armed
}

// Toggles returns the toggles performed in the current episode.
func (b *BlinkSequencer) Toggles() uint32 {
	return b.toggles
}
