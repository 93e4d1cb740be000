package logic

// TickCounter is the logical clock. It advances once per timer tick and
// wraps at the uint32 limit.
type TickCounter struct {
	n uint32
}

// Now returns the current tick.
func (c *TickCounter) Now() uint32 {
	return c.n
}

// Advance moves the clock forward by one tick.
func (c *TickCounter) Advance() {
	c.n++
}
