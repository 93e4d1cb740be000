package status

import "github.com/sweeney/button-blinker/internal/logic"

// ringBuffer is a fixed-capacity FIFO of recent events that drops the oldest
// entry when full.
// Not safe for concurrent use; caller must synchronize.
type ringBuffer struct {
	buf      []logic.Event
	capacity int
	head     int // next write position
	count    int
	dropped  int
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{
		buf:      make([]logic.Event, capacity),
		capacity: capacity,
	}
}

func (r *ringBuffer) push(e logic.Event) {
	r.buf[r.head] = e
	r.head = (r.head + 1) % r.capacity
	if r.count == r.capacity {
		// Overwrote the oldest
		r.dropped++
		return
	}
	r.count++
}

// items returns the buffered events, oldest first, without draining them.
func (r *ringBuffer) items() []logic.Event {
	if r.count == 0 {
		return nil
	}

	result := make([]logic.Event, r.count)
	// Oldest item is at (head - count) mod capacity
	start := (r.head - r.count + r.capacity) % r.capacity
	for i := 0; i < r.count; i++ {
		result[i] = r.buf[(start+i)%r.capacity]
	}
	return result
}

func (r *ringBuffer) len() int {
	return r.count
}
