package logic

// ClickDetector recognizes two clicks that land within DoubleClickWindow ticks
// of each other.
type ClickDetector struct {
	count uint32
	// last is the tick of the most recent click; 0 means none recorded.
	last uint32
}

// Click registers a button edge observed at tick now.
// It reports whether the click completed a double click, and whether the
// previous click had gone stale so the count restarted.
func (d *ClickDetector) Click(now uint32) (double, expired bool) {
	if d.last != 0 && now-d.last >= DoubleClickWindow {
		d.count = 0
		expired = true
	}
	d.count++

	if d.count == 2 {
		double = true
		d.count = 0
	}

	d.last = now
	return double, expired
}

// Pending returns the number of clicks waiting for a partner.
func (d *ClickDetector) Pending() uint32 {
	return d.count
}

// LastClick returns the tick of the most recent click, or 0.
func (d *ClickDetector) LastClick() uint32 {
	return d.last
}
