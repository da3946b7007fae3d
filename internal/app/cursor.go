package app

// cursorTracker turns polled cursor positions into move notifications. The
// first poll only records the position, so a cursor that never moves leaves
// the pointer where the driver started it.
type cursorTracker struct {
	x, y   int
	primed bool
}

// Poll records (x, y) and reports whether it is a move since the last poll.
func (c *cursorTracker) Poll(x, y int) bool {
	if !c.primed {
		c.x, c.y, c.primed = x, y, true
		return false
	}
	if x == c.x && y == c.y {
		return false
	}
	c.x, c.y = x, y
	return true
}
