package engine

import "fmt"

// Cursor is the selected catalog index, always in [0, Len())
// Only Advance and Retreat move it
type Cursor struct {
	pos int
	n   int
}

// NewCursor creates a cursor at 0 over n entries
// Panics when n < 1
func NewCursor(n int) *Cursor {
	if n < 1 {
		panic(fmt.Sprintf("engine: cursor over %d entries", n))
	}
	return &Cursor{n: n}
}

// Position returns the selected index
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the wraparound modulus
func (c *Cursor) Len() int {
	return c.n
}

// Advance moves to the next entry, wrapping last to first
func (c *Cursor) Advance() {
	if c.pos == c.n-1 {
		c.pos = 0
		return
	}
	c.pos++
}

// Retreat moves to the previous entry, wrapping first to last
func (c *Cursor) Retreat() {
	if c.pos == 0 {
		c.pos = c.n - 1
		return
	}
	c.pos--
}

// Apply performs the transition requested by sig
// Returns true for Next and Previous, even when a single entry leaves the position unchanged
func (c *Cursor) Apply(sig Signal) bool {
	switch sig {
	case SignalNext:
		c.Advance()
		return true
	case SignalPrevious:
		c.Retreat()
		return true
	}
	return false
}
