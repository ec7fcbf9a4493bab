package planar

// cursor walks a fixed vertex list forever, wrapping at the end.
type cursor struct {
	items []Coordinate
	pos   int
}

func newCursor(items []Coordinate) *cursor {
	return &cursor{items: items}
}

// next returns the current vertex and advances. It fails only when the
// list is empty.
func (c *cursor) next() (Coordinate, bool) {
	if len(c.items) == 0 {
		return Coordinate{}, false
	}
	p := c.items[c.pos]
	c.pos = (c.pos + 1) % len(c.items)
	return p, true
}

// peek returns the vertex the following call to next will yield.
func (c *cursor) peek() (Coordinate, bool) {
	if len(c.items) == 0 {
		return Coordinate{}, false
	}
	return c.items[c.pos], true
}

func (c *cursor) len() int { return len(c.items) }
