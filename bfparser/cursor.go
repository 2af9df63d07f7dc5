package bfparser

// cursor walks source bytes one at a time. Only instruction symbols are ever
// consumed, so the byte offset alone locates every failure.
type cursor struct {
	src []byte
	pos int // current byte offset
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src}
}

func (c *cursor) position() Position {
	return Position{Offset: c.pos}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.src)
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) advance() byte {
	ch := c.src[c.pos]
	c.pos++
	return ch
}

// rest returns the unconsumed input.
func (c *cursor) rest() string {
	return string(c.src[c.pos:])
}
