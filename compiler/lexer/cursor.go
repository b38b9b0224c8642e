package lexer

// Cursor is the character-level scanning state over source text. It tracks the
// 1-based line and column of the next unconsumed character; a newline resets
// the column to 1 and increments the line.
type Cursor struct {
	source []rune
	pos    int
	line   int
	column int
}

// NewCursor creates a Cursor positioned at the start of the source
func NewCursor(source string) *Cursor {
	return &Cursor{
		source: []rune(source),
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Advance consumes and returns the current character. Advancing a fully
// exhausted cursor is a violated internal invariant and panics; callers must
// gate on IsPastEnd.
func (c *Cursor) Advance() rune {
	if c.IsPastEnd() {
		panic("lexer: cursor advanced past end of source")
	}
	r := c.source[c.pos]
	c.pos++
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r
}

// Match consumes the next character only if it equals expected. The cursor is
// left unchanged on a mismatch.
func (c *Cursor) Match(expected rune) bool {
	if c.IsPastEnd() || c.source[c.pos] != expected {
		return false
	}
	c.Advance()
	return true
}

// Peek returns the next character without consuming it, or NUL when the
// source is exhausted.
func (c *Cursor) Peek() rune {
	if c.IsPastEnd() {
		return 0
	}
	return c.source[c.pos]
}

// IsAtEnd reports whether the cursor sits on the final character, i.e. exactly
// one character remains to be consumed.
func (c *Cursor) IsAtEnd() bool {
	return c.pos == len(c.source)-1
}

// IsPastEnd reports whether every character has been consumed.
func (c *Cursor) IsPastEnd() bool {
	return c.pos >= len(c.source)
}

// Line returns the 1-based line of the next unconsumed character
func (c *Cursor) Line() int {
	return c.line
}

// Column returns the 1-based column of the next unconsumed character
func (c *Cursor) Column() int {
	return c.column
}
