package primitives

import "fmt"

// Charset is a cyclic sequence of symbols with a cursor.
//
// The symbols are never written after NewCharset. A copy of a Charset shares
// them and gets its own cursor.
type Charset struct {
	set []rune
	pos int
}

// NewCharset returns a charset holding a copy of symbols, with its cursor on the
// first symbol.
func NewCharset(symbols []rune) (Charset, error) {
	if len(symbols) == 0 {
		return Charset{}, ErrEmptyCharset
	}
	set := make([]rune, len(symbols))
	copy(set, symbols)
	return Charset{set: set}, nil
}

// MustCharset is like NewCharset but panics on an empty input.
func MustCharset(symbols string) Charset {
	c, err := NewCharset([]rune(symbols))
	if err != nil {
		panic(fmt.Sprintf("primitives: MustCharset(%q): %v", symbols, err))
	}
	return c
}

// Len returns the number of symbols.
func (c *Charset) Len() uint64 {
	return uint64(len(c.set))
}

// Symbols returns the symbols of the charset. The returned slice must not be
// modified.
func (c *Charset) Symbols() []rune {
	return c.set
}

// SetPosition moves the cursor to o modulo the length of the charset.
func (c *Charset) SetPosition(o uint64) {
	if n := uint64(len(c.set)); o >= n {
		o %= n
	}
	c.pos = int(o)
}

// Current returns the symbol under the cursor.
func (c *Charset) Current() rune {
	return c.set[c.pos]
}

// Advance moves the cursor to the next symbol and returns true if it wrapped
// back to the first one.
func (c *Charset) Advance() bool {
	c.pos++
	if c.pos == len(c.set) {
		c.pos = 0
		return true
	}
	return false
}

func (c Charset) String() string {
	return string(c.set)
}
