package primitives

import (
	"fmt"
	"strings"
)

// Mask is a word template: an ordered list of charsets, one per position.
//
// A Mask behaves as a mixed-radix counter whose rightmost slot is the least
// significant digit. SetPosition then Current must be called before the first
// call to Next after any position change.
type Mask struct {
	slots  []Charset
	length uint64
}

// NewMask returns a mask over the given charsets, from left to right.
func NewMask(slots ...Charset) (Mask, error) {
	var m Mask
	for _, s := range slots {
		if err := m.PushRight(s); err != nil {
			return Mask{}, err
		}
	}
	return m, nil
}

func (m *Mask) grow(n uint64) (uint64, error) {
	if len(m.slots) == 0 {
		return n, nil
	}
	length, overflow := CheckedMul(m.length, n)
	if overflow {
		return 0, fmt.Errorf("%w: mask of width %d times a charset of %d symbols", ErrOverflow, len(m.slots), n)
	}
	return length, nil
}

// PushRight adds a slot after the existing ones. The mask is left unchanged
// if its length would overflow.
func (m *Mask) PushRight(c Charset) error {
	length, err := m.grow(c.Len())
	if err != nil {
		return err
	}
	m.slots = append(m.slots, c)
	m.length = length
	return nil
}

// PushLeft adds a slot before the existing ones. The mask is left unchanged
// if its length would overflow.
func (m *Mask) PushLeft(c Charset) error {
	length, err := m.grow(c.Len())
	if err != nil {
		return err
	}
	m.slots = append(m.slots, Charset{})
	copy(m.slots[1:], m.slots)
	m.slots[0] = c
	m.length = length
	return nil
}

// Reset removes all the slots, keeping the allocated capacity.
func (m *Mask) Reset() {
	clear(m.slots)
	m.slots = m.slots[:0]
	m.length = 0
}

// CopyFrom makes m a copy of src. Both masks share their symbols but not their
// cursors.
func (m *Mask) CopyFrom(src *Mask) {
	m.slots = append(m.slots[:0], src.slots...)
	m.length = src.length
}

// Len returns the number of words of the mask, 0 for a mask without slots.
func (m *Mask) Len() uint64 {
	return m.length
}

// Width returns the number of slots.
func (m *Mask) Width() int {
	return len(m.slots)
}

// Slot returns the charset at position i.
func (m *Mask) Slot(i int) *Charset {
	return &m.slots[i]
}

// SetPosition moves the mask to word o modulo Len.
func (m *Mask) SetPosition(o uint64) {
	if m.length == 0 {
		return
	}
	if o >= m.length {
		o %= m.length
	}
	for i := len(m.slots) - 1; i >= 0; i-- {
		n := m.slots[i].Len()
		m.slots[i].SetPosition(o % n)
		o /= n
	}
}

// Current writes the whole current word into w, which must hold at least Width
// symbols.
func (m *Mask) Current(w []rune) {
	for i := range m.slots {
		w[i] = m.slots[i].Current()
	}
}

// Next moves to the next word and updates w, which must hold the previous word.
// Only the positions that changed are written.
//
// It returns true when the mask wrapped back to its first word.
func (m *Mask) Next(w []rune) bool {
	for i := len(m.slots) - 1; i >= 0; i-- {
		carry := m.slots[i].Advance()
		w[i] = m.slots[i].Current()
		if !carry {
			return false
		}
	}
	return true
}

func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteString("Mask{")
	for i, s := range m.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s.Len() == 1 {
			sb.WriteString(s.String())
		} else {
			fmt.Fprintf(&sb, "[%s]", s.String())
		}
	}
	fmt.Fprintf(&sb, "}(%d)", m.length)
	return sb.String()
}
