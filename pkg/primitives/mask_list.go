package primitives

import "fmt"

// MaskList concatenates the words of several masks into a single space.
//
// SetPosition must be called before First, and First before the subsequent
// calls to Next.
type MaskList struct {
	masks    []Mask
	length   uint64
	maxWidth int

	cur int    // mask holding the current word
	rem uint64 // words left in masks[cur]
}

// Push appends a mask to the list. The list is left unchanged if its length
// would overflow.
func (ml *MaskList) Push(m Mask) error {
	length, overflow := CheckedAdd(ml.length, m.Len())
	if overflow {
		return fmt.Errorf("%w: mask list of %d words plus a mask of width %d", ErrOverflow, ml.length, m.Width())
	}
	ml.masks = append(ml.masks, m)
	ml.length = length
	ml.maxWidth = max(ml.maxWidth, m.Width())
	return nil
}

// Len returns the total number of words.
func (ml *MaskList) Len() uint64 {
	return ml.length
}

// MaxWidth returns the width of the widest mask.
func (ml *MaskList) MaxWidth() int {
	return ml.maxWidth
}

// Count returns the number of masks.
func (ml *MaskList) Count() int {
	return len(ml.masks)
}

// Mask returns the i-th mask.
func (ml *MaskList) Mask(i int) *Mask {
	return &ml.masks[i]
}

// Locate returns the mask holding word o modulo Len, and the position of the
// word in this mask.
func (ml *MaskList) Locate(o uint64) (int, uint64) {
	if ml.length == 0 {
		return 0, 0
	}
	if o >= ml.length {
		o %= ml.length
	}
	for i := range ml.masks {
		n := ml.masks[i].Len()
		if o < n {
			return i, o
		}
		o -= n
	}
	panic("unreachable: offset past the sum of the mask lengths")
}

// SetPosition moves the list to word o modulo Len.
func (ml *MaskList) SetPosition(o uint64) {
	if ml.length == 0 {
		return
	}
	for i := range ml.masks {
		ml.masks[i].SetPosition(0)
	}
	i, offset := ml.Locate(o)
	ml.cur = i
	ml.rem = ml.masks[i].Len() - offset
	ml.masks[i].SetPosition(offset)
}

func (ml *MaskList) isLast() bool {
	return ml.rem == 0 && ml.cur == len(ml.masks)-1
}

// First writes the word at the current position into w, which must hold at
// least MaxWidth symbols. It returns the width of the word and true if it is
// the last word of the list.
func (ml *MaskList) First(w []rune) (int, bool) {
	if ml.length == 0 {
		return 0, true
	}
	m := &ml.masks[ml.cur]
	m.Current(w)
	ml.rem--
	return m.Width(), ml.isLast()
}

// Next moves to the next word and updates w, which must hold the previous word.
// It returns the width of the word and true if it is the last word of the list.
//
// Moving to another mask always rewrites the whole word. After the last word,
// the list wraps to its first word.
func (ml *MaskList) Next(w []rune) (int, bool) {
	if ml.length == 0 {
		return 0, true
	}
	if ml.rem == 0 {
		for {
			ml.cur++
			if ml.cur == len(ml.masks) {
				ml.cur = 0
			}
			if ml.masks[ml.cur].Len() != 0 {
				break
			}
		}
		m := &ml.masks[ml.cur]
		m.SetPosition(0)
		m.Current(w)
		ml.rem = m.Len() - 1
		return m.Width(), ml.isLast()
	}
	m := &ml.masks[ml.cur]
	m.Next(w)
	ml.rem--
	return m.Width(), ml.isLast()
}
