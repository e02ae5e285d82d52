// Package bruteforce enumerates the masks of a given width built from
// constrained charsets.
//
// Enumeration runs in two stages. The first stage walks the vectors of
// occurrence counts, one count per constraint, whose sum is the width. The
// second stage walks every arrangement of the charsets of one vector into the
// positions of the word. Both stages keep their state between calls so each
// call to Next does only the work needed to reach the next arrangement.
package bruteforce

import (
	"fmt"

	"crosswarped.com/maskgen/pkg/primitives"
)

// frame is one depth of the arrangement search.
type frame struct {
	next   int // next constraint to try at this depth
	chosen int // constraint placed at this depth, -1 if none
}

// Enumerator lazily produces the masks described by a primitives.BruteforceSpec.
type Enumerator struct {
	width       int
	constraints []primitives.Constraint
	err         error

	// Counts vector.
	counts  []int
	current int // sum of counts
	done    bool

	// Arrangements of the last valid counts vector.
	remaining   []int
	frames      []frame
	arrangement []int // constraint index per position
	arranging   bool
}

// New returns an enumerator for spec. Structural errors are reported by Err,
// in which case the enumerator produces nothing.
func New(spec primitives.BruteforceSpec) *Enumerator {
	e := &Enumerator{width: spec.Width}
	if err := spec.Validate(); err != nil {
		e.err = err
		e.done = true
		return e
	}

	e.constraints = make([]primitives.Constraint, len(spec.Constraints))
	for i, c := range spec.Constraints {
		c.Max = min(c.Max, spec.Width)
		c.Charset.SetPosition(0)
		e.constraints[i] = c
	}
	e.counts = make([]int, len(e.constraints))
	e.remaining = make([]int, len(e.constraints))
	e.frames = make([]frame, 0, spec.Width)
	e.arrangement = make([]int, spec.Width)
	e.Reset()
	return e
}

// Reset restarts the enumeration from the first mask. Errors are not cleared:
// the same description always fails the same way.
func (e *Enumerator) Reset() {
	if e.constraints == nil {
		return
	}
	e.current = 0
	for i, c := range e.constraints {
		e.counts[i] = c.Min
		e.current += c.Min
	}
	e.done = false
	e.arranging = false
	e.frames = e.frames[:0]
}

// Healthy returns false if the description was invalid or if a mask was too
// large to be represented.
func (e *Enumerator) Healthy() bool {
	return e.err == nil
}

// Err returns the error that stopped the enumeration, if any.
func (e *Enumerator) Err() error {
	return e.err
}

// Width returns the width of the produced masks.
func (e *Enumerator) Width() int {
	return e.width
}

// nextCounts moves to the next counts vector whose sum is the width and copies
// it into e.remaining. It returns false once every vector was visited.
func (e *Enumerator) nextCounts() bool {
	for !e.done {
		if e.current < e.width {
			// Only the first count can still make up the difference for the
			// other counts as they are.
			diff := min(e.width-e.current, e.constraints[0].Max-e.counts[0])
			e.counts[0] += diff
			e.current += diff
		}

		valid := e.current == e.width
		if valid {
			copy(e.remaining, e.counts)
		}

		carry := true
		for i := 0; i < len(e.counts) && carry; i++ {
			e.counts[i]++
			e.current++
			if e.counts[i] > e.constraints[i].Max || e.current > e.width {
				e.current -= e.counts[i]
				e.counts[i] = e.constraints[i].Min
				e.current += e.counts[i]
			} else {
				carry = false
			}
		}
		if carry {
			e.done = true
		}

		if valid {
			return true
		}
	}
	return false
}

// nextArrangement resumes the search over the arrangements of e.remaining and
// stops at the next complete one. It returns false once the search is over.
func (e *Enumerator) nextArrangement() bool {
	for len(e.frames) > 0 {
		depth := len(e.frames) - 1
		f := &e.frames[depth]
		if f.chosen >= 0 {
			e.remaining[f.chosen]++
			f.chosen = -1
		}

		i := f.next
		for i < len(e.remaining) && e.remaining[i] == 0 {
			i++
		}
		if i == len(e.remaining) {
			e.frames = e.frames[:depth]
			continue
		}

		f.next = i + 1
		f.chosen = i
		e.remaining[i]--
		e.arrangement[depth] = i
		if depth+1 == e.width {
			return true
		}
		e.frames = append(e.frames, frame{chosen: -1})
	}
	return false
}

// advance moves to the next arrangement, across counts vectors.
func (e *Enumerator) advance() bool {
	if e.err != nil {
		return false
	}
	for {
		if !e.arranging {
			if !e.nextCounts() {
				return false
			}
			e.arranging = true
			e.frames = append(e.frames[:0], frame{chosen: -1})
		}
		if e.nextArrangement() {
			return true
		}
		e.arranging = false
	}
}

// Arrangement returns the constraint index used at each position of the last
// produced mask. The returned slice is overwritten by the next call to Next.
func (e *Enumerator) Arrangement() []int {
	return e.arrangement
}

// Next produces the next arrangement. It returns false when the enumeration is
// over or stopped on error.
func (e *Enumerator) Next() bool {
	return e.advance()
}

// NextMask writes the next mask into m.
func (e *Enumerator) NextMask(m *primitives.Mask) bool {
	if !e.advance() {
		return false
	}
	m.Reset()
	for _, ci := range e.arrangement {
		if err := m.PushRight(e.constraints[ci].Charset); err != nil {
			e.err = err
			return false
		}
	}
	return true
}

// NextSizeWidth returns the number of words and the width of the next mask,
// without building it.
func (e *Enumerator) NextSizeWidth() (uint64, int, bool) {
	if !e.advance() {
		return 0, 0, false
	}
	size := uint64(1)
	for _, ci := range e.arrangement {
		var overflow bool
		size, overflow = primitives.CheckedMul(size, e.constraints[ci].Charset.Len())
		if overflow {
			e.err = fmt.Errorf("%w: mask of width %d from %d constraints", primitives.ErrOverflow, e.width, len(e.constraints))
			return 0, 0, false
		}
	}
	return size, e.width, true
}
