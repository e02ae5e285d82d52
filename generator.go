package maskgen

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"crosswarped.com/maskgen/internal/bruteforce"
	"crosswarped.com/maskgen/pkg/primitives"
)

// cancelCheckInterval is the number of words produced between two checks of
// the context within a mask.
const cancelCheckInterval = 4096

// Generator produces a finite sequence of masks. The sequence must be the same
// after each Reset.
type Generator interface {
	// NextMask writes the next mask into m and returns false when the
	// sequence is over.
	NextMask(m *primitives.Mask) bool
	// NextSizeWidth moves to the next mask and returns its number of words
	// and its width, without building it.
	NextSizeWidth() (size uint64, width int, ok bool)
	// Reset restarts the sequence from its first mask.
	Reset()
	// Healthy returns false once the generator stopped on error.
	Healthy() bool
	Err() error
}

// MaskListGenerator replays the masks of a MaskList.
type MaskListGenerator struct {
	ml   *primitives.MaskList
	next int
}

func NewMaskListGenerator(ml *primitives.MaskList) *MaskListGenerator {
	return &MaskListGenerator{ml: ml}
}

func (g *MaskListGenerator) NextMask(m *primitives.Mask) bool {
	if g.next >= g.ml.Count() {
		return false
	}
	m.CopyFrom(g.ml.Mask(g.next))
	g.next++
	return true
}

func (g *MaskListGenerator) NextSizeWidth() (uint64, int, bool) {
	if g.next >= g.ml.Count() {
		return 0, 0, false
	}
	m := g.ml.Mask(g.next)
	g.next++
	return m.Len(), m.Width(), true
}

func (g *MaskListGenerator) Reset()        { g.next = 0 }
func (g *MaskListGenerator) Healthy() bool { return true }
func (g *MaskListGenerator) Err() error    { return nil }

// BruteforceGenerator produces the masks satisfying a bruteforce description.
type BruteforceGenerator struct {
	*bruteforce.Enumerator
}

// NewBruteforceGenerator returns a generator for spec, or the error making spec
// invalid.
func NewBruteforceGenerator(spec primitives.BruteforceSpec) (*BruteforceGenerator, error) {
	e := bruteforce.New(spec)
	if !e.Healthy() {
		return nil, e.Err()
	}
	return &BruteforceGenerator{Enumerator: e}, nil
}

// Total walks the masks of g once and returns their total number of words and
// the width of the widest mask. The generator is reset before returning.
func Total(g Generator) (uint64, int, error) {
	g.Reset()
	defer g.Reset()

	var total uint64
	maxWidth := 0
	for {
		size, width, ok := g.NextSizeWidth()
		if !ok {
			break
		}
		var overflow bool
		total, overflow = primitives.CheckedAdd(total, size)
		if overflow {
			return 0, 0, fmt.Errorf("%w: more than 2^64-1 words", primitives.ErrOverflow)
		}
		maxWidth = max(maxWidth, width)
	}
	if !g.Healthy() {
		return 0, 0, g.Err()
	}
	return total, maxWidth, nil
}

// Words iterates over the words r of the sequence produced by g, where r is
// within the total reported by Total. The yielded slice is overwritten by the
// next iteration.
func Words(ctx context.Context, g Generator, r primitives.Range) iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		if r.Len() == 0 {
			return
		}
		g.Reset()

		var m primitives.Mask
		var w []rune
		pos := uint64(0)
		for pos < r.End && g.NextMask(&m) {
			if ctx.Err() != nil {
				return
			}
			size := m.Len()
			if pos+size <= r.Start {
				pos += size
				continue
			}

			offset := uint64(0)
			if r.Start > pos {
				offset = r.Start - pos
			}
			stop := min(size, r.End-pos)
			w = slices.Grow(w[:0], m.Width())[:m.Width()]
			if !wordsOfMask(ctx, &m, w, offset, stop, yield) {
				return
			}
			pos += size
		}
	}
}

// wordsOfMask yields the words [offset, stop) of m.
func wordsOfMask(ctx context.Context, m *primitives.Mask, w []rune, offset, stop uint64, yield func([]rune) bool) bool {
	m.SetPosition(offset)
	m.Current(w)
	for i := offset; ; {
		if !yield(w) {
			return false
		}
		i++
		if i == stop {
			return true
		}
		if (i-offset)%cancelCheckInterval == 0 && ctx.Err() != nil {
			return false
		}
		m.Next(w)
	}
}

// ListWords iterates over the words r of ml using random access into the list.
// The yielded slice is overwritten by the next iteration.
func ListWords(ctx context.Context, ml *primitives.MaskList, r primitives.Range) iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		if r.Len() == 0 || ml.Len() == 0 || ctx.Err() != nil {
			return
		}
		buf := make([]rune, ml.MaxWidth())
		ml.SetPosition(r.Start)
		width, _ := ml.First(buf)
		for i := r.Start; ; {
			if !yield(buf[:width]) {
				return
			}
			i++
			if i == r.End {
				return
			}
			if (i-r.Start)%cancelCheckInterval == 0 && ctx.Err() != nil {
				return
			}
			width, _ = ml.Next(buf)
		}
	}
}
