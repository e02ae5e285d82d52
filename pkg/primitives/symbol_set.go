package primitives

// denseSpan is the widest range of symbols tracked by a symbolSet. Wider
// ranges fall back to a map.
const denseSpan = 1 << 16

// symbolSet efficiently represents a set of symbols within [min, max].
type symbolSet struct {
	present []bool
	min     rune
}

func newSymbolSet(min, max rune) *symbolSet {
	return &symbolSet{
		present: make([]bool, max-min+1),
		min:     min,
	}
}

// add adds r to the set and reports whether it was missing. r must be within
// the range of the set.
func (s *symbolSet) add(r rune) bool {
	if s.present[r-s.min] {
		return false
	}
	s.present[r-s.min] = true
	return true
}

func symbolRange(s []rune) (rune, rune) {
	lo, hi := s[0], s[0]
	for _, c := range s[1:] {
		lo = min(lo, c)
		hi = max(hi, c)
	}
	return lo, hi
}

// dedup removes the repeated symbols of s in place, keeping the first occurrence
// of each.
func dedup(s []rune) []rune {
	if len(s) == 0 {
		return s
	}
	out := s[:0]
	if lo, hi := symbolRange(s); int64(hi)-int64(lo) < denseSpan {
		seen := newSymbolSet(lo, hi)
		for _, c := range s {
			if seen.add(c) {
				out = append(out, c)
			}
		}
		return out[:len(out):len(out)]
	}

	seen := make(map[rune]struct{}, len(s))
	for _, c := range s {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out[:len(out):len(out)]
}
