package maskgen

import (
	"iter"

	"crosswarped.com/maskgen/internal/output"
	"crosswarped.com/maskgen/pkg/primitives"
)

// Collect returns up to limit words of seq, encoded for mode. It reports
// whether seq had more words.
func Collect(seq iter.Seq[[]rune], mode primitives.SymbolMode, limit int) ([]string, bool) {
	var words []string
	var buf []byte
	truncated := false
	for w := range seq {
		if len(words) == limit {
			truncated = true
			break
		}
		buf = output.Encode(buf[:0], mode, w)
		words = append(words, string(buf))
	}
	return words, truncated
}
