// Package reader turns the textual charset, mask and bruteforce descriptions
// into primitives.
package reader

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"crosswarped.com/maskgen/pkg/primitives"
)

// Decoder converts raw text into symbols.
type Decoder struct {
	Mode primitives.SymbolMode
	// NFC normalizes UTF-8 text before decoding it, so that composed and
	// decomposed forms of a character give the same symbol.
	NFC bool
}

// Decode returns the symbols of b.
func (d Decoder) Decode(b []byte) ([]rune, error) {
	if d.Mode == primitives.ModeBytes {
		out := make([]rune, len(b))
		for i, c := range b {
			out[i] = rune(c)
		}
		return out, nil
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w: invalid UTF-8 text %q", primitives.ErrMalformedSpec, b)
	}
	if d.NFC {
		b = norm.NFC.Bytes(b)
	}
	return []rune(string(b)), nil
}

// DecodeString returns the symbols of s.
func (d Decoder) DecodeString(s string) ([]rune, error) {
	return d.Decode([]byte(s))
}

// FirstSymbol splits the first symbol of s from the rest.
func (d Decoder) FirstSymbol(s string) (rune, string, error) {
	if s == "" {
		return 0, "", fmt.Errorf("%w: missing symbol", primitives.ErrMalformedSpec)
	}
	if d.Mode == primitives.ModeBytes {
		return rune(s[0]), s[1:], nil
	}
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n <= 1 {
		return 0, "", fmt.Errorf("%w: invalid UTF-8 text %q", primitives.ErrMalformedSpec, s)
	}
	return r, s[n:], nil
}
