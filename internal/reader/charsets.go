package reader

import (
	"fmt"
	"os"

	"crosswarped.com/maskgen/pkg/primitives"
)

// readFileOrLiteral returns the content of the file named spec if it is a
// regular file, and spec itself otherwise.
func readFileOrLiteral(spec string) ([]byte, bool, error) {
	st, err := os.Stat(spec)
	if err != nil || !st.Mode().IsRegular() {
		return []byte(spec), false, nil
	}
	b, err := os.ReadFile(spec)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", spec, err)
	}
	return b, true, nil
}

// ReadCharset returns the symbols of a charset argument: either the content
// of the file named spec, or spec itself.
func ReadCharset(d Decoder, spec string) ([]rune, error) {
	b, _, err := readFileOrLiteral(spec)
	if err != nil {
		return nil, err
	}
	symbols, err := d.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", spec, err)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("charset %q: %w", spec, primitives.ErrEmptyCharset)
	}
	return symbols, nil
}

// SplitCharsetArg splits a named charset definition "K:def" where K is a
// single symbol.
func SplitCharsetArg(d Decoder, arg string) (rune, string, error) {
	name, rest, err := d.FirstSymbol(arg)
	if err != nil {
		return 0, "", fmt.Errorf("charset definition %q: %w", arg, err)
	}
	if len(rest) < 2 || rest[0] != ':' {
		return 0, "", fmt.Errorf("%w: charset definition %q, want K:charset", primitives.ErrMalformedSpec, arg)
	}
	return name, rest[1:], nil
}

// ParseCharsetArg parses a named charset definition "K:def" where def is
// handled by ReadCharset.
func ParseCharsetArg(d Decoder, arg string) (rune, []rune, error) {
	name, def, err := SplitCharsetArg(d, arg)
	if err != nil {
		return 0, nil, err
	}
	symbols, err := ReadCharset(d, def)
	if err != nil {
		return 0, nil, err
	}
	return name, symbols, nil
}

// AddCharset pushes a new layer for name and expands it.
func AddCharset(t *primitives.Table, name rune, symbols []rune) error {
	if err := t.Define(name, symbols); err != nil {
		return err
	}
	return t.Expand(name)
}
