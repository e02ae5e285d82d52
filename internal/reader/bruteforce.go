package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"crosswarped.com/maskgen/pkg/primitives"
)

// ParseBruteforce reads a bruteforce description:
//
//	width
//	min max charset
//	min max charset
//	...
//
// Charsets are expanded against t. Max values past the width are clamped by
// the enumerator.
func ParseBruteforce(r io.Reader, d Decoder, t *primitives.Table) (primitives.BruteforceSpec, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return primitives.BruteforceSpec{}, err
	}

	var spec primitives.BruteforceSpec
	gotWidth := false
	lineNumber := 0
	err = scanLines(bytes.NewReader(content), func(line []byte) error {
		lineNumber++
		if len(line) == 0 {
			return nil
		}
		if !gotWidth {
			width, _, err := leadingUint(line)
			if err != nil {
				return fmt.Errorf("line %d: width: %w", lineNumber, err)
			}
			spec.Width = width
			gotWidth = true
			return nil
		}

		c, err := parseConstraint(line, d, t)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		spec.Constraints = append(spec.Constraints, c)
		return nil
	})
	if err != nil {
		return primitives.BruteforceSpec{}, err
	}
	if !gotWidth || len(spec.Constraints) == 0 {
		return primitives.BruteforceSpec{}, fmt.Errorf("%w: expected a width and at least one charset", primitives.ErrMalformedSpec)
	}
	if err := spec.Validate(); err != nil {
		return primitives.BruteforceSpec{}, err
	}
	return spec, nil
}

func parseConstraint(line []byte, d Decoder, t *primitives.Table) (primitives.Constraint, error) {
	lo, rest, err := leadingUint(line)
	if err != nil {
		return primitives.Constraint{}, fmt.Errorf("min: %w", err)
	}
	hi, rest, err := leadingUint(rest)
	if err != nil {
		return primitives.Constraint{}, fmt.Errorf("max: %w", err)
	}
	symbols, err := d.Decode(bytes.TrimLeft(rest, " \t"))
	if err != nil {
		return primitives.Constraint{}, err
	}
	if len(symbols) == 0 {
		return primitives.Constraint{}, primitives.ErrEmptyCharset
	}
	expanded, err := t.ExpandSymbols(symbols)
	if err != nil {
		return primitives.Constraint{}, fmt.Errorf("charset %q: %w", string(symbols), err)
	}
	cs, err := primitives.NewCharset(expanded)
	if err != nil {
		return primitives.Constraint{}, err
	}
	return primitives.Constraint{Charset: cs, Min: lo, Max: hi}, nil
}

// leadingUint parses the unsigned integer starting b, after spaces, and
// returns what follows it.
func leadingUint(b []byte) (int, []byte, error) {
	b = bytes.TrimLeft(b, " \t")
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, nil, fmt.Errorf("%w: expected a number in %q", primitives.ErrMalformedSpec, b)
	}
	v, err := strconv.ParseUint(string(b[:n]), 10, 31)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", primitives.ErrMalformedSpec, err)
	}
	return int(v), b[n:], nil
}

// ReadBruteforce parses the bruteforce description in the file at path.
func ReadBruteforce(d Decoder, path string, t *primitives.Table) (primitives.BruteforceSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return primitives.BruteforceSpec{}, err
	}
	defer f.Close()

	spec, err := ParseBruteforce(f, d, t)
	if err != nil {
		return primitives.BruteforceSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}
