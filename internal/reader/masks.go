package reader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"crosswarped.com/maskgen/pkg/primitives"
)

const (
	separator = ','
	// maxInlineCharsets is the number of charsets, named '1' to '9', a mask
	// line can define before its mask.
	maxInlineCharsets = 9
)

// ParseMask builds a mask from literal symbols and charset references.
func ParseMask(symbols []rune, t *primitives.Table) (primitives.Mask, error) {
	var m primitives.Mask
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		var cs primitives.Charset
		var err error
		switch {
		case c == primitives.Escape && i+1 < len(symbols) && symbols[i+1] == primitives.Escape:
			cs, err = primitives.NewCharset(symbols[i : i+1])
			i++
		case c == primitives.Escape && i+1 < len(symbols):
			cs, err = t.Charset(symbols[i+1])
			i++
		default:
			cs, err = primitives.NewCharset(symbols[i : i+1])
		}
		if err != nil {
			return primitives.Mask{}, fmt.Errorf("mask %q: %w", string(symbols), err)
		}
		if err := m.PushRight(cs); err != nil {
			return primitives.Mask{}, fmt.Errorf("mask %q: %w", string(symbols), err)
		}
	}
	if m.Width() == 0 {
		return primitives.Mask{}, fmt.Errorf("%w: empty mask", primitives.ErrMalformedSpec)
	}
	return m, nil
}

// splitMaskLine splits a mask line on the unescaped separators. "?," is a
// literal separator, other escapes are kept for ParseMask.
func splitMaskLine(line []rune) [][]rune {
	tokens := [][]rune{nil}
	for i := 0; i < len(line); i++ {
		c := line[i]
		last := len(tokens) - 1
		switch {
		case c == primitives.Escape && i+1 < len(line):
			if line[i+1] == separator {
				tokens[last] = append(tokens[last], separator)
			} else {
				tokens[last] = append(tokens[last], c, line[i+1])
			}
			i++
		case c == separator:
			tokens = append(tokens, nil)
		default:
			tokens[last] = append(tokens[last], c)
		}
	}
	return tokens
}

// ParseMaskLine parses a line of a mask file:
//
//	[charset1,][charset2,]...[charset9,]mask
//
// The leading charsets are named '1' to '9' and are only visible to the mask of
// this line, where they shadow the charsets of t.
func ParseMaskLine(line []rune, t *primitives.Table) (primitives.Mask, error) {
	tokens := splitMaskLine(line)
	inline := tokens[:len(tokens)-1]
	if len(inline) > maxInlineCharsets {
		return primitives.Mask{}, fmt.Errorf("%w: %d inline charsets, at most %d", primitives.ErrMalformedSpec, len(inline), maxInlineCharsets)
	}
	if len(inline) == 0 {
		return ParseMask(tokens[0], t)
	}

	local := t.Clone()
	for n, cs := range inline {
		if err := local.Define(rune('1'+n), cs); err != nil {
			return primitives.Mask{}, fmt.Errorf("inline charset %c: %w", '1'+n, err)
		}
	}
	for n := range inline {
		if err := local.Expand(rune('1' + n)); err != nil {
			return primitives.Mask{}, fmt.Errorf("inline charset %c: %w", '1'+n, err)
		}
	}
	return ParseMask(tokens[len(tokens)-1], local)
}

// ReadMasks returns the masks of spec: the lines of the file named spec if it
// is a regular file, otherwise the single mask spec.
func ReadMasks(d Decoder, spec string, t *primitives.Table) (*primitives.MaskList, error) {
	content, isFile, err := readFileOrLiteral(spec)
	if err != nil {
		return nil, err
	}

	var ml primitives.MaskList
	if !isFile {
		symbols, err := d.Decode(content)
		if err != nil {
			return nil, fmt.Errorf("mask %q: %w", spec, err)
		}
		m, err := ParseMask(symbols, t)
		if err != nil {
			return nil, err
		}
		if err := ml.Push(m); err != nil {
			return nil, err
		}
		return &ml, nil
	}

	lineNumber := 0
	err = scanLines(bytes.NewReader(content), func(line []byte) error {
		lineNumber++
		if len(line) == 0 {
			return nil
		}
		symbols, err := d.Decode(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", spec, lineNumber, err)
		}
		m, err := ParseMaskLine(symbols, t)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", spec, lineNumber, err)
		}
		if err := ml.Push(m); err != nil {
			return fmt.Errorf("%s:%d: %w", spec, lineNumber, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ml.Count() == 0 {
		return nil, fmt.Errorf("%w: no mask in %s", primitives.ErrMalformedSpec, spec)
	}
	return &ml, nil
}

// scanLines calls fn with each line of r, without its line ending.
func scanLines(r io.Reader, fn func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := fn(bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})); err != nil {
			return err
		}
	}
	return scanner.Err()
}
