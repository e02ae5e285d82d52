// Package output writes generated words.
package output

import (
	"bufio"
	"io"
	"unicode/utf8"

	"crosswarped.com/maskgen/pkg/primitives"
)

// Delimiter separates the written words.
type Delimiter int

const (
	Newline Delimiter = iota
	NUL
	None
)

func (d Delimiter) bytes() []byte {
	switch d {
	case NUL:
		return []byte{0}
	case None:
		return nil
	default:
		return []byte{'\n'}
	}
}

// Writer encodes words and buffers them before they reach the underlying
// writer. Call Flush once done.
type Writer struct {
	w     *bufio.Writer
	mode  primitives.SymbolMode
	delim []byte
	buf   []byte
}

// NewWriter returns a Writer encoding words for mode.
func NewWriter(w io.Writer, mode primitives.SymbolMode, delim Delimiter) *Writer {
	return &Writer{
		w:     bufio.NewWriterSize(w, 1<<16),
		mode:  mode,
		delim: delim.bytes(),
	}
}

// Encode appends the encoding of word to dst.
func Encode(dst []byte, mode primitives.SymbolMode, word []rune) []byte {
	if mode == primitives.ModeBytes {
		for _, r := range word {
			dst = append(dst, byte(r))
		}
		return dst
	}
	for _, r := range word {
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// WriteWord writes word followed by the delimiter.
func (w *Writer) WriteWord(word []rune) error {
	w.buf = Encode(w.buf[:0], w.mode, word)
	w.buf = append(w.buf, w.delim...)
	_, err := w.w.Write(w.buf)
	return err
}

// Flush writes the buffered words to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
