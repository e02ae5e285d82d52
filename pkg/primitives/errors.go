package primitives

import "errors"

var (
	// ErrOverflow is returned when a word count does not fit in 64 bits.
	ErrOverflow = errors.New("word count overflows a 64 bits integer")
	// ErrUndefinedCharset is returned when a mask or a charset references an unknown charset name.
	ErrUndefinedCharset = errors.New("undefined charset")
	// ErrSelfReferenceExhausted is returned when a charset references itself more times than it was defined.
	ErrSelfReferenceExhausted = errors.New("charset self reference exhausted")
	// ErrEmptyCharset is returned when a charset has no symbol.
	ErrEmptyCharset = errors.New("empty charset")
	// ErrMalformedSpec is returned for structurally invalid masks or bruteforce descriptions.
	ErrMalformedSpec = errors.New("malformed description")
	// ErrRange is returned when a word range or a job is outside of the generated space.
	ErrRange = errors.New("invalid word range")
)
