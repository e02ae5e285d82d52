package primitives

import "fmt"

// Constraint bounds the number of positions of a word drawn from a charset.
type Constraint struct {
	Charset Charset
	Min     int
	Max     int
}

func (c Constraint) String() string {
	return fmt.Sprintf("%d..%d of [%s]", c.Min, c.Max, c.Charset.String())
}

// BruteforceSpec describes all the masks of a given width whose slots satisfy
// every constraint.
type BruteforceSpec struct {
	Width       int
	Constraints []Constraint
}

// Validate checks the structure of the description.
func (s BruteforceSpec) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrMalformedSpec, s.Width)
	}
	if len(s.Constraints) == 0 {
		return fmt.Errorf("%w: no charset constraint", ErrMalformedSpec)
	}
	for i, c := range s.Constraints {
		if c.Charset.Len() == 0 {
			return fmt.Errorf("%w: constraint #%d: %w", ErrMalformedSpec, i+1, ErrEmptyCharset)
		}
		if c.Min < 0 || c.Min > c.Max {
			return fmt.Errorf("%w: constraint #%d: min %d max %d", ErrMalformedSpec, i+1, c.Min, c.Max)
		}
	}
	return nil
}
