package primitives

import (
	"fmt"
	"maps"
	"slices"
)

const (
	// Escape introduces a charset reference. Two escapes make a literal one.
	Escape = '?'
	// AnonymousName is the name reserved for charsets without a name.
	AnonymousName = rune(0)
)

// Layer is one definition of a named charset.
type Layer struct {
	Symbols []rune
	// Final layers hold plain symbols and are never expanded again.
	Final bool
}

// Table maps charset names to their successive definitions.
//
// The most recent layer of a name shadows the previous ones, which stay
// reachable from the newer layers through self references: in a layer of 'l',
// '?l' refers to the previous layer of 'l'.
type Table struct {
	layers map[rune][]Layer
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{layers: make(map[rune][]Layer)}
}

func (t *Table) push(name rune, symbols []rune, final bool) error {
	if name == AnonymousName {
		return fmt.Errorf("%w: the charset name %q is reserved", ErrMalformedSpec, name)
	}
	if len(symbols) == 0 {
		return fmt.Errorf("%w: %c", ErrEmptyCharset, name)
	}
	t.layers[name] = append(t.layers[name], Layer{Symbols: slices.Clone(symbols), Final: final})
	return nil
}

// Define adds a new layer to the charset name. The layer may contain charset
// references and is expanded by Expand.
func (t *Table) Define(name rune, symbols []rune) error {
	return t.push(name, symbols, false)
}

// DefineFinal adds a new layer of plain symbols to the charset name.
func (t *Table) DefineFinal(name rune, symbols []rune) error {
	return t.push(name, symbols, true)
}

// Layers returns the number of layers defined for name.
func (t *Table) Layers(name rune) int {
	return len(t.layers[name])
}

// Lookup returns the most recent layer of name.
func (t *Table) Lookup(name rune) (Layer, bool) {
	ls := t.layers[name]
	if len(ls) == 0 {
		return Layer{}, false
	}
	return ls[len(ls)-1], true
}

// Names returns the defined charset names, sorted.
func (t *Table) Names() []rune {
	return slices.Sorted(maps.Keys(t.layers))
}

// Clone returns a copy of the table. Layers can be added to the copy without
// altering t.
func (t *Table) Clone() *Table {
	c := &Table{layers: make(map[rune][]Layer, len(t.layers))}
	for name, ls := range t.layers {
		c.layers[name] = slices.Clone(ls)
	}
	return c
}

// Expand replaces the charset references of the most recent layer of name by
// their content, removes the duplicated symbols and marks the layer final.
//
// Nothing is modified on error.
func (t *Table) Expand(name rune) error {
	ls := t.layers[name]
	if len(ls) == 0 {
		return fmt.Errorf("%w: %c%c", ErrUndefinedCharset, Escape, name)
	}
	top := &ls[len(ls)-1]
	if top.Final {
		return nil
	}
	symbols, err := t.expand(top.Symbols, []rune{name})
	if err != nil {
		return fmt.Errorf("expand charset %c%c: %w", Escape, name, err)
	}
	*top = Layer{Symbols: symbols, Final: true}
	return nil
}

// ExpandSymbols expands an anonymous charset definition against the table.
// References resolve to the most recent layer of each name.
func (t *Table) ExpandSymbols(symbols []rune) ([]rune, error) {
	return t.expand(symbols, nil)
}

// Charset expands the most recent layer of name and returns it as a Charset
// sharing the symbols held by the table.
func (t *Table) Charset(name rune) (Charset, error) {
	if err := t.Expand(name); err != nil {
		return Charset{}, err
	}
	ls := t.layers[name]
	return Charset{set: ls[len(ls)-1].Symbols}, nil
}

// expandFrame is a range of symbols left to scan, with the names that were
// expanded to reach it.
type expandFrame struct {
	symbols []rune
	next    int
	history []rune
}

func (t *Table) expand(symbols []rune, history []rune) ([]rune, error) {
	out := make([]rune, 0, len(symbols))
	stack := []expandFrame{{symbols: symbols, history: history}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.symbols) {
			stack = stack[:len(stack)-1]
			continue
		}

		c := f.symbols[f.next]
		if c != Escape || f.next+1 == len(f.symbols) {
			out = append(out, c)
			f.next++
			continue
		}

		key := f.symbols[f.next+1]
		f.next += 2
		if key == Escape {
			out = append(out, Escape)
			continue
		}

		ls := t.layers[key]
		if len(ls) == 0 {
			return nil, fmt.Errorf("%w: %c%c", ErrUndefinedCharset, Escape, key)
		}
		used := countRune(f.history, key)
		if used >= len(ls) {
			return nil, fmt.Errorf("%w: %c%c has %d definitions", ErrSelfReferenceExhausted, Escape, key, len(ls))
		}

		l := ls[len(ls)-1-used]
		if l.Final {
			out = append(out, l.Symbols...)
			continue
		}
		h := append(slices.Clip(f.history), key)
		stack = append(stack, expandFrame{symbols: l.Symbols, history: h})
	}

	out = dedup(out)
	if len(out) == 0 {
		return nil, ErrEmptyCharset
	}
	return out, nil
}

func countRune(s []rune, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
