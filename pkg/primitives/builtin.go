package primitives

// SymbolMode tells how symbols are read from and written to text.
type SymbolMode int

const (
	// ModeBytes uses 8-bit symbols: each byte of the input is a symbol.
	ModeBytes SymbolMode = iota
	// ModeUnicode uses Unicode code points read from UTF-8.
	ModeUnicode
)

func (m SymbolMode) String() string {
	if m == ModeUnicode {
		return "unicode"
	}
	return "bytes"
}

var builtinCharsets = []struct {
	name    rune
	symbols string
	final   bool
}{
	{'l', "abcdefghijklmnopqrstuvwxyz", true},
	{'u', "ABCDEFGHIJKLMNOPQRSTUVWXYZ", true},
	{'d', "0123456789", true},
	{'s', " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", true},
	{'h', "0123456789abcdef", true},
	{'H', "0123456789ABCDEF", true},
	{'n', "\n", true},
	{'r', "\r", true},
	{'a', "?l?u?d?s", false},
}

// NewDefaultTable returns a table holding the built-in charsets, all expanded:
//
//	?l  abcdefghijklmnopqrstuvwxyz
//	?u  ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	?d  0123456789
//	?s  the printable ASCII symbols and the space
//	?a  ?l?u?d?s
//	?h  0123456789abcdef
//	?H  0123456789ABCDEF
//	?n  new line
//	?r  carriage return
//	?b  every byte from 0x00 to 0xff, only in ModeBytes
func NewDefaultTable(mode SymbolMode) *Table {
	t := NewTable()
	for _, b := range builtinCharsets {
		t.layers[b.name] = []Layer{{Symbols: []rune(b.symbols), Final: b.final}}
	}
	if mode == ModeBytes {
		all := make([]rune, 256)
		for i := range all {
			all[i] = rune(i)
		}
		t.layers['b'] = []Layer{{Symbols: all, Final: true}}
	}
	for _, name := range t.Names() {
		if err := t.Expand(name); err != nil {
			panic("primitives: invalid built-in charset: " + err.Error())
		}
	}
	return t
}
