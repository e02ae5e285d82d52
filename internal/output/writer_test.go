package output

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"crosswarped.com/maskgen/pkg/primitives"
)

func TestWriter(t *testing.T) {
	tests := []struct {
		name  string
		mode  primitives.SymbolMode
		delim Delimiter
		words []string
		want  []byte
	}{
		{"newline", primitives.ModeUnicode, Newline, []string{"ab", "cd"}, []byte("ab\ncd\n")},
		{"nul", primitives.ModeUnicode, NUL, []string{"ab", "cd"}, []byte("ab\x00cd\x00")},
		{"none", primitives.ModeUnicode, None, []string{"ab", "cd"}, []byte("abcd")},
		{"utf-8", primitives.ModeUnicode, Newline, []string{"é€"}, []byte("é€\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w := NewWriter(&out, tt.mode, tt.delim)
			for _, word := range tt.words {
				if err := w.WriteWord([]rune(word)); err != nil {
					t.Fatal(err)
				}
			}
			if err := w.Flush(); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, out.Bytes()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriter_Bytes(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, primitives.ModeBytes, Newline)
	if err := w.WriteWord([]rune{0x00, 0xe9, 0xff}); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x00, 0xe9, 0xff, '\n'}, out.Bytes()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriter_Buffers(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, primitives.ModeUnicode, Newline)
	if err := w.WriteWord([]rune("abc")); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q before Flush", out.Bytes())
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "abc\n" {
		t.Errorf("got %q after Flush", out.String())
	}
}
