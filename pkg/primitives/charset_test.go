package primitives

import (
	"errors"
	"testing"
)

func TestNewCharset_Empty(t *testing.T) {
	if _, err := NewCharset(nil); !errors.Is(err, ErrEmptyCharset) {
		t.Errorf("NewCharset(nil) error = %v, want ErrEmptyCharset", err)
	}
}

func TestNewCharset_CopiesInput(t *testing.T) {
	in := []rune("abc")
	cs, err := NewCharset(in)
	if err != nil {
		t.Fatal(err)
	}
	in[0] = 'z'
	if got := cs.Current(); got != 'a' {
		t.Errorf("Current() = %q after modifying the input, want 'a'", got)
	}
}

func TestCharset_Advance(t *testing.T) {
	cs := MustCharset("abc")

	tests := []struct {
		want      rune
		wantCarry bool
	}{
		{'b', false},
		{'c', false},
		{'a', true},
		{'b', false},
	}
	for i, tt := range tests {
		carry := cs.Advance()
		if carry != tt.wantCarry {
			t.Errorf("step %d: Advance() = %v, want %v", i, carry, tt.wantCarry)
		}
		if got := cs.Current(); got != tt.want {
			t.Errorf("step %d: Current() = %q, want %q", i, got, tt.want)
		}
	}
}

func TestCharset_SetPosition(t *testing.T) {
	cs := MustCharset("0123456789")

	tests := []struct {
		pos  uint64
		want rune
	}{
		{0, '0'},
		{9, '9'},
		{10, '0'},
		{123, '3'},
		{1<<64 - 1, '5'},
	}
	for _, tt := range tests {
		cs.SetPosition(tt.pos)
		if got := cs.Current(); got != tt.want {
			t.Errorf("SetPosition(%d): Current() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestCharset_CopySharesSymbols(t *testing.T) {
	a := MustCharset("xyz")
	b := a
	b.Advance()

	if a.Current() != 'x' || b.Current() != 'y' {
		t.Errorf("cursors are not independent: a=%q b=%q", a.Current(), b.Current())
	}
	if &a.Symbols()[0] != &b.Symbols()[0] {
		t.Error("copies do not share their symbols")
	}
}
