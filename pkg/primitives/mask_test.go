package primitives

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustMask(t testing.TB, slots ...string) Mask {
	t.Helper()
	var m Mask
	for _, s := range slots {
		if err := m.PushRight(MustCharset(s)); err != nil {
			t.Fatalf("PushRight(%q): %v", s, err)
		}
	}
	return m
}

// allWords iterates a mask from its first word with Current then Next.
func allWords(m *Mask) ([]string, bool) {
	m.SetPosition(0)
	w := make([]rune, m.Width())
	m.Current(w)
	words := []string{string(w)}
	for i := uint64(1); i < m.Len(); i++ {
		m.Next(w)
		words = append(words, string(w))
	}
	wrapped := m.Next(w)
	return words, wrapped && string(w) == words[0]
}

func TestMask_LenWidth(t *testing.T) {
	m := mustMask(t, "ab", "012", "xyzw")
	if m.Len() != 24 {
		t.Errorf("Len() = %d, want 24", m.Len())
	}
	if m.Width() != 3 {
		t.Errorf("Width() = %d, want 3", m.Width())
	}

	var empty Mask
	if empty.Len() != 0 || empty.Width() != 0 {
		t.Errorf("empty mask: Len() = %d Width() = %d", empty.Len(), empty.Width())
	}
	empty.SetPosition(12)
}

func TestMask_Iterate(t *testing.T) {
	m := mustMask(t, "ab", "01", "x")
	got, wrapped := allWords(&m)
	want := []string{"a0x", "a1x", "b0x", "b1x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
	if !wrapped {
		t.Error("the last Next did not wrap to the first word")
	}
}

func TestMask_VisitsAllOnce(t *testing.T) {
	m := mustMask(t, "abc", "-", "0123", "xy")
	words, wrapped := allWords(&m)
	if uint64(len(words)) != m.Len() {
		t.Fatalf("got %d words, want %d", len(words), m.Len())
	}
	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w] {
			t.Errorf("word %q seen twice", w)
		}
		seen[w] = true
	}
	if !wrapped {
		t.Error("the last Next did not wrap to the first word")
	}
}

func TestMask_RandomAccess(t *testing.T) {
	m := mustMask(t, "abc", "0123", "xy")
	words, _ := allWords(&m)

	w := make([]rune, m.Width())
	for i := range m.Len() {
		m.SetPosition(i)
		m.Current(w)
		if string(w) != words[i] {
			t.Errorf("SetPosition(%d) = %q, want %q", i, string(w), words[i])
		}
	}

	m.SetPosition(m.Len() + 5)
	m.Current(w)
	if string(w) != words[5] {
		t.Errorf("SetPosition(Len+5) = %q, want %q", string(w), words[5])
	}
}

func TestMask_NextOnlyWritesChanges(t *testing.T) {
	m := mustMask(t, "ab", "ab", "ab")
	m.SetPosition(0)
	w := make([]rune, 3)
	m.Current(w)
	w[0] = '#'
	m.Next(w)
	if string(w) != "#ab" {
		t.Errorf("Next() rewrote unchanged positions: %q", string(w))
	}
}

func TestMask_PushLeft(t *testing.T) {
	m := mustMask(t, "01")
	if err := m.PushLeft(MustCharset("ab")); err != nil {
		t.Fatal(err)
	}
	got, _ := allWords(&m)
	want := []string{"a0", "a1", "b0", "b1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestMask_Overflow(t *testing.T) {
	var b []rune
	for r := rune(0); r < 256; r++ {
		b = append(b, r)
	}
	bytes, err := NewCharset(b)
	if err != nil {
		t.Fatal(err)
	}

	var m Mask
	for i := range 7 {
		if err := m.PushRight(bytes); err != nil {
			t.Fatalf("PushRight #%d: %v", i, err)
		}
	}
	if m.Len() != 1<<56 {
		t.Fatalf("Len() = %d, want 2^56", m.Len())
	}
	err = m.PushRight(bytes)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("PushRight #8 error = %v, want ErrOverflow", err)
	}
	if want := "mask of width 7 times a charset of 256 symbols"; !strings.HasSuffix(err.Error(), want) {
		t.Errorf("PushRight #8 error = %q, want suffix %q", err, want)
	}
	if err := m.PushLeft(bytes); !errors.Is(err, ErrOverflow) {
		t.Fatalf("PushLeft #8 error = %v, want ErrOverflow", err)
	}
	if m.Len() != 1<<56 || m.Width() != 7 {
		t.Errorf("mask changed by a failed push: Len() = %d Width() = %d", m.Len(), m.Width())
	}
}
