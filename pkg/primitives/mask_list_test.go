package primitives

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustMaskList(t testing.TB, masks ...Mask) *MaskList {
	t.Helper()
	var ml MaskList
	for _, m := range masks {
		if err := ml.Push(m); err != nil {
			t.Fatalf("Push(%v): %v", m, err)
		}
	}
	return &ml
}

func TestMaskList_LenWidth(t *testing.T) {
	ml := mustMaskList(t, mustMask(t, "ab"), mustMask(t, "abc", "x"), mustMask(t, "0123"))
	if ml.Len() != 9 {
		t.Errorf("Len() = %d, want 9", ml.Len())
	}
	if ml.MaxWidth() != 2 {
		t.Errorf("MaxWidth() = %d, want 2", ml.MaxWidth())
	}
	if ml.Count() != 3 {
		t.Errorf("Count() = %d, want 3", ml.Count())
	}
}

func TestMaskList_Locate(t *testing.T) {
	ml := mustMaskList(t, mustMask(t, "ab"), mustMask(t, "xyz"))

	type loc struct {
		Mask   int
		Offset uint64
	}
	var got []loc
	for o := range uint64(6) {
		i, offset := ml.Locate(o)
		got = append(got, loc{i, offset})
	}
	want := []loc{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}, {0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locate mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskList_Iterate(t *testing.T) {
	ml := mustMaskList(t, mustMask(t, "ab"), mustMask(t, "xyz", "0"), mustMask(t, "!"))
	w := make([]rune, ml.MaxWidth())

	ml.SetPosition(0)
	width, last := ml.First(w)
	got := []string{string(w[:width])}
	for !last {
		width, last = ml.Next(w)
		got = append(got, string(w[:width]))
	}
	want := []string{"a", "b", "x0", "y0", "z0", "!"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}

	width, last = ml.Next(w)
	if string(w[:width]) != "a" || last {
		t.Errorf("Next() after the last word = %q, %v; want \"a\", false", string(w[:width]), last)
	}
}

func TestMaskList_SetPosition(t *testing.T) {
	ml := mustMaskList(t, mustMask(t, "ab", "01"), mustMask(t, "xyz"))
	all := []string{"a0", "a1", "b0", "b1", "x", "y", "z"}
	w := make([]rune, ml.MaxWidth())

	for start := range ml.Len() + 1 {
		ml.SetPosition(start)
		width, _ := ml.First(w)
		got := []string{string(w[:width])}
		for len(got) < len(all) {
			width, _ = ml.Next(w)
			got = append(got, string(w[:width]))
		}
		s := int(start % ml.Len())
		want := append(append([]string{}, all[s:]...), all[:s]...)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SetPosition(%d) mismatch (-want +got):\n%s", start, diff)
		}
	}
}

func TestMaskList_SingleWordMasks(t *testing.T) {
	ml := mustMaskList(t, mustMask(t, "a"), mustMask(t, "b"))
	w := make([]rune, 1)
	ml.SetPosition(0)
	if _, last := ml.First(w); last {
		t.Error("First() reported the last word")
	}
	if _, last := ml.Next(w); !last || w[0] != 'b' {
		t.Errorf("Next() = %q, %v; want 'b', true", w[0], last)
	}
}

func TestMaskList_Overflow(t *testing.T) {
	big := mustMask(t, "0123456789abcdef", "0123456789abcdef", "0123456789abcdef", "0123456789abcdef",
		"0123456789abcdef", "0123456789abcdef", "0123456789abcdef", "01234567")
	// 16^7 * 8 * 16^8 == 2^63
	for range 8 {
		if err := big.PushRight(MustCharset("0123456789abcdef")); err != nil {
			t.Fatal(err)
		}
	}
	if big.Len() != 1<<63 {
		t.Fatalf("Len() = %d, want 2^63", big.Len())
	}

	ml := mustMaskList(t, big)
	err := ml.Push(big)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("Push error = %v, want ErrOverflow", err)
	}
	if want := "plus a mask of width 16"; !strings.HasSuffix(err.Error(), want) {
		t.Errorf("Push error = %q, want suffix %q", err, want)
	}
	if ml.Len() != 1<<63 || ml.Count() != 1 {
		t.Errorf("list changed by a failed push: Len() = %d Count() = %d", ml.Len(), ml.Count())
	}
}
