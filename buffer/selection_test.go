package buffer

import (
	"strings"
	"testing"
)

func TestOrdered(t *testing.T) {
	tests := []struct {
		a, b, begin, end Pos
	}{
		{Pos{1, 0}, Pos{4, 0}, Pos{1, 0}, Pos{4, 0}},
		{Pos{4, 0}, Pos{1, 0}, Pos{1, 0}, Pos{4, 0}},
		{Pos{0, 2}, Pos{9, 1}, Pos{9, 1}, Pos{0, 2}},
		{Pos{3, 3}, Pos{3, 3}, Pos{3, 3}, Pos{3, 3}},
	}
	for _, tc := range tests {
		begin, end := Ordered(tc.a, tc.b)
		if begin != tc.begin || end != tc.end {
			t.Errorf("Ordered(%v, %v)=(%v, %v), want (%v, %v)", tc.a, tc.b, begin, end, tc.begin, tc.end)
		}
	}
}

func TestContains(t *testing.T) {
	begin, end := Pos{2, 0}, Pos{1, 1}
	if !Contains(begin, end, Pos{2, 0}) || !Contains(begin, end, Pos{9, 0}) || !Contains(begin, end, Pos{0, 1}) {
		t.Fatalf("expected positions inside the range")
	}
	if Contains(begin, end, Pos{1, 0}) || Contains(begin, end, Pos{1, 1}) {
		t.Fatalf("expected positions outside the range")
	}
}

func TestCopy(t *testing.T) {
	b := newBufferWithLines(nil, "this is a test", "second", "third")
	tests := []struct {
		begin, end Pos
		want       string
	}{
		{Pos{0, 0}, Pos{4, 0}, "this"},
		{Pos{4, 0}, Pos{0, 0}, "this"},
		{Pos{10, 0}, Pos{3, 1}, "test\nsec"},
		{Pos{0, 1}, Pos{0, 3}, "second\nthird\n"},
		{Pos{2, 2}, Pos{2, 2}, ""},
	}
	for _, tc := range tests {
		if got := b.Copy(tc.begin, tc.end); got != tc.want {
			t.Errorf("Copy(%v, %v)=%q, want %q", tc.begin, tc.end, got, tc.want)
		}
	}
	if got, want := strings.Join(rowStrings(b), "|"), "this is a test|second|third"; got != want {
		t.Fatalf("Copy mutated the buffer: %q", got)
	}
}

func TestDeleteRange(t *testing.T) {
	b := newBufferWithLines(nil, "ab", "cd", "ef")
	p := b.DeleteRange(Pos{1, 0}, Pos{1, 2})
	if got, want := strings.Join(rowStrings(b), "|"), "af"; got != want {
		t.Fatalf("rows=%q, want %q", got, want)
	}
	if got, want := p, (Pos{1, 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteRange_ReversedAndPastEnd(t *testing.T) {
	b := newBufferWithLines(nil, "keep", "drop")
	p := b.DeleteRange(Pos{0, 2}, Pos{4, 0})
	if got, want := strings.Join(rowStrings(b), "|"), "keep"; got != want {
		t.Fatalf("rows=%q, want %q", got, want)
	}
	if got, want := p, (Pos{4, 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	b := newBufferWithLines(nil, "this is a test")
	clip := b.Copy(Pos{0, 0}, Pos{4, 0})
	p := Pos{X: 14, Y: 0}
	for i := 0; i < 3; i++ {
		p = b.InsertString(p, clip)
	}
	if got, want := b.Row(0).String(), "this is a testthisthisthis"; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}

	b = newBufferWithLines(nil, "one", "two")
	clip = b.Copy(Pos{1, 0}, Pos{2, 1})
	b.InsertString(Pos{3, 1}, clip)
	if got, want := strings.Join(rowStrings(b), "|"), "one|twone|tw"; got != want {
		t.Fatalf("rows=%q, want %q", got, want)
	}
}
