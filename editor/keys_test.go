package editor

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadKey(t *testing.T) {
	tests := []struct {
		input string
		want  key
	}{
		{"a", 'a'},
		{"\r", keyEnter},
		{"\x00", keyNull},
		{"\x11", ctrl('q')},
		{"\x7f", keyBackspace},
		{"\x1b", keyEscape},
		{"\x1b[A", keyArrowUp},
		{"\x1b[B", keyArrowDown},
		{"\x1b[C", keyArrowRight},
		{"\x1b[D", keyArrowLeft},
		{"\x1b[H", keyHome},
		{"\x1b[F", keyEnd},
		{"\x1bOH", keyHome},
		{"\x1bOF", keyEnd},
		{"\x1b[1~", keyHome},
		{"\x1b[7~", keyHome},
		{"\x1b[4~", keyEnd},
		{"\x1b[8~", keyEnd},
		{"\x1b[3~", keyDelete},
		{"\x1b[5~", keyPageUp},
		{"\x1b[6~", keyPageDown},
		{"\x1b[9~", keyEscape},
		{"\x1b[", keyEscape},
		{"\x1b[5", keyEscape},
		{"\x1b<", meta('<')},
		{"\x1b>", meta('>')},
		{"\x1bx", meta('x')},
		{"\x1bé", meta('é')},
		{"é", 'é'},
		{"中", '中'},
		{"🙂", '🙂'},
	}
	for _, tc := range tests {
		kr := &keyReader{r: strings.NewReader(tc.input)}
		got, err := kr.ReadKey()
		if err != nil {
			t.Errorf("ReadKey(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ReadKey(%q)=%d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestReadKey_Sequence(t *testing.T) {
	kr := &keyReader{r: strings.NewReader("a\x1b[Bé\r")}
	want := []key{'a', keyArrowDown, 'é', keyEnter}
	for i, w := range want {
		got, err := kr.ReadKey()
		if err != nil {
			t.Fatalf("key %d: ReadKey returned error: %v", i, err)
		}
		if got != w {
			t.Fatalf("key %d: ReadKey()=%d, want %d", i, got, w)
		}
	}
	if _, err := kr.ReadKey(); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadKey at end of input: err=%v, want io.EOF", err)
	}
}

func TestReadKey_InvalidUTF8(t *testing.T) {
	for _, input := range []string{"\xff", "\x80", "\xc3", "\xe4\xb8", "\xc3("} {
		kr := &keyReader{r: strings.NewReader(input)}
		if _, err := kr.ReadKey(); !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("ReadKey(%q): err=%v, want ErrInvalidUTF8", input, err)
		}
	}
}

// timeoutReader returns its chunks one per Read. An empty chunk reports a
// read timeout, like a terminal in non-canonical mode with VMIN=0.
type timeoutReader struct {
	chunks []string
}

func (r *timeoutReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	chunk := r.chunks[0]
	n := copy(p, chunk)
	if n == len(chunk) {
		r.chunks = r.chunks[1:]
	} else {
		r.chunks[0] = chunk[n:]
	}
	return n, nil
}

func TestReadKey_IdleOnTimeout(t *testing.T) {
	idle := 0
	kr := &keyReader{
		r:    &timeoutReader{chunks: []string{"", "", "x"}},
		idle: func() { idle++ },
	}
	got, err := kr.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey returned error: %v", err)
	}
	if got != 'x' {
		t.Fatalf("ReadKey()=%d, want 'x'", got)
	}
	if idle != 2 {
		t.Fatalf("idle called %d times, want 2", idle)
	}
}

func TestReadKey_EscapeFollowedByTimeout(t *testing.T) {
	kr := &keyReader{r: &timeoutReader{chunks: []string{"\x1b", "", "[A"}}}
	want := []key{keyEscape, '[', 'A'}
	for i, w := range want {
		got, err := kr.ReadKey()
		if err != nil {
			t.Fatalf("key %d: ReadKey returned error: %v", i, err)
		}
		if got != w {
			t.Fatalf("key %d: ReadKey()=%d, want %d", i, got, w)
		}
	}
}

func TestKeyClasses(t *testing.T) {
	if ctrl('q') != 17 || ctrl('h') != 8 {
		t.Fatalf("unexpected ctrl values")
	}
	if !meta('x').isMeta() || key('x').isMeta() {
		t.Fatalf("isMeta misclassified")
	}
	for _, k := range []key{keyArrowLeft, keyArrowRight, keyArrowUp, keyArrowDown, keyDelete, keyPageUp, keyPageDown, keyHome, keyEnd} {
		if !k.isSpecial() {
			t.Errorf("key %d is not special", k)
		}
	}
	if key('中').isSpecial() || keyBackspace.isSpecial() {
		t.Fatalf("isSpecial misclassified")
	}
}
