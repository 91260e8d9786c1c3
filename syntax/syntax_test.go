package syntax

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		want *Profile
	}{
		{"main.c", C},
		{"include/list.h", C},
		{"server.go", Go},
		{"prog.rs", Rust},
		{"app.hs", Haskell},
		{"script.py", Python},
		{"start.sh", Shell},
		{"test.txt", nil},
		{"Main.C", nil}, // extensions are case sensitive
		{"", nil},
	}
	for _, tc := range tests {
		if got := Lookup(tc.path); got != tc.want {
			t.Errorf("Lookup(%q)=%v, want %v", tc.path, name(got), name(tc.want))
		}
	}
}

func TestProfileMatches_Substring(t *testing.T) {
	p := &Profile{Name: "make", Extensions: []string{"Makefile"}}
	if !p.Matches("src/Makefile") {
		t.Fatalf("expected substring pattern to match")
	}
	if p.Matches("src/makefile") {
		t.Fatalf("substring patterns are case sensitive")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range " \t\x00,.()+-/*=~%<>[]{}:;" {
		if !IsSeparator(r) {
			t.Errorf("IsSeparator(%q)=false, want true", r)
		}
	}
	for _, r := range "aZ09_'\"#|" {
		if IsSeparator(r) {
			t.Errorf("IsSeparator(%q)=true, want false", r)
		}
	}
}

func TestProfileHas(t *testing.T) {
	if !C.Has(HighlightChars) {
		t.Fatalf("c should highlight char literals")
	}
	if Python.Has(HighlightChars) {
		t.Fatalf("python should not highlight char literals")
	}
	if !Python.Has(HighlightNumbers | HighlightStrings) {
		t.Fatalf("python should highlight numbers and strings")
	}
}

func name(p *Profile) string {
	if p == nil {
		return "<nil>"
	}
	return p.Name
}
