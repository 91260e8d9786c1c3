// Package syntax holds the static language profiles used for syntax
// highlighting and the highlight tags assigned to rendered characters.
package syntax

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Highlight classifies a single rendered character.
type Highlight uint8

// Syntax highlight enums
const (
	Normal Highlight = iota
	Comment
	MultiLineComment
	Keyword
	Type
	Builtin
	String
	Number
	Match
)

func (h Highlight) String() string {
	switch h {
	case Normal:
		return "normal"
	case Comment:
		return "comment"
	case MultiLineComment:
		return "multi-line comment"
	case Keyword:
		return "keyword"
	case Type:
		return "type"
	case Builtin:
		return "builtin"
	case String:
		return "string"
	case Number:
		return "number"
	case Match:
		return "match"
	}
	return "unknown"
}

// Flags is a bit field of optional highlighting features.
type Flags uint32

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
	HighlightChars
)

// Profile describes how to highlight one source language.
// Profiles are read-only once declared.
type Profile struct {
	// Name of the filetype displayed in the status bar.
	Name string
	// List of patterns to match a filename against. Patterns starting with
	// a dot are compared against the file extension, anything else is
	// searched for as a substring of the path.
	Extensions []string
	// SingleLineComment starts a comment running to the end of the row
	// (e.g. "//" for C). Empty if the language has none.
	SingleLineComment string
	// MultiLineStart and MultiLineEnd delimit block comments. Block
	// comments are disabled unless both are set.
	MultiLineStart string
	MultiLineEnd   string
	// Keywords, Types and Builtins are whole words, checked in that order.
	Keywords []string
	Types    []string
	Builtins []string
	// StringQuotes lists the characters that open and close string literals.
	StringQuotes string
	Flags        Flags
}

// Has reports whether all of the given feature flags are enabled.
func (p *Profile) Has(f Flags) bool {
	return p.Flags&f == f
}

// Matches reports whether the profile applies to the given file path.
func (p *Profile) Matches(path string) bool {
	ext := filepath.Ext(path)
	for _, pattern := range p.Extensions {
		isExt := strings.HasPrefix(pattern, ".")
		if (isExt && pattern == ext) || (!isExt && strings.Contains(path, pattern)) {
			return true
		}
	}
	return false
}

// Lookup returns the first profile matching path, or nil when the file
// should be treated as plain text.
func Lookup(path string) *Profile {
	if path == "" {
		return nil
	}
	for _, p := range Profiles {
		if p.Matches(path) {
			return p
		}
	}
	return nil
}

// IsSeparator reports whether r delimits words for keyword and number
// matching.
func IsSeparator(r rune) bool {
	return r == 0 || unicode.IsSpace(r) || strings.ContainsRune(",.()+-/*=~%<>[]{}:;", r)
}
