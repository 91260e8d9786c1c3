package buffer

import (
	"strings"

	"github.com/hibiken/red/syntax"
)

// highlightFrom highlights row at and keeps going down the buffer for as
// long as a row's multi-line comment state changes.
func (b *Buffer) highlightFrom(at int) {
	for at < len(b.rows) && b.highlight(at) {
		at++
	}
}

// highlight recomputes the highlights of row at from its render form and
// reports whether the row's comment continuation state changed.
func (b *Buffer) highlight(at int) bool {
	row := b.rows[at]
	row.hl = make([]syntax.Highlight, len(row.render))

	// indicates whether we are inside a multi-line comment.
	inComment := at > 0 && b.rows[at-1].inComment

	if p := b.syntax; p != nil {
		inComment = b.scan(row, p, inComment)
	}

	changed := row.inComment != inComment
	row.inComment = inComment
	return changed
}

// scan tags row.hl according to p and returns the comment state at the end
// of the row.
func (b *Buffer) scan(row *Row, p *syntax.Profile, inComment bool) bool {
	var (
		render = row.render
		hl     = row.hl
		scs    = []rune(p.SingleLineComment)
		mcs    = []rune(p.MultiLineStart)
		mce    = []rune(p.MultiLineEnd)
	)

	prevSep := true

	// set to the quote when inside of a string.
	// set to zero when outside of a string.
	var quote rune

	idx := 0
	for idx < len(render) {
		r := render[idx]
		prevHl := syntax.Normal
		if idx > 0 {
			prevHl = hl[idx-1]
		}

		if len(scs) > 0 && quote == 0 && !inComment && hasPrefix(render[idx:], scs) {
			fill(hl[idx:], syntax.Comment)
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && quote == 0 {
			if inComment {
				hl[idx] = syntax.MultiLineComment
				if hasPrefix(render[idx:], mce) {
					fill(hl[idx:idx+len(mce)], syntax.MultiLineComment)
					idx += len(mce)
					inComment = false
					prevSep = true
				} else {
					idx++
				}
				continue
			} else if hasPrefix(render[idx:], mcs) {
				fill(hl[idx:idx+len(mcs)], syntax.MultiLineComment)
				idx += len(mcs)
				inComment = true
				continue
			}
		}

		if p.Has(syntax.HighlightChars) && quote == 0 && r == '\'' {
			if start, ok := b.charLiteralStart(row, idx); ok {
				fill(hl[start:idx+1], syntax.String)
				idx++
				prevSep = false
				continue
			}
		}

		if p.Has(syntax.HighlightStrings) {
			if quote != 0 {
				hl[idx] = syntax.String
				// deal with escaped characters inside a string
				if r == '\\' && idx+1 < len(render) {
					hl[idx+1] = syntax.String
					idx += 2
					continue
				}
				if r == quote {
					quote = 0
				}
				idx++
				prevSep = true
				continue
			} else if strings.ContainsRune(p.StringQuotes, r) {
				quote = r
				hl[idx] = syntax.String
				idx++
				continue
			}
		}

		if p.Has(syntax.HighlightNumbers) {
			if isDigit(r) && (prevSep || prevHl == syntax.Number) ||
				r == '.' && prevHl == syntax.Number {
				hl[idx] = syntax.Number
				idx++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, h := matchWord(render[idx:], p); n > 0 {
				fill(hl[idx:idx+n], h)
				idx += n
				prevSep = false
				continue
			}
		}

		prevSep = syntax.IsSeparator(r)
		idx++
	}
	return inComment
}

// charLiteralStart looks for the opening quote of a character literal
// ('x' or '\x') that is closed by the quote at render column rx. The
// lookback happens on raw characters so tabs inside the literal are
// counted once.
func (b *Buffer) charLiteralStart(row *Row, rx int) (int, bool) {
	chars := row.chars
	cx := renderToCursor(chars, rx, b.tabStop)
	switch {
	case cx >= 2 && chars[cx-2] == '\'' && chars[cx-1] != '\\':
		return cursorToRender(chars, cx-2, b.tabStop), true
	case cx >= 3 && chars[cx-3] == '\'' && chars[cx-2] == '\\':
		return cursorToRender(chars, cx-3, b.tabStop), true
	}
	return 0, false
}

// matchWord returns the length and tag of the keyword, type or builtin at
// the start of s, or zero if none matches as a whole word.
func matchWord(s []rune, p *syntax.Profile) (int, syntax.Highlight) {
	lists := [...]struct {
		words []string
		hl    syntax.Highlight
	}{
		{p.Keywords, syntax.Keyword},
		{p.Types, syntax.Type},
		{p.Builtins, syntax.Builtin},
	}
	for _, l := range lists {
		for _, w := range l.words {
			word := []rune(w)
			end := len(word)
			if hasPrefix(s, word) && (end == len(s) || syntax.IsSeparator(s[end])) {
				return end, l.hl
			}
		}
	}
	return 0, syntax.Normal
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func fill(hl []syntax.Highlight, h syntax.Highlight) {
	for i := range hl {
		hl[i] = h
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
