package buffer

import "strings"

// Ordered returns a and b sorted so that begin comes first in row-major
// order.
func Ordered(a, b Pos) (begin, end Pos) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// Contains reports whether p lies in the half-open range [begin, end).
func Contains(begin, end, p Pos) bool {
	return !p.Less(begin) && p.Less(end)
}

// Copy returns the text between begin and end. Crossing the end of a row
// yields a newline.
func (b *Buffer) Copy(begin, end Pos) string {
	begin, end = Ordered(begin, end)
	var sb strings.Builder
	p := begin
	for p.Less(end) {
		if p.Y >= len(b.rows) {
			break
		}
		row := b.rows[p.Y]
		if p.X < len(row.chars) {
			sb.WriteRune(row.chars[p.X])
			p.X++
		} else {
			sb.WriteRune('\n')
			p = Pos{X: 0, Y: p.Y + 1}
		}
	}
	return sb.String()
}

// DeleteRange deletes the text between begin and end by backspacing from
// end until begin is reached, so rows are joined exactly as with
// DeleteChar. It returns the resulting cursor position.
func (b *Buffer) DeleteRange(begin, end Pos) Pos {
	begin, end = Ordered(begin, end)
	end = b.clamp(end)
	cursor := end
	for begin.Less(cursor) {
		next := b.DeleteChar(cursor)
		if next == cursor {
			break
		}
		cursor = next
	}
	return cursor
}

// clamp moves p onto an existing character position.
func (b *Buffer) clamp(p Pos) Pos {
	if len(b.rows) == 0 {
		return Pos{}
	}
	if p.Y >= len(b.rows) {
		last := len(b.rows) - 1
		return Pos{X: len(b.rows[last].chars), Y: last}
	}
	if p.Y < 0 {
		return Pos{}
	}
	if p.X > len(b.rows[p.Y].chars) {
		p.X = len(b.rows[p.Y].chars)
	}
	if p.X < 0 {
		p.X = 0
	}
	return p
}
