package buffer

import "github.com/hibiken/red/syntax"

// Row is a single line of the document.
type Row struct {
	// Index within the buffer.
	idx int
	// Raw character data for the row.
	chars []rune
	// Characters to draw on the screen, with tabs expanded.
	render []rune
	// Highlight value for each rune in render.
	hl []syntax.Highlight
	// Whether the row ends inside an unclosed multi-line comment.
	inComment bool
}

// Index returns the position of the row within its buffer.
func (row *Row) Index() int { return row.idx }

// Len returns the number of raw characters in the row.
func (row *Row) Len() int { return len(row.chars) }

// Chars returns the raw characters. The slice must not be modified.
func (row *Row) Chars() []rune { return row.chars }

// Render returns the tab-expanded form of the row. The slice must not be modified.
func (row *Row) Render() []rune { return row.render }

// Highlights returns one tag per rune of Render. The slice must not be modified.
func (row *Row) Highlights() []syntax.Highlight { return row.hl }

// InComment reports whether an open multi-line comment continues past the
// end of the row.
func (row *Row) InComment() bool { return row.inComment }

func (row *Row) String() string { return string(row.chars) }

func (row *Row) insertChar(at int, c rune) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = append(row.chars, 0) // make room
	copy(row.chars[at+1:], row.chars[at:])
	row.chars[at] = c
}

func (row *Row) appendChars(chars []rune) {
	row.chars = append(row.chars, chars...)
}

func (row *Row) deleteChar(at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = append(row.chars[:at], row.chars[at+1:]...)
}

// expandTabs builds the render form of chars.
func expandTabs(chars []rune, tabStop int) []rune {
	render := make([]rune, 0, len(chars))
	for _, r := range chars {
		if r == '\t' {
			// each tab must advance the cursor forward at least one column
			render = append(render, ' ')
			// append spaces until we get to a tab stop
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, r)
		}
	}
	return render
}

// cursorToRender converts a raw index into chars to a render column.
func cursorToRender(chars []rune, cx, tabStop int) int {
	rx := 0
	for _, r := range chars[:cx] {
		if r == '\t' {
			rx += tabStop - (rx % tabStop)
		} else {
			rx++
		}
	}
	return rx
}

// renderToCursor converts a render column back to the raw index whose
// expansion covers it. Columns past the end map to len(chars).
func renderToCursor(chars []rune, rx, tabStop int) int {
	curRx := 0
	for i, r := range chars {
		if r == '\t' {
			curRx += tabStop - (curRx % tabStop)
		} else {
			curRx++
		}
		if curRx > rx {
			return i
		}
	}
	return len(chars)
}
