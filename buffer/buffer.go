package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hibiken/red/syntax"
)

// DefaultTabStop is the render width of a tab unless Options says otherwise.
const DefaultTabStop = 8

// maxLineLen bounds a single line read by Load.
const maxLineLen = 16 << 20

// Options configures a Buffer.
type Options struct {
	// TabStop is the tab width used for rendering. Zero means DefaultTabStop.
	TabStop int
	// Syntax is the active language profile. Nil means plain text.
	Syntax *syntax.Profile
}

// Pos is a cursor position: X indexes the raw characters of row Y.
type Pos struct {
	X, Y int
}

// Less reports whether p comes before q in row-major order.
func (p Pos) Less(q Pos) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Buffer is an ordered sequence of rows. It is not safe for concurrent use.
type Buffer struct {
	rows    []*Row
	syntax  *syntax.Profile
	tabStop int
}

// New returns an empty buffer.
func New(opts Options) *Buffer {
	tabStop := opts.TabStop
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return &Buffer{syntax: opts.Syntax, tabStop: tabStop}
}

// Len returns the number of rows.
func (b *Buffer) Len() int { return len(b.rows) }

// TabStop returns the render width of a tab.
func (b *Buffer) TabStop() int { return b.tabStop }

// Row returns the row at index at. It panics if at is out of range.
func (b *Buffer) Row(at int) *Row {
	b.checkIndex(at, len(b.rows)-1)
	return b.rows[at]
}

// RowLen returns the length of row at, or 0 for the position one past the
// last row.
func (b *Buffer) RowLen(at int) int {
	if at == len(b.rows) {
		return 0
	}
	return b.Row(at).Len()
}

// Syntax returns the active language profile, or nil.
func (b *Buffer) Syntax() *syntax.Profile { return b.syntax }

// SetSyntax changes the active language profile and re-highlights every row.
func (b *Buffer) SetSyntax(p *syntax.Profile) {
	b.syntax = p
	for at := range b.rows {
		b.highlight(at)
	}
}

func (b *Buffer) checkIndex(at, max int) {
	if at < 0 || at > max {
		panic(fmt.Sprintf("buffer: row index %d out of range [0,%d]", at, max))
	}
}

// update regenerates the render form and highlights of row at. This is the
// only place render is assigned, so len(hl) == len(render) always holds.
func (b *Buffer) update(at int) {
	row := b.rows[at]
	row.render = expandTabs(row.chars, b.tabStop)
	b.highlightFrom(at)
}

// InsertRow inserts a new row holding s before row at.
// at may equal Len() to append.
func (b *Buffer) InsertRow(at int, s string) {
	b.checkIndex(at, len(b.rows))
	row := &Row{idx: at, chars: []rune(s)}
	// The row that used to be at this index was highlighted against the
	// previous row's state; start from that so the cascade only runs when
	// the new row ends up different.
	if at > 0 {
		row.inComment = b.rows[at-1].inComment
	}

	b.rows = append(b.rows, nil) // grow the buffer
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	for i := at + 1; i < len(b.rows); i++ {
		b.rows[i].idx++
	}
	b.update(at)
}

// AppendLine appends a row holding s.
func (b *Buffer) AppendLine(s string) {
	b.InsertRow(len(b.rows), s)
}

// DeleteRow removes row at.
func (b *Buffer) DeleteRow(at int) {
	b.checkIndex(at, len(b.rows)-1)
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	for i := at; i < len(b.rows); i++ {
		b.rows[i].idx--
	}
	if at < len(b.rows) {
		b.highlightFrom(at)
	}
}

// InsertChar inserts c at p and returns the cursor position after it.
// Inserting on the row one past the end appends a new row first.
func (b *Buffer) InsertChar(p Pos, c rune) Pos {
	if p.Y == len(b.rows) {
		b.InsertRow(len(b.rows), "")
	}
	row := b.Row(p.Y)
	row.insertChar(p.X, c)
	b.update(p.Y)
	return Pos{X: p.X + 1, Y: p.Y}
}

// InsertNewline splits the row at p and returns the start of the new row.
func (b *Buffer) InsertNewline(p Pos) Pos {
	if p.X == 0 {
		b.InsertRow(p.Y, "")
	} else {
		row := b.Row(p.Y)
		b.InsertRow(p.Y+1, string(row.chars[p.X:]))
		row.chars = row.chars[:p.X]
		b.update(p.Y)
	}
	return Pos{X: 0, Y: p.Y + 1}
}

// DeleteChar deletes the character before p, joining p's row onto the
// previous one when p is at column 0. It returns the new cursor position.
// Deleting at the start of the buffer or past the last row does nothing.
func (b *Buffer) DeleteChar(p Pos) Pos {
	if p.Y == len(b.rows) {
		return p
	}
	if p.X == 0 && p.Y == 0 {
		return p
	}
	row := b.Row(p.Y)
	if p.X > 0 {
		row.deleteChar(p.X - 1)
		b.update(p.Y)
		return Pos{X: p.X - 1, Y: p.Y}
	}
	prev := b.rows[p.Y-1]
	x := len(prev.chars)
	prev.appendChars(row.chars)
	// The row after the joined one was highlighted against the removed
	// row's state.
	prev.inComment = row.inComment
	b.rows = append(b.rows[:p.Y], b.rows[p.Y+1:]...)
	for i := p.Y; i < len(b.rows); i++ {
		b.rows[i].idx--
	}
	b.update(p.Y - 1)
	return Pos{X: x, Y: p.Y - 1}
}

// InsertString inserts s at p one character at a time, turning newlines
// into row splits. It returns the cursor position after the inserted text.
func (b *Buffer) InsertString(p Pos, s string) Pos {
	for _, c := range s {
		if c == '\n' {
			p = b.InsertNewline(p)
		} else {
			p = b.InsertChar(p, c)
		}
	}
	return p
}

// CursorToRender converts raw column cx of row y to a render column.
func (b *Buffer) CursorToRender(y, cx int) int {
	return cursorToRender(b.Row(y).chars, cx, b.tabStop)
}

// RenderToCursor converts render column rx of row y to a raw column.
func (b *Buffer) RenderToCursor(y, rx int) int {
	return renderToCursor(b.Row(y).chars, rx, b.tabStop)
}

// Load appends one row per line read from r. Line terminators are stripped.
func (b *Buffer) Load(r io.Reader) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for s.Scan() {
		// strip off carriage return
		line := bytes.TrimRight(s.Bytes(), "\r")
		b.AppendLine(string(line))
	}
	return s.Err()
}

// String returns the contents of every row, each followed by a newline.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(string(row.chars))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// WriteTo writes the serialized buffer to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
