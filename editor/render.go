package editor

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/hibiken/red/buffer"
	"github.com/hibiken/red/syntax"
)

const (
	escInvertColors = "\x1b[7m"
	escResetAll     = "\x1b[m"
)

// statusMessageTimeout is how long a status message stays visible.
const statusMessageTimeout = 5 * time.Second

func syntaxToColor(hl syntax.Highlight) int {
	switch hl {
	case syntax.Comment, syntax.MultiLineComment:
		return 90
	case syntax.Keyword:
		return 94
	case syntax.Type:
		return 96
	case syntax.Builtin:
		return 95
	case syntax.String:
		return 36
	case syntax.Number:
		return 33
	case syntax.Match:
		return 32
	default:
		return 37
	}
}

func filetype(p *syntax.Profile) string {
	if p == nil {
		return "no ft"
	}
	return p.Name
}

// runeWidth returns the number of screen cells r occupies. Control
// characters are drawn as a single symbol.
func runeWidth(r rune) int {
	if unicode.IsControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}

func renderWidth(render []rune) int {
	w := 0
	for _, r := range render {
		w += runeWidth(r)
	}
	return w
}

func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < e.buf.Len() {
		e.rx = e.buf.CursorToRender(e.cy, e.cx)
	}
	// scroll up if the cursor is above the visible window.
	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	// scroll down if the cursor is below the visible window.
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	// scroll left if the cursor is left of the visible window.
	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	// scroll right if the cursor is right of the visible window.
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// Render refreshes the screen.
func (e *Editor) Render() {
	e.scroll()

	var b strings.Builder

	b.WriteString("\x1b[?25l") // hide the cursor
	b.WriteString("\x1b[H")    // reposition the cursor at the top left.

	e.drawRows(&b)
	e.drawStatusBar(&b)
	e.drawMessageBar(&b)

	// position the cursor
	col := 0
	if e.cy < e.buf.Len() {
		render := e.buf.Row(e.cy).Render()
		if e.colOffset < len(render) {
			col = renderWidth(render[e.colOffset:min(e.rx, len(render))])
		}
	}
	fmt.Fprintf(&b, "\x1b[%d;%dH", (e.cy-e.rowOffset)+1, col+1)
	// show the cursor
	b.WriteString("\x1b[?25h")
	io.WriteString(e.out, b.String())
}

func (e *Editor) drawWelcome(b *strings.Builder) {
	welcomeMsg := fmt.Sprintf("Red editor -- version %s", e.version)
	if runewidth.StringWidth(welcomeMsg) > e.screenCols {
		welcomeMsg = runewidth.Truncate(welcomeMsg, e.screenCols, "")
	}
	padding := (e.screenCols - runewidth.StringWidth(welcomeMsg)) / 2
	if padding > 0 {
		b.WriteString("~")
		padding--
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(welcomeMsg)
}

func (e *Editor) drawRows(b *strings.Builder) {
	begin, end, selecting := e.selection()
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= e.buf.Len() {
			if e.buf.Len() == 0 && y == e.screenRows/3 {
				e.drawWelcome(b)
			} else {
				b.WriteString("~")
			}
		} else {
			row := e.buf.Row(filerow)
			var (
				line []rune
				hl   []syntax.Highlight
			)
			if len(row.Render()) > e.colOffset {
				line = row.Render()[e.colOffset:]
				hl = row.Highlights()[e.colOffset:]
			}
			currentColor := -1 // keep track of color to detect color change
			width := 0
			for i, r := range line {
				w := runeWidth(r)
				if width+w > e.screenCols {
					break
				}
				width += w

				selected := selecting && buffer.Contains(begin, end, buffer.Pos{
					X: e.buf.RenderToCursor(filerow, e.colOffset+i),
					Y: filerow,
				})
				if selected {
					b.WriteString(escInvertColors)
				}
				if unicode.IsControl(r) {
					// deal with non-printable characters (e.g. Ctrl-A)
					sym := '?'
					if r < 26 {
						sym = '@' + r
					}
					b.WriteString(escInvertColors)
					b.WriteRune(sym)
					b.WriteString(escResetAll)
					if currentColor != -1 {
						// restore the current color
						fmt.Fprintf(b, "\x1b[%dm", currentColor)
					}
				} else if hl[i] == syntax.Normal {
					if currentColor != -1 {
						currentColor = -1
						b.WriteString("\x1b[39m")
					}
					b.WriteRune(r)
				} else {
					color := syntaxToColor(hl[i])
					if color != currentColor {
						currentColor = color
						fmt.Fprintf(b, "\x1b[%dm", color)
					}
					b.WriteRune(r)
				}
				if selected {
					b.WriteString("\x1b[27m")
				}
			}
			b.WriteString("\x1b[39m") // reset to normal color
		}
		b.WriteString("\x1b[K") // clear the line
		b.WriteString("\r\n")
	}
}

func (e *Editor) drawStatusBar(b *strings.Builder) {
	b.WriteString(escInvertColors) // switch to inverted colors
	filename := e.filename
	if filename == "" {
		filename = "[No Name]"
	}
	dirtyStatus := ""
	if e.dirty > 0 {
		dirtyStatus = "(modified)"
	}
	lmsg := fmt.Sprintf("%.20s - %d lines %s", filename, e.buf.Len(), dirtyStatus)
	if runewidth.StringWidth(lmsg) > e.screenCols {
		lmsg = runewidth.Truncate(lmsg, e.screenCols, "...")
	}
	b.WriteString(lmsg)
	rmsg := fmt.Sprintf("%s | %d/%d", filetype(e.buf.Syntax()), e.cy+1, e.buf.Len())
	l := runewidth.StringWidth(lmsg)
	for l < e.screenCols {
		if e.screenCols-l == runewidth.StringWidth(rmsg) {
			b.WriteString(rmsg)
			break
		}
		b.WriteString(" ")
		l++
	}
	b.WriteString(escResetAll) // switch back to normal formatting
	b.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(b *strings.Builder) {
	b.WriteString("\x1b[K")
	msg := e.statusmsg
	if runewidth.StringWidth(msg) > e.screenCols {
		msg = runewidth.Truncate(msg, e.screenCols, "...")
	}
	// show the message if it's less than 5s old.
	if time.Since(e.statusmsgTime) < statusMessageTimeout {
		b.WriteString(msg)
	}
}
