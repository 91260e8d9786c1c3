// Package editor implements the interactive editing session: cursor and
// viewport handling, key dispatch, search, selections and drawing.
package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/hibiken/red/buffer"
)

// ErrQuitEditor is returned by ProcessKey when the user asks to quit.
var ErrQuitEditor = errors.New("quit editor")

// The number of times the user needs to press Ctrl-Q to quit
// the editor with unsaved changes.
const quitTimes = 3

// statusHeight is the number of screen rows used by the status and message bars.
const statusHeight = 2

// Options configures an Editor.
type Options struct {
	// TabStop is the render width of a tab. Zero means buffer.DefaultTabStop.
	TabStop int
	// Logger receives diagnostic events. Nil means no logging.
	Logger *zap.Logger
	// SystemClipboard mirrors copy and cut to the system clipboard and
	// pastes from it when available.
	SystemClipboard bool
	// Resize delivers terminal size change notifications. It is polled
	// while waiting for input.
	Resize <-chan os.Signal
	// WindowSize returns the current terminal size after a resize.
	WindowSize func() (rows, cols int, err error)
	// Version is shown in the welcome banner.
	Version string
}

type Editor struct {
	// cursor coordinates
	cx, cy int // cx is an index into the raw characters of row cy
	rx     int // rx is an index into the render form of row cy

	// offsets
	rowOffset int
	colOffset int

	// screen size
	screenRows int
	screenCols int

	buf *buffer.Buffer

	// dirty counts the number of edits since the last save to disk.
	dirty int

	// the number of times the user has pressed Ctrl-Q with unsaved changes
	quitCounter int

	filename string

	// status message and time the message was set
	statusmsg     string
	statusmsgTime time.Time

	// mark is one end of the selection, nil when nothing is selected.
	mark            *buffer.Pos
	clipboard       string
	systemClipboard bool

	in  *keyReader
	out io.Writer
	log *zap.Logger

	resize     <-chan os.Signal
	windowSize func() (int, int, error)

	version string
}

// New returns an editor with an empty buffer reading keys from in and
// drawing to out. Call SetWindowSize before drawing.
func New(in io.Reader, out io.Writer, opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Editor{
		buf:             buffer.New(buffer.Options{TabStop: opts.TabStop}),
		version:         opts.Version,
		out:             out,
		log:             logger,
		systemClipboard: opts.SystemClipboard,
		resize:          opts.Resize,
		windowSize:      opts.WindowSize,
		screenRows:      24 - statusHeight,
		screenCols:      80,
	}
	e.in = &keyReader{r: in, idle: e.checkResize}
	return e
}

// Buffer returns the document being edited.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Cursor returns the cursor position.
func (e *Editor) Cursor() buffer.Pos { return buffer.Pos{X: e.cx, Y: e.cy} }

// Dirty reports whether there are unsaved changes.
func (e *Editor) Dirty() bool { return e.dirty > 0 }

// Clipboard returns the text of the last copy or cut.
func (e *Editor) Clipboard() string { return e.clipboard }

// SetWindowSize sets the terminal size, reserving room for the status and
// message bars.
func (e *Editor) SetWindowSize(rows, cols int) {
	e.screenRows = max(rows-statusHeight, 1)
	e.screenCols = max(cols, 1)
}

// checkResize applies a pending terminal size change and redraws.
func (e *Editor) checkResize() {
	if e.resize == nil || e.windowSize == nil {
		return
	}
	select {
	case <-e.resize:
	default:
		return
	}
	rows, cols, err := e.windowSize()
	if err != nil {
		e.log.Warn("query window size", zap.Error(err))
		return
	}
	e.SetWindowSize(rows, cols)
	e.log.Debug("resized", zap.Int("rows", rows), zap.Int("cols", cols))
	e.Render()
}

// Run draws the screen and processes keys until the user quits.
func (e *Editor) Run() error {
	for {
		e.Render()
		k, err := e.in.ReadKey()
		if errors.Is(err, ErrInvalidUTF8) {
			e.log.Warn("read key", zap.Error(err))
			e.SetStatusMessage("Ignored invalid UTF-8 input")
			continue
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if err := e.ProcessKey(k); err != nil {
			if errors.Is(err, ErrQuitEditor) {
				return nil
			}
			return err
		}
	}
}

// SetStatusMessage sets the text shown in the message bar.
func (e *Editor) SetStatusMessage(format string, a ...interface{}) {
	e.statusmsg = fmt.Sprintf(format, a...)
	e.statusmsgTime = time.Now()
}

func (e *Editor) rowLen(y int) int {
	return e.buf.RowLen(y)
}

func (e *Editor) MoveCursor(k key) {
	switch k {
	case keyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < e.buf.Len() {
			e.cy++
		}
	case keyArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rowLen(e.cy)
		}
	case keyArrowRight:
		if e.cy < e.buf.Len() {
			if linelen := e.rowLen(e.cy); e.cx < linelen {
				e.cx++
			} else {
				e.cy++
				e.cx = 0
			}
		}
	}

	// If the cursor ends up past the end of the line it's on
	// put the cursor at the end of the line.
	if linelen := e.rowLen(e.cy); e.cx > linelen {
		e.cx = linelen
	}
}

// ProcessKey handles a single key press.
// Returns ErrQuitEditor when user requests to quit.
func (e *Editor) ProcessKey(k key) error {
	switch k {
	case keyEnter:
		e.InsertNewline()

	case ctrl('q'):
		// warn the user about unsaved changes.
		if e.dirty > 0 && e.quitCounter < quitTimes {
			e.SetStatusMessage(
				"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", quitTimes-e.quitCounter)
			e.quitCounter++
			return nil
		}
		io.WriteString(e.out, "\x1b[2J") // clear the screen
		io.WriteString(e.out, "\x1b[H")  // reposition the cursor
		return ErrQuitEditor

	case ctrl('s'):
		n, err := e.Save()
		if err != nil {
			if errors.Is(err, ErrPromptCanceled) {
				e.SetStatusMessage("Save aborted")
			} else {
				e.log.Error("save file", zap.String("path", e.filename), zap.Error(err))
				e.SetStatusMessage("Can't save! I/O error: %s", err.Error())
			}
		} else {
			e.SetStatusMessage("%d bytes written to disk", n)
		}

	case ctrl('f'):
		if err := e.Find(); err != nil {
			if errors.Is(err, ErrPromptCanceled) {
				e.SetStatusMessage("")
			} else {
				return err
			}
		}

	case keyNull:
		e.SetMark()

	case ctrl('g'):
		e.mark = nil

	case ctrl('c'):
		e.Copy()

	case ctrl('x'):
		e.Cut()

	case ctrl('v'):
		e.Paste()

	case keyHome:
		e.cx = 0

	case keyEnd:
		e.cx = e.rowLen(e.cy)

	case meta('<'):
		e.cx, e.cy = 0, 0

	case meta('>'):
		if n := e.buf.Len(); n > 0 {
			e.cy = n - 1
			e.cx = e.rowLen(e.cy)
		}

	case keyBackspace, ctrl('h'):
		e.DeleteChar()

	case keyDelete:
		if e.cy == e.buf.Len()-1 && e.cx == e.rowLen(e.cy) {
			// cursor is on the last row and one past the last character,
			// no more character to delete to the right.
			break
		}
		e.MoveCursor(keyArrowRight)
		e.DeleteChar()

	case keyPageUp:
		// position cursor at the top first.
		e.cy = e.rowOffset
		// then scroll up an entire screen worth.
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(keyArrowUp)
		}

	case keyPageDown:
		// position cursor at the bottom first.
		e.cy = min(e.rowOffset+e.screenRows-1, e.buf.Len())
		// then scroll down an entire screen worth.
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(keyArrowDown)
		}

	case keyArrowUp, keyArrowDown, keyArrowLeft, keyArrowRight:
		e.MoveCursor(k)

	case ctrl('l'), keyEscape:
		break // no op

	default:
		if k == keyTab || !k.isMeta() && !k.isSpecial() && !unicode.IsControl(rune(k)) {
			e.InsertChar(rune(k))
		}
	}
	// Reset quitCounter to zero if user pressed any key other than Ctrl-Q.
	e.quitCounter = 0
	return nil
}

func (e *Editor) setCursor(p buffer.Pos) {
	e.cx, e.cy = p.X, p.Y
}

func (e *Editor) InsertChar(c rune) {
	e.setCursor(e.buf.InsertChar(e.Cursor(), c))
	e.mark = nil
	e.dirty++
}

func (e *Editor) InsertNewline() {
	e.setCursor(e.buf.InsertNewline(e.Cursor()))
	e.mark = nil
	e.dirty++
}

func (e *Editor) DeleteChar() {
	before := e.Cursor()
	e.setCursor(e.buf.DeleteChar(before))
	if e.Cursor() != before {
		e.mark = nil
		e.dirty++
	}
}
