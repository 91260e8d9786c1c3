package editor

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/hibiken/red/buffer"
)

// SetMark starts a selection at the cursor. The mark is kept in raw
// character coordinates, like the cursor.
func (e *Editor) SetMark() {
	p := e.Cursor()
	e.mark = &p
	e.SetStatusMessage("Mark set")
}

// Mark returns the selection mark and whether one is set.
func (e *Editor) Mark() (buffer.Pos, bool) {
	if e.mark == nil {
		return buffer.Pos{}, false
	}
	return *e.mark, true
}

// selection returns the ordered selection range.
func (e *Editor) selection() (begin, end buffer.Pos, ok bool) {
	if e.mark == nil {
		return buffer.Pos{}, buffer.Pos{}, false
	}
	begin, end = buffer.Ordered(*e.mark, e.Cursor())
	return begin, end, true
}

// Copy copies the selection to the clipboard and clears the mark.
func (e *Editor) Copy() {
	begin, end, ok := e.selection()
	if !ok {
		e.SetStatusMessage("No selection")
		return
	}
	e.setClipboard(e.buf.Copy(begin, end))
	e.mark = nil
}

// Cut copies the selection and deletes it from the buffer.
func (e *Editor) Cut() {
	begin, end, ok := e.selection()
	if !ok {
		e.SetStatusMessage("No selection")
		return
	}
	if begin == end {
		e.mark = nil
		return
	}
	e.setClipboard(e.buf.Copy(begin, end))
	e.setCursor(e.buf.DeleteRange(begin, end))
	e.mark = nil
	e.dirty++
}

// Paste inserts the clipboard at the cursor.
func (e *Editor) Paste() {
	text := e.clipboard
	if e.systemClipboard && !clipboard.Unsupported {
		if s, err := clipboard.ReadAll(); err != nil {
			e.log.Debug("read system clipboard", zap.Error(err))
		} else if s != "" {
			text = s
		}
	}
	if text == "" {
		return
	}
	e.setCursor(e.buf.InsertString(e.Cursor(), text))
	e.mark = nil
	e.dirty++
}

func (e *Editor) setClipboard(text string) {
	e.clipboard = text
	if !e.systemClipboard || clipboard.Unsupported {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		e.log.Warn("write system clipboard", zap.Error(err))
	}
}
