package editor

import (
	"errors"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"github.com/hibiken/red/buffer"
)

var ErrPromptCanceled = errors.New("user canceled the input prompt")

// Prompt shows the given prompt in the status bar and get user input
// until to user presses the Enter key to confirm the input or until the user
// presses the Escape key to cancel the input. Returns the user input and nil
// if the user enters the input. Returns an empty string and ErrPromptCanceled
// if the user cancels the input.
// It takes an optional callback function, which takes the query string and
// the last key pressed.
func (e *Editor) Prompt(prompt string, cb func(query string, k key)) (string, error) {
	var b strings.Builder
	for {
		e.SetStatusMessage(prompt, b.String())
		e.Render()

		k, err := e.in.ReadKey()
		if errors.Is(err, ErrInvalidUTF8) {
			continue
		}
		if err != nil {
			return "", err
		}
		if k == keyDelete || k == keyBackspace || k == ctrl('h') {
			if b.Len() > 0 {
				s := dropLastGrapheme(b.String())
				b.Reset()
				b.WriteString(s)
			}
		} else if k == keyEscape {
			e.SetStatusMessage("")
			if cb != nil {
				cb(b.String(), k)
			}
			return "", ErrPromptCanceled
		} else if k == keyEnter {
			if b.Len() > 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(b.String(), k)
				}
				return b.String(), nil
			}
		} else if !k.isMeta() && !k.isSpecial() && unicode.IsPrint(rune(k)) {
			b.WriteRune(rune(k))
		}

		if cb != nil {
			cb(b.String(), k)
		}
	}
}

// dropLastGrapheme removes the last user-perceived character of s.
func dropLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}

func searchSignal(k key) buffer.Signal {
	switch k {
	case keyEnter:
		return buffer.SearchConfirm
	case keyEscape:
		return buffer.SearchCancel
	case keyArrowRight, keyArrowDown, ctrl('f'):
		return buffer.SearchNext
	case keyArrowLeft, keyArrowUp:
		return buffer.SearchPrev
	}
	return buffer.SearchInput
}

// Find runs an incremental search. The cursor moves to every match as the
// query is typed; canceling puts it back where the search started.
func (e *Editor) Find() error {
	savedCx := e.cx
	savedCy := e.cy
	savedColOffset := e.colOffset
	savedRowOffset := e.rowOffset

	search := buffer.NewSearch()

	onKeyPress := func(query string, k key) {
		sig := searchSignal(k)
		p, ok := search.Step(e.buf, query, sig)
		e.log.Debug("search step",
			zap.String("query", query),
			zap.Stringer("direction", search.Direction()),
			zap.Bool("found", ok))
		if !ok {
			return
		}
		e.cx, e.cy = p.X, p.Y
		// set rowOffset to bottom so that the next scroll() will scroll
		// upwards and the matching line will be at the top of the screen
		e.rowOffset = e.buf.Len()
	}

	_, err := e.Prompt("Search: %s (ESC = cancel | Enter = confirm | Arrows = prev/next)", onKeyPress)
	// restore cursor position when the user cancels search
	if errors.Is(err, ErrPromptCanceled) {
		e.cx = savedCx
		e.cy = savedCy
		e.colOffset = savedColOffset
		e.rowOffset = savedRowOffset
	}
	// leave no match overlay behind on any exit path
	search.Restore(e.buf)
	return err
}
