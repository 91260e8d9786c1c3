package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hibiken/red/buffer"
	"github.com/hibiken/red/syntax"
)

// OpenFile replaces the buffer with the contents of the named file and
// selects a syntax profile from its name.
// If the file does not exist, the buffer is left empty and an error
// satisfying errors.Is(err, os.ErrNotExist) is returned.
func (e *Editor) OpenFile(filename string) error {
	e.filename = filename
	e.buf = buffer.New(buffer.Options{
		TabStop: e.buf.TabStop(),
		Syntax:  syntax.Lookup(filename),
	})
	e.cx, e.cy, e.rowOffset, e.colOffset = 0, 0, 0, 0
	e.mark = nil
	e.dirty = 0

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := e.buf.Load(f); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	e.log.Info("opened file",
		zap.String("path", filename),
		zap.Int("lines", e.buf.Len()),
		zap.String("filetype", filetype(e.buf.Syntax())))
	return nil
}

// Save writes the buffer to disk, prompting for a filename if the buffer
// has none. The contents are written to a temporary file in the same
// directory which then replaces the target.
// Returns the number of bytes written.
func (e *Editor) Save() (int, error) {
	if len(e.filename) == 0 {
		fname, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return 0, err
		}
		e.filename = fname
		e.buf.SetSyntax(syntax.Lookup(fname))
		e.log.Debug("selected syntax", zap.String("filetype", filetype(e.buf.Syntax())))
	}

	n, err := writeFileAtomic(e.filename, e.buf)
	if err != nil {
		return 0, err
	}
	e.dirty = 0
	e.log.Info("saved file", zap.String("path", e.filename), zap.Int64("bytes", n))
	return int(n), nil
}

func writeFileAtomic(filename string, buf *buffer.Buffer) (n int64, err error) {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if n, err = buf.WriteTo(f); err != nil {
		return 0, err
	}
	if err = f.Chmod(0644); err != nil {
		return 0, err
	}
	if err = f.Sync(); err != nil {
		return 0, err
	}
	if err = f.Close(); err != nil {
		return 0, err
	}
	if err = os.Rename(f.Name(), filename); err != nil {
		return 0, err
	}
	return n, nil
}
