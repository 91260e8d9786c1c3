// Package tty puts the controlling terminal into raw mode and reports its
// size.
package tty

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EnableRawMode switches the terminal referred to by fd to raw mode and
// returns the previous state for Restore.
// Reads time out after a tenth of a second without input.
func EnableRawMode(fd int) (*unix.Termios, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	raw := *t // make a copy to avoid mutating the original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}
	return t, nil
}

// Restore puts the terminal back into the given state.
func Restore(fd int, state *unix.Termios) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, state)
}

// WindowSize returns the size of the terminal. If the size cannot be
// queried it moves the cursor to the bottom-right corner and asks the
// terminal where it ended up.
func WindowSize(in, out *os.File) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(out.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	// fallback: get window size by moving the cursor to bottom-right
	// and getting the cursor position.
	if _, err := io.WriteString(out, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, err
	}
	return cursorPosition(in, out)
}

func cursorPosition(in io.Reader, out io.Writer) (row, col int, err error) {
	if _, err = io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, 0, err
	}
	if _, err = fmt.Fscanf(in, "\x1b[%d;%dR", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("read cursor position: %w", err)
	}
	return row, col, nil
}

// NotifyResize relays terminal size changes on the returned channel until
// stop is called.
func NotifyResize() (ch <-chan os.Signal, stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, unix.SIGWINCH)
	return c, func() { signal.Stop(c) }
}

type reader struct {
	f *os.File
}

// NewReader returns a reader for a terminal in raw mode. A read that times
// out returns zero bytes and a nil error.
func NewReader(f *os.File) io.Reader {
	return &reader{f: f}
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, err
}
