package editor

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by the key reader when the input is not a
// valid UTF-8 sequence.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 input")

type key int32

// Control characters that have a meaning of their own.
const (
	keyNull      key = 0 // Ctrl-Space
	keyTab       key = '\t'
	keyEnter     key = '\r'
	keyEscape    key = '\x1b'
	keyBackspace key = 127
)

// Assign numbers above the Unicode range to the following special keys
// to avoid conflicts with the normal keys.
const (
	keyArrowLeft key = iota + utf8.MaxRune + 1
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyPageUp
	keyPageDown
	keyHome
	keyEnd
)

// keyMetaBit marks a key pressed together with Meta (sent as ESC + char).
const keyMetaBit key = 1 << 24

// ctrl returns the key resulting from pressing the given ASCII character with the ctrl-key.
func ctrl(char byte) key {
	return key(char & 0x1f)
}

func meta(r rune) key {
	return keyMetaBit | key(r)
}

func (k key) isMeta() bool { return k&keyMetaBit != 0 }

func (k key) isSpecial() bool {
	return k >= keyArrowLeft && k <= keyEnd
}

// keyReader decodes logical keys from a byte stream. A read returning no
// data and no error is treated as a timeout, which is how the terminal
// reports that no more bytes of an escape sequence are coming.
type keyReader struct {
	r io.Reader
	// idle is called every time the reader times out while waiting for a key.
	idle func()
	buf  [1]byte
}

// readByte returns the next byte. ok is false on timeout or end of input.
func (kr *keyReader) readByte() (b byte, ok bool, err error) {
	n, err := kr.r.Read(kr.buf[:])
	if n == 1 {
		return kr.buf[0], true, nil
	}
	if err == io.EOF {
		return 0, false, nil
	}
	return 0, false, err
}

// ReadKey blocks until a key is available.
func (kr *keyReader) ReadKey() (key, error) {
	var c byte
	for {
		n, err := kr.r.Read(kr.buf[:])
		if n == 1 {
			c = kr.buf[0]
			break
		}
		if err != nil {
			return 0, err
		}
		if kr.idle != nil {
			kr.idle()
		}
	}

	switch {
	case c == '\x1b':
		return kr.readEscape()
	case c >= utf8.RuneSelf:
		return kr.readUTF8(c)
	}
	return key(c), nil
}

func (kr *keyReader) readEscape() (key, error) {
	seq0, ok, err := kr.readByte()
	if err != nil || !ok {
		return keyEscape, err
	}
	switch seq0 {
	case '[':
		seq1, ok, err := kr.readByte()
		if err != nil || !ok {
			return keyEscape, err
		}
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok, err := kr.readByte()
			if err != nil || !ok || seq2 != '~' {
				return keyEscape, err
			}
			switch seq1 {
			case '1', '7':
				return keyHome, nil
			case '3':
				return keyDelete, nil
			case '4', '8':
				return keyEnd, nil
			case '5':
				return keyPageUp, nil
			case '6':
				return keyPageDown, nil
			}
			return keyEscape, nil
		}
		switch seq1 {
		case 'A':
			return keyArrowUp, nil
		case 'B':
			return keyArrowDown, nil
		case 'C':
			return keyArrowRight, nil
		case 'D':
			return keyArrowLeft, nil
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	case 'O':
		seq1, ok, err := kr.readByte()
		if err != nil || !ok {
			return keyEscape, err
		}
		switch seq1 {
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	default:
		if seq0 >= utf8.RuneSelf {
			k, err := kr.readUTF8(seq0)
			if err != nil {
				return 0, err
			}
			return meta(rune(k)), nil
		}
		return meta(rune(seq0)), nil
	}
	return keyEscape, nil
}

// readUTF8 assembles a multi-byte character whose first byte is first.
func (kr *keyReader) readUTF8(first byte) (key, error) {
	var n int
	switch {
	case first&0xE0 == 0xC0:
		n = 2
	case first&0xF0 == 0xE0:
		n = 3
	case first&0xF8 == 0xF0:
		n = 4
	default:
		return 0, ErrInvalidUTF8
	}
	p := make([]byte, 1, n)
	p[0] = first
	for len(p) < n {
		b, ok, err := kr.readByte()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrInvalidUTF8
		}
		p = append(p, b)
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return 0, ErrInvalidUTF8
	}
	return key(r), nil
}
