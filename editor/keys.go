package editor

import (
	"errors"
	"io"
	"time"
)

// ErrInputClosed is returned once reads keep ending without waiting for the
// read timeout, which is what a tty does after it has gone away.
var ErrInputClosed = errors.New("terminal input closed")

const (
	READ_TIMEOUT    = 100 * time.Millisecond // VTIME=1
	MAX_EMPTY_READS = 10
)

// Key is a decoded key press: a plain byte below 256 or one of the special
// keys below.
type Key int

// Key aliases
const (
	ENTER      Key = '\r'
	ESCAPE     Key = '\x1b'
	TAB        Key = '\t'
	BACKSPACE  Key = 127 // ASCII backspace
	ARROW_LEFT Key = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
	// RESIZE_EVENT is produced instead of a key when the window size changed.
	RESIZE_EVENT
)

// Convert a character to its control key equivalent
func withControlKey(c byte) Key {
	return Key(c & 0x1f) // 0x1f is 31 in decimal, which is the control character range
}

// Check if the key is a control character
func isControl(k Key) bool {
	return k < 32 || k == 127
}

// KeyReader supplies decoded key presses.
type KeyReader interface {
	ReadKey() (Key, error)
}

// keyDecoder turns the raw byte stream of a terminal into keys. Reads may
// time out; a timeout shows up as a zero-length read (io.EOF on a raw tty).
type keyDecoder struct {
	r io.Reader
	// idle is called while waiting for the first byte of a key. A true result
	// ends the wait with the returned key. With no idle hook a timeout ends
	// the wait with io.EOF.
	idle func() (Key, bool)
}

// timeoutReader watches a tty set up with a read timeout. An empty read that
// returns well before the timeout counts as instant; too many in a row mean
// the input is gone.
type timeoutReader struct {
	r       io.Reader
	minWait time.Duration
	now     func() time.Time
	instant int
}

func newTimeoutReader(r io.Reader) *timeoutReader {
	return &timeoutReader{r: r, minWait: READ_TIMEOUT / 2, now: time.Now}
}

func (t *timeoutReader) Read(p []byte) (int, error) {
	start := t.now()
	n, err := t.r.Read(p)
	if n > 0 || (err != nil && !errors.Is(err, io.EOF)) || t.now().Sub(start) >= t.minWait {
		t.instant = 0
		return n, err
	}

	t.instant++
	if t.instant >= MAX_EMPTY_READS {
		return 0, ErrInputClosed
	}
	return n, err
}

func (d *keyDecoder) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := d.r.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, false, err
	}
	return 0, false, nil
}

func (d *keyDecoder) ReadKey() (Key, error) {
	var c byte
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if ok {
			c = b
			break
		}
		if d.idle == nil {
			return 0, io.EOF
		}
		if k, ok := d.idle(); ok {
			return k, nil
		}
	}

	if c != '\x1b' {
		return Key(c), nil
	}

	// Handle escape sequences (special keys). A missing byte means the user
	// pressed Escape on its own.
	var seq [3]byte
	for i := range 2 {
		b, ok, err := d.readByte()
		if err != nil || !ok {
			return ESCAPE, nil
		}
		seq[i] = b
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			b, ok, err := d.readByte()
			if err != nil || !ok {
				return ESCAPE, nil
			}
			seq[2] = b
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4', '8':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return ESCAPE, nil // Unknown escape sequence, return escape
}
