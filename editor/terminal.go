//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package editor

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("not running in a terminal")

/*** terminal ***/

// Terminal is the raw-mode tty the editor reads keys from and draws to.
type Terminal struct {
	in, out       *os.File
	originalState *term.State
	resize        chan os.Signal
	keyDecoder
}

func NewTerminal(in, out *os.File) *Terminal {
	t := &Terminal{
		in:     in,
		out:    out,
		resize: make(chan os.Signal, 1),
	}
	t.keyDecoder = keyDecoder{r: newTimeoutReader(in), idle: t.pollResize}
	return t
}

// EnableRawMode switches the input to raw mode with a short read timeout, so
// that a lone Escape and window size changes are noticed.
func (t *Terminal) EnableRawMode() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	t.originalState = state

	if err := setReadTimeout(fd); err != nil {
		t.Restore()
		return fmt.Errorf("setting read timeout: %w", err)
	}
	signal.Notify(t.resize, unix.SIGWINCH)
	return nil
}

// setReadTimeout makes a read return after 100ms even without input.
func setReadTimeout(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}

// Restore the original terminal state, disabling raw mode.
func (t *Terminal) Restore() {
	signal.Stop(t.resize)
	if t.originalState != nil {
		term.Restore(int(t.in.Fd()), t.originalState)
		t.originalState = nil // Prevent multiple restoration attempts
	}
}

// Size returns the window size in rows and columns.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}
	return rows, cols, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *Terminal) ClearScreen() {
	t.out.WriteString(CLEAR_SCREEN + CURSOR_HOME)
}

func (t *Terminal) pollResize() (Key, bool) {
	select {
	case <-t.resize:
		return RESIZE_EVENT, true
	default:
		return 0, false
	}
}
