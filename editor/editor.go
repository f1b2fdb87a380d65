package editor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

// ErrQuit is returned by ProcessKeypress when the user quits the editor.
var ErrQuit = errors.New("quit editor")

// sizer is implemented by key sources that know the window size.
type sizer interface {
	Size() (rows, cols int, err error)
}

// Editor represents the text editor state
type Editor struct {
	cfg  Config
	buf  *Buffer
	view Viewport

	keys KeyReader
	out  io.Writer

	logger      *zap.Logger
	profile     termenv.Profile
	renderer    *lipgloss.Renderer
	statusStyle lipgloss.Style

	statusMessage     string
	statusMessageTime time.Time
	quitTimes         int
	now               func() time.Time
}

type Option func(*Editor)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithColorProfile sets the color capabilities the screen is drawn for.
func WithColorProfile(profile termenv.Profile) Option {
	return func(e *Editor) {
		e.profile = profile
	}
}

// NewEditor creates an editor with an empty buffer that reads keys from keys
// and draws to out.
func NewEditor(cfg Config, keys KeyReader, out io.Writer, opts ...Option) *Editor {
	cfg = cfg.withDefaults()
	e := &Editor{
		cfg:       cfg,
		buf:       NewBuffer(cfg.TabStop),
		keys:      keys,
		out:       out,
		logger:    zap.NewNop(),
		profile:   termenv.ANSI,
		quitTimes: cfg.QuitTimes,
		now:       time.Now,
	}
	e.view.Margin = cfg.ScrollMargin
	for _, opt := range opts {
		opt(e)
	}

	e.renderer = lipgloss.NewRenderer(out)
	e.renderer.SetColorProfile(e.profile)
	e.statusStyle = e.renderer.NewStyle().Reverse(true)
	return e
}

func (e *Editor) Buffer() *Buffer { return e.buf }

func (e *Editor) Viewport() Viewport { return e.view }

// Resize sets the terminal size. Two rows are kept for the status and message bars.
func (e *Editor) Resize(rows, cols int) {
	e.view.ScreenRows = max(rows-2, 1)
	e.view.ScreenCols = max(cols, 1)
}

// Redraw re-reads the window size, if the key source knows it.
func (e *Editor) Redraw() {
	s, ok := e.keys.(sizer)
	if !ok {
		return
	}
	rows, cols, err := s.Size()
	if err != nil {
		e.ShowError("%v", err)
		return
	}
	e.Resize(rows, cols)
	e.logger.Debug("resize", zap.Int("rows", rows), zap.Int("cols", cols))
}

func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = e.now()
}

// ShowError displays an error message in the status bar instead of terminating
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage("Warn: "+format, args...)
}

/*** file i/o ***/

// Open loads filename into the buffer and moves the cursor to the top.
func (e *Editor) Open(filename string) error {
	if err := e.buf.Open(filename); err != nil {
		return err
	}
	e.view.CX, e.view.CY = 0, 0
	e.view.RowOffset, e.view.ColOffset = 0, 0

	filetype := ""
	if s := e.buf.Syntax(); s != nil {
		filetype = s.Filetype
	}
	e.logger.Info("opened file",
		zap.String("filename", filename),
		zap.Int("rows", e.buf.NumRows()),
		zap.String("filetype", filetype))
	return nil
}

// Save writes the buffer, asking for a filename first if it has none.
// Failures end up in the status bar; only a broken key source is returned.
func (e *Editor) Save() error {
	if e.buf.Filename() == "" {
		filename, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if errors.Is(err, ErrPromptCanceled) {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		if err != nil {
			return err
		}
		e.buf.SetFilename(filename)
		if s := e.buf.Syntax(); s != nil {
			e.logger.Debug("syntax selected", zap.String("filetype", s.Filetype))
		}
	}

	n, err := e.buf.Save()
	if err != nil {
		e.logger.Error("save failed", zap.String("filename", e.buf.Filename()), zap.Error(err))
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	e.logger.Info("saved file", zap.String("filename", e.buf.Filename()), zap.Int("bytes", n))
	e.SetStatusMessage("%d bytes written to disk", n)
	return nil
}

/*** editor operations ***/

func (e *Editor) InsertChar(c byte) {
	if e.view.CY == e.buf.NumRows() {
		e.buf.InsertRow(e.buf.NumRows(), nil)
	}
	e.buf.InsertChar(e.view.CY, e.view.CX, c)
	e.view.CX++
}

func (e *Editor) InsertNewline() {
	e.buf.SplitRow(e.view.CY, e.view.CX)
	e.view.CY++
	e.view.CX = 0
}

// DeleteChar is backspace: it removes the character left of the cursor, or
// joins the row onto the previous one when the cursor is at column 0.
func (e *Editor) DeleteChar() {
	if e.view.CY == e.buf.NumRows() {
		return
	}
	if e.view.CX == 0 && e.view.CY == 0 {
		return
	}

	if e.view.CX > 0 {
		e.buf.DeleteChar(e.view.CY, e.view.CX-1)
		e.view.CX--
		return
	}
	if !e.cfg.BackspaceJoins {
		return
	}

	row := e.buf.Row(e.view.CY)
	e.view.CX = len(e.buf.Row(e.view.CY - 1).chars)
	e.buf.AppendToRow(e.view.CY-1, row.chars)
	e.buf.DeleteRow(e.view.CY)
	e.view.CY--
}

// JoinLine appends the cursor row, minus its indentation, to the previous row.
func (e *Editor) JoinLine() {
	cx, ok := e.buf.JoinWithPrevious(e.view.CY)
	if !ok {
		return
	}
	e.view.CY--
	e.view.CX = cx
}

// Indent inserts a tab at the start of the cursor row.
func (e *Editor) Indent() {
	if e.view.CY >= e.buf.NumRows() {
		return
	}
	e.buf.InsertChar(e.view.CY, 0, '\t')
	e.view.CX++
}

// Outdent removes one leading tab, or up to a tab stop of leading spaces.
func (e *Editor) Outdent() {
	row := e.buf.Row(e.view.CY)
	if row == nil || len(row.chars) == 0 {
		return
	}

	removed := 0
	if row.chars[0] == '\t' {
		e.buf.DeleteChar(e.view.CY, 0)
		removed = 1
	} else {
		for removed < e.cfg.TabStop && len(row.chars) > 0 && row.chars[0] == ' ' {
			e.buf.DeleteChar(e.view.CY, 0)
			removed++
		}
	}
	e.view.CX = max(e.view.CX-removed, 0)
}

/*** input ***/

func (e *Editor) ProcessKeypress() error {
	key, err := e.keys.ReadKey()
	if err != nil {
		return err
	}

	switch key {
	case ENTER:
		e.InsertNewline()

	case withControlKey('q'):
		if e.buf.Dirty() > 0 {
			e.quitTimes--
			if e.quitTimes > 0 {
				e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
				return nil
			}
		}
		e.logger.Info("quit", zap.Int("dirty", e.buf.Dirty()))
		return ErrQuit

	case withControlKey('s'):
		if err := e.Save(); err != nil {
			return err
		}

	case HOME_KEY:
		e.view.CX = 0

	case END_KEY:
		if row := e.buf.Row(e.view.CY); row != nil {
			e.view.CX = len(row.chars)
		}

	case withControlKey('f'):
		if err := e.Find(); err != nil {
			return err
		}

	case BACKSPACE, withControlKey('h'), DELETE_KEY:
		if key == DELETE_KEY {
			e.view.MoveCursor(e.buf, ARROW_RIGHT)
		}
		e.DeleteChar()

	case PAGE_UP, PAGE_DOWN:
		direction := ARROW_UP
		if key == PAGE_UP {
			e.view.CY = e.view.RowOffset
		} else {
			e.view.CY = min(e.view.RowOffset+e.view.ScreenRows-1, e.buf.NumRows())
			direction = ARROW_DOWN
		}
		for range e.view.ScreenRows {
			e.view.MoveCursor(e.buf, direction)
		}
		e.view.ScrollMargin()

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.view.MoveCursor(e.buf, key)
		e.view.ScrollMargin()

	case withControlKey('t'):
		e.Indent()

	case withControlKey('d'):
		e.Outdent()

	case withControlKey('j'):
		e.JoinLine()

	case withControlKey('l'):
		e.view.Recenter(e.buf.NumRows())

	case withControlKey('z'):
		e.SetStatusMessage("Undo is not implemented")

	case withControlKey('r'):
		e.Redraw()

	case RESIZE_EVENT:
		// Not a command, so a pending quit confirmation survives it
		e.Redraw()
		return nil

	case withControlKey('g'):
		if err := e.Help(); err != nil {
			return err
		}

	case ESCAPE:
		// Do nothing - just reset quit times

	default:
		if key == TAB || (key < 256 && !isControl(key)) {
			e.InsertChar(byte(key))
		}
	}

	e.quitTimes = e.cfg.QuitTimes // Reset quit times after processing a key
	return nil
}

// Run draws the screen and processes keys until the user quits.
func (e *Editor) Run() error {
	for {
		e.RefreshScreen()
		if err := e.ProcessKeypress(); err != nil {
			return err
		}
	}
}
