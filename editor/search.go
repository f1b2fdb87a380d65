package editor

import (
	"bytes"
	"errors"

	"go.uber.org/zap"
)

/*** find ***/

// Search is the incremental search driven by the prompt. One Search lives
// for one prompt session.
type Search struct {
	buf    *Buffer
	view   *Viewport
	logger *zap.Logger

	lastMatch int // -1 until something matched
	direction int // 1 = forward, -1 = backward

	savedHlLine int
	savedHl     []Highlight
}

func NewSearch(b *Buffer, v *Viewport, logger *zap.Logger) *Search {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Search{
		buf:       b,
		view:      v,
		logger:    logger,
		lastMatch: -1,
		direction: 1,
	}
}

// restoreHighlight puts back the highlighting that the last match painted over.
func (s *Search) restoreHighlight() {
	if s.savedHl == nil {
		return
	}
	if row := s.buf.Row(s.savedHlLine); row != nil && len(row.hl) == len(s.savedHl) {
		copy(row.hl, s.savedHl)
	}
	s.savedHl = nil
}

// OnKey runs after every prompt key with the query typed so far.
func (s *Search) OnKey(query string, key Key) {
	s.restoreHighlight()

	switch key {
	case ENTER, ESCAPE:
		s.lastMatch = -1
		s.direction = 1
		return
	case ARROW_RIGHT, ARROW_DOWN:
		s.direction = 1
	case ARROW_LEFT, ARROW_UP:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if s.lastMatch == -1 {
		s.direction = 1
	}
	if query == "" {
		return
	}

	needle := []byte(query)
	numRows := s.buf.NumRows()
	current := s.lastMatch
	for range numRows {
		current += s.direction
		if current == -1 {
			current = numRows - 1
		} else if current == numRows {
			current = 0
		}

		row := s.buf.rows[current]
		match := bytes.Index(row.render, needle)
		if match == -1 {
			continue
		}

		s.lastMatch = current
		s.view.CY = current
		s.view.CX = row.rxToCx(match, s.buf.tabStop)
		s.view.Recenter(numRows)

		s.savedHlLine = current
		s.savedHl = make([]Highlight, len(row.hl))
		copy(s.savedHl, row.hl)
		for k := match; k < match+len(needle) && k < len(row.hl); k++ {
			row.hl[k] = HL_MATCH
		}
		s.logger.Debug("search match", zap.String("query", query), zap.Int("row", current), zap.Int("rx", match))
		break
	}
}

// Find runs the search prompt. Cancelling it puts the cursor and the window
// back where they were.
func (e *Editor) Find() error {
	savedCx := e.view.CX
	savedCy := e.view.CY
	savedColOffset := e.view.ColOffset
	savedRowOffset := e.view.RowOffset

	search := NewSearch(e.buf, &e.view, e.logger)
	_, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", search)
	if errors.Is(err, ErrPromptCanceled) {
		e.view.CX = savedCx
		e.view.CY = savedCy
		e.view.ColOffset = savedColOffset
		e.view.RowOffset = savedRowOffset
		return nil
	}
	return err
}
