package editor

import "slices"

// LineSnapshot is the visible part of one buffer row.
type LineSnapshot struct {
	Index      int
	Render     []byte
	Highlights []Highlight
}

// StatusSnapshot is what the status bar shows.
type StatusSnapshot struct {
	Filename string
	Filetype string
	NumRows  int
	Dirty    int
	Row, Col int // 1-based cursor position
}

// Snapshot is a read-only copy of everything a frame draws. Lines holds one
// entry per screen row that shows a buffer row, starting at the top.
type Snapshot struct {
	ScreenRows int
	ScreenCols int
	Lines      []LineSnapshot
	Status     StatusSnapshot
	// Message is empty once the status message has expired.
	Message string
	// CursorRow and CursorCol are the 0-based screen position of the cursor.
	CursorRow, CursorCol int
}

// Snapshot copies the state the renderer needs. Call it after Scroll.
func (e *Editor) Snapshot() Snapshot {
	v := e.view
	snap := Snapshot{
		ScreenRows: v.ScreenRows,
		ScreenCols: v.ScreenCols,
		Status: StatusSnapshot{
			Filename: e.buf.Filename(),
			NumRows:  e.buf.NumRows(),
			Dirty:    e.buf.Dirty(),
			Row:      v.CY + 1,
			Col:      v.CX + 1,
		},
		CursorRow: v.CY - v.RowOffset,
		CursorCol: v.RX - v.ColOffset,
	}
	if s := e.buf.Syntax(); s != nil {
		snap.Status.Filetype = s.Filetype
	}
	if e.statusMessage != "" && e.now().Sub(e.statusMessageTime) < e.cfg.MessageTimeout {
		snap.Message = e.statusMessage
	}

	for y := range v.ScreenRows {
		row := e.buf.Row(y + v.RowOffset)
		if row == nil {
			break
		}
		start := min(v.ColOffset, len(row.render))
		end := min(start+v.ScreenCols, len(row.render))
		snap.Lines = append(snap.Lines, LineSnapshot{
			Index:      row.idx,
			Render:     slices.Clone(row.render[start:end]),
			Highlights: slices.Clone(row.hl[start:end]),
		})
	}
	return snap
}
