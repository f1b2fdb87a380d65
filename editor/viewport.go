package editor

// Viewport is the cursor plus the visible window over the buffer.
// CX and CY are raw coordinates; RX is CX translated to render space.
type Viewport struct {
	CX, CY     int
	RX         int
	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
	// Margin is the number of rows kept between the cursor and the
	// top/bottom edges while moving.
	Margin int
}

// Scroll keeps the cursor inside the visible window. It runs once per frame.
func (v *Viewport) Scroll(b *Buffer) {
	v.RX = 0
	if v.CY < b.NumRows() {
		v.RX = b.CxToRx(v.CY, v.CX)
	}

	if v.CY < v.RowOffset {
		v.RowOffset = v.CY
	}
	if v.CY >= v.RowOffset+v.ScreenRows {
		v.RowOffset = v.CY - v.ScreenRows + 1
	}

	if v.RX < v.ColOffset {
		v.ColOffset = v.RX
	}
	if v.RX >= v.ColOffset+v.ScreenCols {
		v.ColOffset = v.RX - v.ScreenCols + 1
	}
}

func (v *Viewport) effectiveMargin() int {
	return max(min(v.Margin, (v.ScreenRows-1)/2), 0)
}

// ScrollMargin shifts the window so that the cursor never gets closer than
// Margin rows to the top or bottom edge. Only cursor movement uses it.
func (v *Viewport) ScrollMargin() {
	margin := v.effectiveMargin()

	if v.CY < v.RowOffset+margin {
		v.RowOffset = max(v.CY-margin, 0)
	}
	if bottom := v.RowOffset + v.ScreenRows - 1 - margin; v.CY > bottom {
		v.RowOffset = v.CY - (v.ScreenRows - 1 - margin)
	}
}

// Recenter puts the cursor row in the middle of the window without showing
// rows before the first one or empty space after the last one.
func (v *Viewport) Recenter(numRows int) {
	offset := v.CY - v.ScreenRows/2
	maxOffset := max(numRows-v.ScreenRows, 0)
	v.RowOffset = min(max(offset, 0), maxOffset)
}

// MoveCursor moves the cursor one step in the direction of an arrow key.
func (v *Viewport) MoveCursor(b *Buffer, key Key) {
	row := b.Row(v.CY)

	switch key {
	case ARROW_LEFT:
		if v.CX != 0 {
			v.CX--
		} else if v.CY > 0 {
			v.CY--
			v.CX = len(b.Row(v.CY).chars)
		}
	case ARROW_RIGHT:
		if row != nil && v.CX < len(row.chars) {
			v.CX++
		} else if row != nil && v.CX == len(row.chars) {
			v.CY++
			v.CX = 0
		}
	case ARROW_UP:
		if v.CY != 0 {
			v.CY--
		}
	case ARROW_DOWN:
		if v.CY < b.NumRows() {
			v.CY++
		}
	}

	v.clampCursor(b)
}

// clampCursor snaps the cursor back into the buffer. CY may be one past the
// last row, where the cursor sits on an empty virtual line.
func (v *Viewport) clampCursor(b *Buffer) {
	v.CY = min(max(v.CY, 0), b.NumRows())
	rowlen := 0
	if row := b.Row(v.CY); row != nil {
		rowlen = len(row.chars)
	}
	v.CX = min(max(v.CX, 0), rowlen)
}
