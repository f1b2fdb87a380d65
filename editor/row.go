package editor

import "slices"

// TAB_FILLER marks the first rendered column of an expanded tab.
const TAB_FILLER = '%'

// Row is one line of the document.
type Row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []Highlight
	hlOpenComment bool
}

// Index returns the row's position in its buffer.
func (row *Row) Index() int { return row.idx }

// Chars returns the raw line content. The slice must not be modified.
func (row *Row) Chars() []byte { return row.chars }

// Render returns the tab-expanded line. The slice must not be modified.
func (row *Row) Render() []byte { return row.render }

// Highlights returns one highlight class per rendered byte.
func (row *Row) Highlights() []Highlight { return row.hl }

// OpenComment reports whether a block comment is still open at the end of the row.
func (row *Row) OpenComment() bool { return row.hlOpenComment }

// Convert cursor X to render X, since rendered characters may differ from original characters (e.g., tabs)
func (row *Row) cxToRx(cx, tabStop int) int {
	cx = min(max(cx, 0), len(row.chars))
	rx := 0
	for _, c := range row.chars[:cx] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx returns the raw column whose rendered range contains rx.
// A render column past the end of the row maps to the row length.
func (row *Row) rxToCx(rx, tabStop int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

// updateRender regenerates render from chars. Highlighting is left to the buffer.
func (row *Row) updateRender(tabStop int) {
	tabs := 0
	for _, c := range row.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(row.chars)+tabs*(tabStop-1))
	for _, c := range row.chars {
		if c == '\t' {
			render = append(render, TAB_FILLER)
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	row.render = render
}

func (row *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = slices.Insert(row.chars, at, c)
}

func (row *Row) appendBytes(s []byte) {
	row.chars = append(row.chars, s...)
}

func (row *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(row.chars) {
		return false
	}
	row.chars = slices.Delete(row.chars, at, at+1)
	return true
}
