package editor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// Buffer is the document: an ordered list of rows plus the bookkeeping
// needed to save it and highlight it.
type Buffer struct {
	rows     []*Row
	dirty    int // captures how many edits were made since the last save
	filename string
	syntax   *Syntax
	tabStop  int
}

func NewBuffer(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = TAB_STOP
	}
	return &Buffer{tabStop: tabStop}
}

func (b *Buffer) NumRows() int { return len(b.rows) }

// Row returns the row at position at, or nil when at is out of range.
func (b *Buffer) Row(at int) *Row {
	if at < 0 || at >= len(b.rows) {
		return nil
	}
	return b.rows[at]
}

func (b *Buffer) Dirty() int { return b.dirty }

func (b *Buffer) Filename() string { return b.filename }

func (b *Buffer) Syntax() *Syntax { return b.syntax }

func (b *Buffer) TabStop() int { return b.tabStop }

// SetFilename names the buffer and selects the matching syntax rules.
func (b *Buffer) SetFilename(filename string) {
	b.filename = filename
	b.SetSyntax(MatchSyntax(filename))
}

// SetSyntax replaces the active rules and recomputes every row's highlighting.
func (b *Buffer) SetSyntax(s *Syntax) {
	b.syntax = s
	for _, row := range b.rows {
		b.highlightRow(row)
	}
}

/*** row operations ***/

// updateRow regenerates render and highlighting of the row at position at.
func (b *Buffer) updateRow(at int) {
	b.rows[at].updateRender(b.tabStop)
	b.updateSyntax(at)
}

func (b *Buffer) InsertRow(at int, s []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}

	row := &Row{
		idx:   at,
		chars: slices.Clone(s),
	}
	// The next row currently inherits the previous row's state, so seed the
	// new row with it; a change after highlighting then cascades correctly.
	if at > 0 {
		row.hlOpenComment = b.rows[at-1].hlOpenComment
	}
	b.rows = slices.Insert(b.rows, at, row)

	for j := at + 1; j < len(b.rows); j++ {
		b.rows[j].idx = j
	}

	b.updateRow(at)
	b.dirty++
}

// DeleteRow removes the row at position at. It does not count as an edit on
// its own: every caller deletes a row as part of an edit that already did.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}

	removed := b.rows[at]
	b.rows = slices.Delete(b.rows, at, at+1)

	for j := at; j < len(b.rows); j++ {
		b.rows[j].idx = j
	}

	inherited := at > 0 && b.rows[at-1].hlOpenComment
	if at < len(b.rows) && removed.hlOpenComment != inherited {
		b.updateSyntax(at)
	}
}

// InsertChar inserts c into row at before column col. A column past the end
// of the row appends.
func (b *Buffer) InsertChar(at, col int, c byte) {
	row := b.Row(at)
	if row == nil {
		return
	}
	row.insertChar(col, c)
	b.updateRow(at)
	b.dirty++
}

// DeleteChar removes the byte at column col of row at. Out of range is a no-op.
func (b *Buffer) DeleteChar(at, col int) {
	row := b.Row(at)
	if row == nil {
		return
	}
	if !row.deleteChar(col) {
		return
	}
	b.updateRow(at)
	b.dirty++
}

func (b *Buffer) AppendToRow(at int, s []byte) {
	row := b.Row(at)
	if row == nil {
		return
	}
	row.appendBytes(s)
	b.updateRow(at)
	b.dirty++
}

// SplitRow breaks row at before column col. Column 0 inserts an empty row above.
func (b *Buffer) SplitRow(at, col int) {
	if at == len(b.rows) && col == 0 {
		b.InsertRow(at, nil)
		return
	}
	row := b.Row(at)
	if row == nil {
		return
	}
	col = min(max(col, 0), len(row.chars))
	if col == 0 {
		b.InsertRow(at, nil)
		return
	}

	b.InsertRow(at+1, row.chars[col:])
	row.chars = row.chars[:col]
	b.updateRow(at)
}

// JoinWithPrevious appends row at, without its leading indentation, to the
// previous row and deletes it. It returns the column in the previous row where
// the joined text starts.
func (b *Buffer) JoinWithPrevious(at int) (int, bool) {
	if at <= 0 || at >= len(b.rows) {
		return 0, false
	}
	prev := b.rows[at-1]
	cx := len(prev.chars)
	b.AppendToRow(at-1, bytes.TrimLeft(b.rows[at].chars, " \t"))
	b.DeleteRow(at)
	return cx, true
}

func (b *Buffer) CxToRx(at, cx int) int {
	row := b.Row(at)
	if row == nil {
		return 0
	}
	return row.cxToRx(cx, b.tabStop)
}

func (b *Buffer) RxToCx(at, rx int) int {
	row := b.Row(at)
	if row == nil {
		return 0
	}
	return row.rxToCx(rx, b.tabStop)
}

/*** file i/o ***/

// RowsToBytes returns the on-disk form of the buffer: every row followed by a newline.
func (b *Buffer) RowsToBytes() []byte {
	totalSize := 0
	for _, row := range b.rows {
		totalSize += len(row.chars) + 1
	}

	buf := make([]byte, 0, totalSize)
	for _, row := range b.rows {
		buf = append(buf, row.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// Load appends every line of r to the buffer and resets the dirty counter.
func (b *Buffer) Load(r io.Reader) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			// Remove trailing newlines and carriage returns
			line = bytes.TrimRight(line, "\r\n")
			b.InsertRow(len(b.rows), line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	}
	b.dirty = 0
	return nil
}

// Open replaces the buffer content with the file at filename.
func (b *Buffer) Open(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file '%s': %w", filename, err)
	}
	defer file.Close()

	b.rows = nil
	b.SetFilename(filename)
	return b.Load(file)
}

// Save writes the buffer to its file and returns the number of bytes written.
// The dirty counter is only reset when the whole buffer reached the disk.
func (b *Buffer) Save() (int, error) {
	if b.filename == "" {
		return 0, errors.New("no filename")
	}

	buf := b.RowsToBytes()

	file, err := os.OpenFile(b.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		return 0, err
	}

	n, err := file.Write(buf)
	if err != nil {
		return n, err
	}
	if n != len(buf) {
		return n, fmt.Errorf("partial write %d/%d bytes: %w", n, len(buf), io.ErrShortWrite)
	}

	b.dirty = 0
	return n, nil
}
