package editor

import (
	"testing"
)

func newTestRow(s string) *Row {
	row := &Row{chars: []byte(s)}
	row.updateRender(TAB_STOP)
	return row
}

func TestRowDeleteChar(t *testing.T) {
	row := newTestRow("hello")

	// Test deleting a character
	if !row.deleteChar(1) { // Delete 'e' from "hello"
		t.Fatal("Expected deleteChar to report a deletion")
	}

	expected := "hllo"
	actual := string(row.chars)
	if actual != expected {
		t.Errorf("Expected %q, got %q", expected, actual)
	}
	if len(row.chars) != 4 {
		t.Errorf("Expected chars slice length 4, got %d", len(row.chars))
	}
}

func TestRowDeleteCharMultiple(t *testing.T) {
	row := newTestRow("abc")

	row.deleteChar(0) // "abc" -> "bc"
	row.deleteChar(0) // "bc" -> "c"

	expected := "c"
	actual := string(row.chars)
	if actual != expected {
		t.Errorf("Expected %q, got %q", expected, actual)
	}
}

func TestRowDeleteCharOutOfRange(t *testing.T) {
	row := newTestRow("abc")

	for _, at := range []int{-1, 3, 10} {
		if row.deleteChar(at) {
			t.Errorf("Expected deleteChar(%d) to be a no-op", at)
		}
	}
	if string(row.chars) != "abc" {
		t.Errorf("Expected %q, got %q", "abc", string(row.chars))
	}
}

func TestRowInsertChar(t *testing.T) {
	row := newTestRow("ac")

	row.insertChar(1, 'b')
	if string(row.chars) != "abc" {
		t.Errorf("Expected %q, got %q", "abc", string(row.chars))
	}

	// A column past the end appends
	row.insertChar(99, 'd')
	if string(row.chars) != "abcd" {
		t.Errorf("Expected %q, got %q", "abcd", string(row.chars))
	}
}

func TestRowUpdateRender(t *testing.T) {
	tests := []struct {
		chars  string
		render string
	}{
		{"", ""},
		{"abc", "abc"},
		{"\ta", "%   a"},
		{"ab\tc", "ab% c"},
		{"abc\td", "abc%d"},
		{"\t\t", "%   %   "},
	}

	for _, tt := range tests {
		row := newTestRow(tt.chars)
		if string(row.render) != tt.render {
			t.Errorf("render of %q: Expected %q, got %q", tt.chars, tt.render, string(row.render))
		}
	}
}

func TestRowCxToRx(t *testing.T) {
	row := newTestRow("\ta")

	tests := []struct{ cx, rx int }{
		{0, 0},
		{1, 4},
		{2, 5},
		{10, 5}, // clamped to the row length
	}
	for _, tt := range tests {
		if got := row.cxToRx(tt.cx, TAB_STOP); got != tt.rx {
			t.Errorf("cxToRx(%d): Expected %d, got %d", tt.cx, tt.rx, got)
		}
	}

	row = newTestRow("ab\tc")
	if got := row.cxToRx(3, TAB_STOP); got != 4 {
		t.Errorf("cxToRx(3): Expected 4, got %d", got)
	}
}

func TestRowRxToCx(t *testing.T) {
	row := newTestRow("\ta")

	tests := []struct{ rx, cx int }{
		{0, 0},
		{2, 0}, // inside the expanded tab
		{4, 1},
		{5, 2},
		{10, 2},
	}
	for _, tt := range tests {
		if got := row.rxToCx(tt.rx, TAB_STOP); got != tt.cx {
			t.Errorf("rxToCx(%d): Expected %d, got %d", tt.rx, tt.cx, got)
		}
	}
}

func TestRowCustomTabStop(t *testing.T) {
	row := &Row{chars: []byte("\tx")}
	row.updateRender(8)

	if string(row.render) != "%       x" {
		t.Errorf("Expected %q, got %q", "%       x", string(row.render))
	}
	if got := row.cxToRx(1, 8); got != 8 {
		t.Errorf("Expected rx 8, got %d", got)
	}
}

func TestRowCxRxRoundTrip(t *testing.T) {
	lines := []string{"", "abc", "\t", "a\tb", "\t\tx\ty", "ab\t\tc\t"}

	for tabStop := 1; tabStop <= 8; tabStop++ {
		for _, line := range lines {
			row := &Row{chars: []byte(line)}
			row.updateRender(tabStop)
			for cx := 0; cx <= len(row.chars); cx++ {
				rx := row.cxToRx(cx, tabStop)
				if got := row.rxToCx(rx, tabStop); got != cx {
					t.Errorf("tab stop %d, %q: cx %d -> rx %d -> cx %d", tabStop, line, cx, rx, got)
				}
			}
			if got := row.cxToRx(len(row.chars), tabStop); got != len(row.render) {
				t.Errorf("tab stop %d, %q: Expected rx %d at the end, got %d", tabStop, line, len(row.render), got)
			}
		}
	}
}
