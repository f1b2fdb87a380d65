package editor

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
)

// frame draws one frame and returns what was written.
func frame(e *Editor, out *bytes.Buffer) string {
	out.Reset()
	e.RefreshScreen()
	return out.String()
}

func TestRenderWelcome(t *testing.T) {
	e, out := newTestEditor(DefaultConfig())

	screen := frame(e, out)
	lines := strings.Split(screen, "\r\n")
	// 22 text rows; the banner is on row 22/3
	welcome := lines[7]
	if !strings.Contains(welcome, "weiss editor -- version "+WEISS_VERSION) {
		t.Fatalf("Expected the welcome banner on row 7, got %q", welcome)
	}
	if !strings.HasPrefix(welcome, "~ ") {
		t.Errorf("Expected the banner row to start with a tilde, got %q", welcome)
	}
	if !strings.HasPrefix(lines[1], "~"+CLEAR_LINE) {
		t.Errorf("Expected empty rows to show a tilde, got %q", lines[1])
	}
}

func TestRenderNoWelcomeWithContent(t *testing.T) {
	e, out := newTestEditor(DefaultConfig())
	setRows(e, "hello")

	if screen := frame(e, out); strings.Contains(screen, "weiss editor") {
		t.Error("Expected no welcome banner for a non-empty buffer")
	}
}

func TestRenderStatusBar(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())

	status := e.statusLine(StatusSnapshot{NumRows: 0, Row: 1, Col: 1}, 80)
	if !strings.HasPrefix(status, "[No Name] - 0 lines") {
		t.Errorf("Expected the filename on the left, got %q", status)
	}
	if !strings.HasSuffix(status, "no ft | 1:1") {
		t.Errorf("Expected the position on the right, got %q", status)
	}
	if len(status) != 80 {
		t.Errorf("Expected a status line of 80 columns, got %d", len(status))
	}

	status = e.statusLine(StatusSnapshot{Filename: "a_very_long_file_name_indeed.c", Filetype: "c", NumRows: 3, Dirty: 2, Row: 2, Col: 5}, 80)
	if !strings.HasPrefix(status, "a_very_long_file_nam - 3 lines [2]") {
		t.Errorf("Expected a truncated filename and dirty counter, got %q", status)
	}
	if !strings.HasSuffix(status, "c | 2:5") {
		t.Errorf("Expected filetype and position, got %q", status)
	}
}

func TestRenderStatusBarDirtyFlag(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())
	if status := e.statusLine(StatusSnapshot{Dirty: 5000}, 80); !strings.Contains(status, "[999]") {
		t.Errorf("Expected the dirty counter to be capped, got %q", status)
	}

	cfg := DefaultConfig()
	cfg.ShowDirtyCounter = false
	e, _ = newTestEditor(cfg)
	if status := e.statusLine(StatusSnapshot{Dirty: 5}, 80); !strings.Contains(status, "[+]") {
		t.Errorf("Expected a modified marker, got %q", status)
	}
}

func TestRenderStatusBarNarrow(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())

	status := e.statusLine(StatusSnapshot{NumRows: 10, Row: 1, Col: 1}, 12)
	if status != "[No Name] - " {
		t.Errorf("Expected %q, got %q", "[No Name] - ", status)
	}
}

func TestRenderStatusBarReverse(t *testing.T) {
	out := &bytes.Buffer{}
	e := NewEditor(DefaultConfig(), &scriptedKeys{}, out, WithColorProfile(termenv.ANSI))
	e.Resize(5, 40)

	if screen := frame(e, out); !strings.Contains(screen, "\x1b[7m[No Name]") {
		t.Errorf("Expected a reverse video status bar, got %q", screen)
	}
}

func TestRenderSyntaxColors(t *testing.T) {
	out := &bytes.Buffer{}
	e := NewEditor(DefaultConfig(), &scriptedKeys{}, out, WithColorProfile(termenv.ANSI))
	e.Resize(5, 40)
	e.buf.SetFilename("main.c")
	setRows(e, "int x = 1;")

	screen := frame(e, out)
	if !strings.Contains(screen, "\x1b[32mint"+COLOR_DEFAULT+" x = \x1b[31m1"+COLOR_DEFAULT+";") {
		t.Errorf("Expected colored keyword and number, got %q", screen)
	}
}

func TestRenderAsciiProfileHasNoColors(t *testing.T) {
	e, out := newTestEditor(DefaultConfig())
	e.buf.SetFilename("main.c")
	setRows(e, "int x = 1;")

	screen := frame(e, out)
	if strings.Contains(screen, "\x1b[32m") || strings.Contains(screen, "\x1b[31m") {
		t.Errorf("Expected no colors, got %q", screen)
	}
	if !strings.Contains(screen, "int x = 1;") {
		t.Errorf("Expected the row text, got %q", screen)
	}
}

func TestRenderControlCharacters(t *testing.T) {
	e, out := newTestEditor(DefaultConfig())
	setRows(e, "a\x01\x7fb")

	screen := frame(e, out)
	expected := "a" + COLORS_INVERT + "A" + COLORS_RESET + COLORS_INVERT + "?" + COLORS_RESET + "b"
	if !strings.Contains(screen, expected) {
		t.Errorf("Expected %q in %q", expected, screen)
	}
}

func TestRenderCursorPosition(t *testing.T) {
	e, out := newTestEditor(DefaultConfig())
	setRows(e, "\tx")
	e.view.CX = 1

	if screen := frame(e, out); !strings.HasSuffix(screen, "\x1b[1;5H"+CURSOR_SHOW) {
		t.Errorf("Expected the cursor at row 1 column 5, got %q", screen)
	}
}

func TestSnapshotClipsToWindow(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())
	e.Resize(4, 3)
	setRows(e, "abcdef", "gh", "ijk", "lmn")
	e.view.ColOffset = 2
	e.view.RowOffset = 1

	snap := e.Snapshot()
	if len(snap.Lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(snap.Lines))
	}
	if string(snap.Lines[0].Render) != "" || snap.Lines[0].Index != 1 {
		t.Errorf("Expected row 1 scrolled out horizontally, got %q (row %d)", snap.Lines[0].Render, snap.Lines[0].Index)
	}
	if string(snap.Lines[1].Render) != "k" {
		t.Errorf("Expected %q, got %q", "k", snap.Lines[1].Render)
	}

	// The snapshot is a copy
	snap.Lines[1].Render[0] = 'z'
	if string(e.buf.Row(2).Render()) != "ijk" {
		t.Errorf("Expected the row to be unchanged, got %q", e.buf.Row(2).Render())
	}
}

func TestSnapshotMessageExpires(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	e.SetStatusMessage("saved %d", 3)
	if msg := e.Snapshot().Message; msg != "saved 3" {
		t.Errorf("Expected %q, got %q", "saved 3", msg)
	}

	now = now.Add(MESSAGE_TIMEOUT)
	if msg := e.Snapshot().Message; msg != "" {
		t.Errorf("Expected the message to expire, got %q", msg)
	}
}

func TestShowError(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())

	e.ShowError("%s failed", "resize")
	if e.statusMessage != "Warn: resize failed" {
		t.Errorf("Expected %q, got %q", "Warn: resize failed", e.statusMessage)
	}
}
