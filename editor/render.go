package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

// colorSequence returns the escape sequence that selects the color of h, or
// "" when the color profile has no colors.
func (e *Editor) colorSequence(h Highlight) string {
	seq := e.profile.Convert(h.Color()).Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func (e *Editor) welcomeLine(cols int) string {
	welcome := runewidth.Truncate(fmt.Sprintf("weiss editor -- version %s", WEISS_VERSION), cols, "")
	line := e.renderer.PlaceHorizontal(cols, lipgloss.Center, welcome)
	if strings.HasPrefix(line, " ") {
		line = "~" + line[1:]
	}
	return strings.TrimRight(line, " ")
}

func (e *Editor) drawRows(ab *appendBuffer, snap Snapshot) {
	for y := range snap.ScreenRows {
		if y >= len(snap.Lines) {
			if snap.Status.NumRows == 0 && y == snap.ScreenRows/3 {
				ab.appendString(e.welcomeLine(snap.ScreenCols))
			} else {
				ab.appendString("~")
			}
		} else {
			e.drawLine(ab, snap.Lines[y])
		}

		ab.appendString(CLEAR_LINE)
		ab.appendString("\r\n")
	}
}

func (e *Editor) drawLine(ab *appendBuffer, line LineSnapshot) {
	currentColor := ""
	for j, c := range line.Render {
		h := line.Highlights[j]
		switch {
		case isControl(Key(c)):
			// Control bytes are shown inverted as @, A-Z or ?
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			ab.appendString(COLORS_INVERT)
			ab.append([]byte{sym})
			ab.appendString(COLORS_RESET)
			if currentColor != "" {
				ab.appendString(currentColor)
			}
		case h == HL_NORMAL:
			if currentColor != "" {
				ab.appendString(COLOR_DEFAULT)
				currentColor = ""
			}
			ab.append([]byte{c})
		default:
			if seq := e.colorSequence(h); seq != currentColor {
				if seq == "" {
					ab.appendString(COLOR_DEFAULT)
				} else {
					ab.appendString(seq)
				}
				currentColor = seq
			}
			ab.append([]byte{c})
		}
	}
	ab.appendString(COLOR_DEFAULT)
}

func (e *Editor) statusLine(st StatusSnapshot, cols int) string {
	filename := "[No Name]"
	if st.Filename != "" {
		filename = runewidth.Truncate(st.Filename, 20, "")
	}
	dirtyFlag := ""
	if st.Dirty > 0 {
		if e.cfg.ShowDirtyCounter {
			dirtyFlag = fmt.Sprintf("[%d]", min(st.Dirty, MAX_DIRTY_SHOWN))
		} else {
			dirtyFlag = "[+]"
		}
	}
	status := runewidth.Truncate(fmt.Sprintf("%s - %d lines %s", filename, st.NumRows, dirtyFlag), cols, "")

	filetype := "no ft"
	if st.Filetype != "" {
		filetype = st.Filetype
	}
	rstatus := fmt.Sprintf("%s | %d:%d", filetype, st.Row, st.Col)

	width := runewidth.StringWidth(status)
	if rwidth := runewidth.StringWidth(rstatus); width+rwidth <= cols {
		return status + strings.Repeat(" ", cols-width-rwidth) + rstatus
	}
	return runewidth.FillRight(status, cols)
}

func (e *Editor) drawStatusBar(ab *appendBuffer, snap Snapshot) {
	ab.appendString(e.statusStyle.Render(e.statusLine(snap.Status, snap.ScreenCols)))
	ab.appendString("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer, snap Snapshot) {
	ab.appendString(CLEAR_LINE)
	ab.appendString(runewidth.Truncate(snap.Message, snap.ScreenCols, ""))
}

// RefreshScreen scrolls the window to the cursor and draws one frame.
func (e *Editor) RefreshScreen() {
	e.view.Scroll(e.buf)
	snap := e.Snapshot()

	var ab appendBuffer
	ab.appendString(CURSOR_HIDE)
	ab.appendString(CURSOR_HOME) // Move cursor to the top-left corner

	e.drawRows(&ab, snap)
	e.drawStatusBar(&ab, snap)
	e.drawMessageBar(&ab, snap)

	ab.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, snap.CursorRow+1, snap.CursorCol+1))
	ab.appendString(CURSOR_SHOW)

	if _, err := e.out.Write(ab.b); err != nil {
		e.logger.Warn("drawing screen failed", zap.Error(err))
	}
}
