package editor

import "fmt"

// HelpScreen implements the ModalScreen interface for the help display
type HelpScreen struct {
	content []string
}

// NewHelpScreen creates a new help screen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{
		content: []string{
			"=== WEISS HELP ===",
			"",
			"NAVIGATION:",
			"  Arrow Keys       - Move cursor",
			"  Page Up/Down     - Scroll by page",
			"  Home/End         - Move to line start/end",
			"  Ctrl+L           - Center the cursor line",
			"",
			"EDITING:",
			"  Ctrl+S           - Save file",
			"  Ctrl+Q           - Quit (with confirmation if unsaved)",
			"  Delete/Backspace - Delete characters",
			"  Ctrl+T / Ctrl+D  - Indent / outdent line",
			"  Ctrl+J           - Join line with the previous one",
			"",
			"SEARCH:",
			"  Ctrl+F           - Find text",
			"  Arrow Keys       - Next/previous match",
			"  Escape           - Cancel search",
			"",
			"OTHER:",
			"  Ctrl+G           - Show this help",
			"  Ctrl+R           - Redraw screen",
			"",
			"About WEISS:",
			fmt.Sprintf("  Version: %s", WEISS_VERSION),
			"  A small terminal text editor written in Go",
			"",
			"Press 'q' or Escape to close this help screen.",
		},
	}
}

// GetContent returns the help content lines
func (h *HelpScreen) GetContent() []string {
	return h.content
}

// GetTitle returns the help screen title
func (h *HelpScreen) GetTitle() string {
	return "[Help]"
}

// GetStatusMessage returns the status message for the help screen
func (h *HelpScreen) GetStatusMessage() string {
	return "Help Screen - Use Arrow Keys to scroll, 'q' or Escape to exit"
}

// Initialize sets up the initial cursor position for the help screen
func (h *HelpScreen) Initialize(e *Editor) {
	e.view.CX, e.view.CY = 0, 0
	e.view.RowOffset = 0
}

// HandleKey processes key presses for the help screen
func (h *HelpScreen) HandleKey(key Key, e *Editor) bool {
	switch key {
	case 'q', 'Q', ESCAPE:
		return true

	case ARROW_UP, ARROW_DOWN, ARROW_LEFT, ARROW_RIGHT:
		e.view.MoveCursor(e.buf, key)

	case PAGE_UP, PAGE_DOWN:
		direction := ARROW_UP
		if key == PAGE_DOWN {
			direction = ARROW_DOWN
		}
		for range e.view.ScreenRows {
			e.view.MoveCursor(e.buf, direction)
		}

	case HOME_KEY:
		e.view.CY = 0
		e.view.RowOffset = 0

	case END_KEY:
		e.view.CY = max(e.buf.NumRows()-1, 0)
	}

	e.view.CX = 0
	return false
}

// Help displays the help screen
func (e *Editor) Help() error {
	return NewModalManager(e, NewHelpScreen()).Show()
}
