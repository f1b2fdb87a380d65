package editor

// ModalScreen is a read-only screen shown in place of the document until it
// asks to be closed.
type ModalScreen interface {
	// GetContent returns the lines to display
	GetContent() []string

	// GetTitle returns the title shown in the status bar
	GetTitle() string

	// GetStatusMessage returns the message shown when the screen opens
	GetStatusMessage() string

	// HandleKey processes a key press and returns true if the modal should close
	HandleKey(key Key, e *Editor) bool

	// Initialize sets up the initial cursor position and any other screen-specific setup
	Initialize(e *Editor)
}

// EditorState is the part of the editor a modal screen replaces.
type EditorState struct {
	buf  *Buffer
	view Viewport
}

func (e *Editor) getEditorState() EditorState {
	return EditorState{buf: e.buf, view: e.view}
}

func (e *Editor) setEditorState(state EditorState) {
	e.buf = state.buf
	e.view = state.view
}

// handles the common logic for modal screens
type ModalManager struct {
	savedState EditorState
	screen     ModalScreen
	editor     *Editor
}

// creates a new modal manager
func NewModalManager(editor *Editor, screen ModalScreen) *ModalManager {
	return &ModalManager{
		savedState: editor.getEditorState(),
		screen:     screen,
		editor:     editor,
	}
}

// Show displays the modal screen until it closes, then puts the document
// back. Only a failing key source ends it early.
func (m *ModalManager) Show() error {
	m.setupModalDisplay()
	defer m.restoreState()

	// Let the screen initialize itself (e.g., set cursor position)
	m.screen.Initialize(m.editor)

	for {
		m.editor.RefreshScreen()

		key, err := m.editor.keys.ReadKey()
		if err != nil {
			return err
		}
		if key == RESIZE_EVENT {
			m.editor.Redraw()
			continue
		}
		if m.screen.HandleKey(key, m.editor) {
			return nil
		}
	}
}

// configures the editor for modal display
func (m *ModalManager) setupModalDisplay() {
	e := m.editor
	buf := NewBuffer(e.buf.TabStop())
	for _, line := range m.screen.GetContent() {
		buf.InsertRow(buf.NumRows(), []byte(line))
	}
	buf.filename = m.screen.GetTitle()
	buf.dirty = 0

	e.buf = buf
	e.view = Viewport{
		ScreenRows: e.view.ScreenRows,
		ScreenCols: e.view.ScreenCols,
		Margin:     e.view.Margin,
	}
	e.SetStatusMessage("%s", m.screen.GetStatusMessage())
}

// restores the editor to its previous state
func (m *ModalManager) restoreState() {
	m.editor.setEditorState(m.savedState)
	m.editor.SetStatusMessage("Returned to editor")
}
