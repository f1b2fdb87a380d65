package editor

import "time"

// Config Constants
const (
	WEISS_VERSION   = "0.1.0"
	TAB_STOP        = 4
	QUIT_TIMES      = 3
	SCROLL_MARGIN   = 3
	MESSAGE_TIMEOUT = 5 * time.Second
	MAX_DIRTY_SHOWN = 999
)

// Config holds the editor's tunables.
type Config struct {
	// TabStop is the width tabs expand to.
	TabStop int
	// QuitTimes is how many consecutive quit commands are needed while the
	// buffer has unsaved changes.
	QuitTimes int
	// ScrollMargin rows are kept between the cursor and the window edges
	// while moving.
	ScrollMargin int
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration
	// ShowDirtyCounter shows the number of unsaved edits instead of a plain
	// modified marker.
	ShowDirtyCounter bool
	// BackspaceJoins lets backspace at column 0 join the row onto the previous one.
	BackspaceJoins bool
}

func DefaultConfig() Config {
	return Config{
		TabStop:          TAB_STOP,
		QuitTimes:        QUIT_TIMES,
		ScrollMargin:     SCROLL_MARGIN,
		MessageTimeout:   MESSAGE_TIMEOUT,
		ShowDirtyCounter: true,
		BackspaceJoins:   true,
	}
}

// withDefaults replaces unusable values with the defaults.
func (c Config) withDefaults() Config {
	if c.TabStop < 1 {
		c.TabStop = TAB_STOP
	}
	if c.QuitTimes < 1 {
		c.QuitTimes = 1
	}
	if c.ScrollMargin < 0 {
		c.ScrollMargin = 0
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = MESSAGE_TIMEOUT
	}
	return c
}
