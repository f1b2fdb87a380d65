package editor

import (
	"errors"

	"github.com/rivo/uniseg"
)

var ErrPromptCanceled = errors.New("user canceled the input prompt")

// PromptCallback receives every key pressed in a prompt together with the
// input typed so far.
type PromptCallback interface {
	OnKey(input string, key Key)
}

// removeLastGrapheme drops the last user-perceived character of s.
func removeLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}

// Prompt shows prompt in the message bar and collects input until the user
// confirms a non-empty input with Enter or cancels with Escape. The format
// must contain one %s for the input. Cancelling returns ErrPromptCanceled.
// The callback, if any, runs after every key, including the last one. A
// failing key source is reported to the callback as Escape.
func (e *Editor) Prompt(prompt string, callback PromptCallback) (string, error) {
	var input string
	notify := func(k Key) {
		if callback != nil {
			callback.OnKey(input, k)
		}
	}

	for {
		e.SetStatusMessage(prompt, input)
		e.RefreshScreen()

		key, err := e.keys.ReadKey()
		if err != nil {
			// Let the callback clean up as if the prompt was cancelled
			notify(ESCAPE)
			return "", err
		}

		switch {
		case key == RESIZE_EVENT:
			e.Redraw()
			continue

		case key == DELETE_KEY || key == BACKSPACE || key == withControlKey('h'):
			if input != "" {
				input = removeLastGrapheme(input)
			}

		case key == ESCAPE:
			e.SetStatusMessage("")
			notify(key)
			return "", ErrPromptCanceled

		case key == ENTER:
			if input != "" {
				e.SetStatusMessage("")
				notify(key)
				return input, nil
			}

		case key < 256 && !isControl(key):
			input += string([]byte{byte(key)})
		}

		notify(key)
	}
}
