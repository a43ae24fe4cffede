package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// keyPress applies the global single-key shortcuts.
func keyPress(s State, k Key) State {
	shift := k.Shift
	if r, size := utf8.DecodeRuneInString(k.Name); size == len(k.Name) && unicode.IsUpper(r) {
		shift = true
	}

	switch strings.ToLower(k.Name) {
	case "r":
		s.Mode = ModeRectangle
	case "v":
		s.Mode = ModeSelect
	case "a":
		s.Mode = ModeArrow
	case "backspace", "delete":
		s.Board = s.Board.DeleteSelected()
	case "g":
		if shift || k.Ctrl || k.Meta {
			return s
		}
		s.Board = s.Board.ToggleGroup()
	}
	return s
}
