package main

import "drawboard/editor"

// nudgeFor maps a direction key to a selection offset of one terminal cell,
// two with shift held.
func (m *model) nudgeFor(key string) (editor.Nudge, bool) {
	speed := float64(m.getMoveSpeed(key))
	dx := speed * float64(m.config.CellWidth)
	dy := speed * float64(m.config.CellHeight)

	switch key {
	case "h", "left", "H", "shift+left":
		return editor.Nudge{DX: -dx}, true
	case "l", "right", "L", "shift+right":
		return editor.Nudge{DX: dx}, true
	case "k", "up", "K", "shift+up":
		return editor.Nudge{DY: -dy}, true
	case "j", "down", "J", "shift+down":
		return editor.Nudge{DY: dy}, true
	}
	return editor.Nudge{}, false
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
