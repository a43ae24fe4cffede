package editor

import "drawboard/shape"

type Cursor string

const (
	CursorDefault   Cursor = "default"
	CursorCrosshair Cursor = "crosshair"
	CursorGrab      Cursor = "grab"
	CursorGrabbing  Cursor = "grabbing"
	CursorMove      Cursor = "move"
	CursorNWResize  Cursor = "nw-resize"
	CursorNEResize  Cursor = "ne-resize"
	CursorNSResize  Cursor = "ns-resize"
	CursorEWResize  Cursor = "ew-resize"
)

func handleCursor(h shape.Handle) Cursor {
	switch h {
	case shape.HandleNW, shape.HandleSE:
		return CursorNWResize
	case shape.HandleNE, shape.HandleSW:
		return CursorNEResize
	case shape.HandleN, shape.HandleS:
		return CursorNSResize
	case shape.HandleE, shape.HandleW:
		return CursorEWResize
	}
	return CursorDefault
}

// CursorAt is the pointer feedback for hovering at p. It never changes state.
func CursorAt(s State, p shape.Point) Cursor {
	if s.Mode != ModeSelect {
		return CursorCrosshair
	}
	if s.Active() {
		return CursorGrabbing
	}

	cursor := CursorDefault
	for _, r := range s.Board.SelectedRectangles() {
		if shape.IsPointNearRotationHandle(p, r) {
			cursor = CursorGrab
			break
		}
		if h := shape.ScaleHandleAt(p, r); h != shape.HandleNone {
			cursor = handleCursor(h)
			break
		}
	}
	for _, a := range s.Board.SelectedArrows() {
		if shape.ArrowEndpointAt(p, a) != shape.EndpointNone {
			cursor = CursorMove
			break
		}
	}
	return cursor
}
