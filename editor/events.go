package editor

import "drawboard/shape"

type Event interface {
	event()
}

type PointerDown struct {
	Pos   shape.Point
	Shift bool
}

type PointerMove struct {
	Pos shape.Point
}

// PointerUp ends the active gesture wherever the pointer is, on the canvas
// or not.
type PointerUp struct {
	Pos shape.Point
}

type Key struct {
	Name  string
	Shift bool
	Ctrl  bool
	Meta  bool
}

type SetMode struct {
	Mode Mode
}

// SetFill changes the fill picker and repaints the selection with it.
type SetFill struct {
	Color string
}

// SetBorder changes the border picker and repaints the selection with it.
type SetBorder struct {
	Color string
}

type DeleteSelection struct{}

// Nudge moves the selection by a fixed offset, carrying group members.
type Nudge struct {
	DX, DY float64
}

type ToggleGroup struct{}

// Cancel abandons the active gesture without committing a drawn shape.
type Cancel struct{}

func (PointerDown) event()     {}
func (PointerMove) event()     {}
func (PointerUp) event()       {}
func (Key) event()             {}
func (SetMode) event()         {}
func (SetFill) event()         {}
func (SetBorder) event()       {}
func (DeleteSelection) event() {}
func (Nudge) event()           {}
func (ToggleGroup) event()     {}
func (Cancel) event()          {}
