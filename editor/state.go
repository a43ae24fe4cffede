// Package editor interprets pointer and keyboard input against the drawing.
//
// The whole editor is one State value. Reduce takes a State and an Event and
// returns the next State without side effects; the active gesture is a
// single tagged union, so two gestures can never be live at once. Session
// wraps the reducer with the one effect it needs: holding pointer capture
// for exactly the lifetime of a gesture.
package editor

import (
	"fmt"

	"drawboard/board"
	"drawboard/shape"
)

type Mode int

const (
	ModeSelect Mode = iota
	ModeRectangle
	ModeArrow
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeRectangle:
		return "rectangle"
	case ModeArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "select", "v":
		return ModeSelect, nil
	case "rectangle", "rect", "r":
		return ModeRectangle, nil
	case "arrow", "a":
		return ModeArrow, nil
	}
	return ModeSelect, fmt.Errorf("unknown mode %q", s)
}

// Gesture is one of Idle, DrawingRectangle, DrawingArrow, Dragging,
// Rotating, Scaling or DraggingArrowEndpoint.
type Gesture interface {
	Name() string
	gesture()
}

type Idle struct{}

type DrawingRectangle struct {
	Anchor  shape.Point
	Current shape.Rectangle
}

type DrawingArrow struct {
	Current shape.Arrow
}

type DragTarget int

const (
	DragRectangles DragTarget = iota
	DragArrows
)

// Dragging moves the selection so the grabbed shape (ID) keeps Offset
// between its origin and the pointer. Arrows use their start as origin.
type Dragging struct {
	Target DragTarget
	ID     string
	Offset shape.Point
}

// Rotating turns RectID, or its whole group when GroupID is set. Last is the
// group angle already applied, so each move adds only the difference.
type Rotating struct {
	RectID  string
	GroupID string
	Start   float64
	Last    float64
}

// Scaling resizes RectID against Original, the rectangle as it was when the
// handle was grabbed at Start.
type Scaling struct {
	RectID   string
	Handle   shape.Handle
	Start    shape.Point
	Original shape.Rectangle
}

type DraggingArrowEndpoint struct {
	ArrowID  string
	Endpoint shape.Endpoint
}

func (Idle) Name() string                  { return "idle" }
func (DrawingRectangle) Name() string      { return "drawingRectangle" }
func (DrawingArrow) Name() string          { return "drawingArrow" }
func (Dragging) Name() string              { return "dragging" }
func (Rotating) Name() string              { return "rotating" }
func (Scaling) Name() string               { return "scaling" }
func (DraggingArrowEndpoint) Name() string { return "draggingArrowEndpoint" }

func (Idle) gesture()                  {}
func (DrawingRectangle) gesture()      {}
func (DrawingArrow) gesture()          {}
func (Dragging) gesture()              {}
func (Rotating) gesture()              {}
func (Scaling) gesture()               {}
func (DraggingArrowEndpoint) gesture() {}

const (
	DefaultFill       = "#3b82f6"
	DefaultBorder     = "#1e40af"
	DefaultArrowColor = "#000000"
)

type State struct {
	Board      board.Board
	Mode       Mode
	Gesture    Gesture
	Fill       string
	Border     string
	ArrowColor string
}

func New(fill, border, arrowColor string) State {
	return State{
		Mode:       ModeSelect,
		Gesture:    Idle{},
		Fill:       fill,
		Border:     border,
		ArrowColor: arrowColor,
	}
}

// Active reports whether a gesture is in progress.
func (s State) Active() bool {
	switch s.Gesture.(type) {
	case nil, Idle:
		return false
	}
	return true
}

func (s State) GestureName() string {
	if s.Gesture == nil {
		return Idle{}.Name()
	}
	return s.Gesture.Name()
}

// Pending returns the shape being drawn, if any.
func (s State) Pending() (*shape.Rectangle, *shape.Arrow) {
	switch g := s.Gesture.(type) {
	case DrawingRectangle:
		r := g.Current
		return &r, nil
	case DrawingArrow:
		a := g.Current
		return nil, &a
	}
	return nil, nil
}
