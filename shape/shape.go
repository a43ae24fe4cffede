package shape

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	MinSize            = 10.0
	HandleTolerance    = 8.0
	RotationMargin     = 10.0
	RotationCornerDist = 25.0
	RotationHandleGap  = 30.0
	ArrowHitDistance   = 5.0
	EndpointHitRadius  = 10.0
)

type Point struct {
	X, Y float64
}

func (p Point) vec() r2.Vec {
	return r2.Vec(p)
}

func (p Point) Sub(q Point) Point {
	return Point(r2.Sub(p.vec(), q.vec()))
}

func (p Point) Add(q Point) Point {
	return Point(r2.Add(p.vec(), q.vec()))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(p.vec(), q.vec()))
}

type Rectangle struct {
	ID          string
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Rotation    float64
	FillColor   string
	BorderColor string
	Selected    bool
}

// Center returns the point the rectangle rotates around.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners returns the unrotated corners in nw, ne, sw, se order.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
	}
}

// Arrow is a free-standing segment. StartRectID and EndRectID are carried
// but never populated; arrows do not follow rectangles.
type Arrow struct {
	ID          string
	Start       Point
	End         Point
	StartRectID string
	EndRectID   string
	Selected    bool
	Color       string
}

type Group struct {
	ID           string
	RectangleIDs []string
}

func (g Group) Contains(rectID string) bool {
	for _, id := range g.RectangleIDs {
		if id == rectID {
			return true
		}
	}
	return false
}

type Handle string

const (
	HandleNone Handle = ""
	HandleNW   Handle = "nw"
	HandleNE   Handle = "ne"
	HandleSW   Handle = "sw"
	HandleSE   Handle = "se"
	HandleN    Handle = "n"
	HandleS    Handle = "s"
	HandleE    Handle = "e"
	HandleW    Handle = "w"
)

type Endpoint int

const (
	EndpointNone Endpoint = iota
	EndpointStart
	EndpointEnd
)

func (e Endpoint) String() string {
	switch e {
	case EndpointStart:
		return "start"
	case EndpointEnd:
		return "end"
	default:
		return "none"
	}
}

// NewID returns a process-unique opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// NewRectangle builds an unselected, unrotated rectangle spanning anchor and
// current, whichever way the pointer was dragged.
func NewRectangle(anchor, current Point, fill, border string) Rectangle {
	r := Rectangle{
		ID:          NewID(),
		FillColor:   fill,
		BorderColor: border,
	}
	return r.Span(anchor, current)
}

// Span returns r resized to the box between anchor and current.
func (r Rectangle) Span(anchor, current Point) Rectangle {
	width := current.X - anchor.X
	height := current.Y - anchor.Y
	r.X = anchor.X
	if width < 0 {
		r.X = current.X
		width = -width
	}
	r.Y = anchor.Y
	if height < 0 {
		r.Y = current.Y
		height = -height
	}
	r.Width = width
	r.Height = height
	return r
}

func NewArrow(start, end Point, color string) Arrow {
	return Arrow{
		ID:    NewID(),
		Start: start,
		End:   end,
		Color: color,
	}
}
