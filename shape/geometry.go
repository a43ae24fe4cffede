package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// toLocal maps p into the rectangle's unrotated frame.
func toLocal(p Point, r Rectangle) Point {
	if r.Rotation == 0 {
		return p
	}
	return Point(r2.Rotate(p.vec(), -r.Rotation, r.Center().vec()))
}

// RotateAbout rotates p by angle radians around c.
func RotateAbout(p Point, angle float64, c Point) Point {
	if angle == 0 {
		return p
	}
	return Point(r2.Rotate(p.vec(), angle, c.vec()))
}

// Angle returns the direction of p as seen from c.
func Angle(p, c Point) float64 {
	d := p.Sub(c)
	return math.Atan2(d.Y, d.X)
}

func IsPointInRect(p Point, r Rectangle) bool {
	l := toLocal(p, r)
	return l.X >= r.X && l.X <= r.X+r.Width &&
		l.Y >= r.Y && l.Y <= r.Y+r.Height
}

type handlePoint struct {
	handle Handle
	at     Point
}

func handlePoints(r Rectangle) []handlePoint {
	return []handlePoint{
		{HandleNW, Point{r.X, r.Y}},
		{HandleNE, Point{r.X + r.Width, r.Y}},
		{HandleSW, Point{r.X, r.Y + r.Height}},
		{HandleSE, Point{r.X + r.Width, r.Y + r.Height}},
		{HandleN, Point{r.X + r.Width/2, r.Y}},
		{HandleS, Point{r.X + r.Width/2, r.Y + r.Height}},
		{HandleW, Point{r.X, r.Y + r.Height/2}},
		{HandleE, Point{r.X + r.Width, r.Y + r.Height/2}},
	}
}

// HandlePoints returns the eight scale handle positions in the unrotated frame.
func HandlePoints(r Rectangle) []Point {
	hps := handlePoints(r)
	pts := make([]Point, len(hps))
	for i, hp := range hps {
		pts[i] = hp.at
	}
	return pts
}

// ScaleHandleAt returns the handle under p, or HandleNone.
func ScaleHandleAt(p Point, r Rectangle) Handle {
	l := toLocal(p, r)
	for _, hp := range handlePoints(r) {
		if math.Abs(l.X-hp.at.X) < HandleTolerance && math.Abs(l.Y-hp.at.Y) < HandleTolerance {
			return hp.handle
		}
	}
	return HandleNone
}

// IsPointNearRotationHandle reports whether p sits just outside one of the
// corners: beyond the 10px margin around the body, yet within 25px of a corner.
func IsPointNearRotationHandle(p Point, r Rectangle) bool {
	l := toLocal(p, r)
	outside := l.X < r.X-RotationMargin ||
		l.X > r.X+r.Width+RotationMargin ||
		l.Y < r.Y-RotationMargin ||
		l.Y > r.Y+r.Height+RotationMargin
	if !outside {
		return false
	}
	for _, c := range r.Corners() {
		if l.Distance(c) < RotationCornerDist {
			return true
		}
	}
	return false
}

// RotationHandle is where the rotation knob is drawn. Hit-testing uses the
// corner zones of IsPointNearRotationHandle instead.
func RotationHandle(r Rectangle) Point {
	c := r.Center()
	dist := math.Hypot(r.Width, r.Height)/2 + RotationHandleGap
	return Point{
		X: c.X + math.Cos(r.Rotation)*dist,
		Y: c.Y + math.Sin(r.Rotation)*dist,
	}
}

// ScaleRectangle resizes r by dragging handle from start to current. The
// deltas are applied to original, the snapshot taken when the drag began,
// so successive moves never accumulate drift.
func ScaleRectangle(r Rectangle, handle Handle, current, start Point, original Rectangle) Rectangle {
	dx := current.X - start.X
	dy := current.Y - start.Y
	base := original
	out := r

	switch handle {
	case HandleSE:
		out.Width = math.Max(MinSize, base.Width+dx)
		out.Height = math.Max(MinSize, base.Height+dy)
		out.X = base.X
		out.Y = base.Y
	case HandleSW:
		out.Width = math.Max(MinSize, base.Width-dx)
		out.Height = math.Max(MinSize, base.Height+dy)
		out.X = base.X + base.Width - out.Width
		out.Y = base.Y
	case HandleNE:
		out.Width = math.Max(MinSize, base.Width+dx)
		out.Height = math.Max(MinSize, base.Height-dy)
		out.X = base.X
		out.Y = base.Y + base.Height - out.Height
	case HandleNW:
		out.Width = math.Max(MinSize, base.Width-dx)
		out.Height = math.Max(MinSize, base.Height-dy)
		out.X = base.X + base.Width - out.Width
		out.Y = base.Y + base.Height - out.Height
	case HandleN:
		out.Height = math.Max(MinSize, base.Height-dy)
		out.X = base.X
		out.Y = base.Y + base.Height - out.Height
	case HandleS:
		out.Height = math.Max(MinSize, base.Height+dy)
		out.X = base.X
		out.Y = base.Y
	case HandleW:
		out.Width = math.Max(MinSize, base.Width-dx)
		out.X = base.X + base.Width - out.Width
		out.Y = base.Y
	case HandleE:
		out.Width = math.Max(MinSize, base.Width+dx)
		out.X = base.X
		out.Y = base.Y
	}
	return out
}

// IsPointNearArrow measures the distance from p to the arrow's segment.
// Zero-length arrows are never hit.
func IsPointNearArrow(p Point, a Arrow) bool {
	ab := r2.Sub(a.End.vec(), a.Start.vec())
	lenSq := r2.Dot(ab, ab)
	if lenSq == 0 {
		return false
	}
	t := r2.Dot(r2.Sub(p.vec(), a.Start.vec()), ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := r2.Add(a.Start.vec(), r2.Scale(t, ab))
	return r2.Norm(r2.Sub(p.vec(), closest)) < ArrowHitDistance
}

// ArrowEndpointAt reports which endpoint p is on. Start wins when both are
// in range.
func ArrowEndpointAt(p Point, a Arrow) Endpoint {
	if p.Distance(a.Start) < EndpointHitRadius {
		return EndpointStart
	}
	if p.Distance(a.End) < EndpointHitRadius {
		return EndpointEnd
	}
	return EndpointNone
}
