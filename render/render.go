// Package render paints a board onto a gg context.
package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"drawboard/editor"
	"drawboard/shape"
)

const (
	CanvasWidth  = 1200
	CanvasHeight = 800

	headLength = 15.0
	handleSize = 6.0
	knobRadius = 6.0
)

var (
	selectionOutline = color.RGBA{0xff, 0x00, 0x00, 0xff}
	handleFill       = color.RGBA{0x00, 0x66, 0xff, 0xff}
	selectedArrow    = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
)

// Scene is everything a repaint needs.
type Scene struct {
	Rectangles   []shape.Rectangle
	Arrows       []shape.Arrow
	PendingRect  *shape.Rectangle
	PendingArrow *shape.Arrow
}

// SceneOf captures the committed shapes and any in-progress shape of s.
func SceneOf(s editor.State) Scene {
	rect, arrow := s.Pending()
	return Scene{
		Rectangles:   s.Board.Rectangles,
		Arrows:       s.Board.Arrows,
		PendingRect:  rect,
		PendingArrow: arrow,
	}
}

// ParseColor reads a #rrggbb colour, falling back to black.
func ParseColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}

func withAlpha(hex string, a uint8) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{A: a}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Draw repaints the whole context: rectangles, then arrows, then the shape
// being drawn.
func Draw(dc *gg.Context, scene Scene) {
	dc.SetColor(color.White)
	dc.Clear()

	for _, r := range scene.Rectangles {
		drawRectangle(dc, r)
		if r.Selected {
			drawRotationKnob(dc, r)
		}
	}
	for _, a := range scene.Arrows {
		drawArrow(dc, a)
	}

	if r := scene.PendingRect; r != nil {
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.SetColor(withAlpha(r.FillColor, 0x80))
		dc.FillPreserve()
		dc.SetColor(ParseColor(r.BorderColor))
		dc.SetLineWidth(2)
		dc.Stroke()
	}
	if a := scene.PendingArrow; a != nil {
		dc.SetColor(color.Black)
		dc.SetLineWidth(2)
		dc.DrawLine(a.Start.X, a.Start.Y, a.End.X, a.End.Y)
		dc.Stroke()
	}
}

func drawRectangle(dc *gg.Context, r shape.Rectangle) {
	c := r.Center()
	dc.Push()
	defer dc.Pop()
	if r.Rotation != 0 {
		dc.RotateAbout(r.Rotation, c.X, c.Y)
	}

	dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	dc.SetColor(ParseColor(r.FillColor))
	dc.FillPreserve()
	dc.SetColor(ParseColor(r.BorderColor))
	dc.SetLineWidth(2)
	dc.Stroke()

	if !r.Selected {
		return
	}

	dc.SetColor(selectionOutline)
	dc.SetLineWidth(3)
	dc.SetDash(5, 5)
	dc.DrawRectangle(r.X-5, r.Y-5, r.Width+10, r.Height+10)
	dc.Stroke()
	dc.SetDash()

	dc.SetColor(handleFill)
	for _, h := range shape.HandlePoints(r) {
		dc.DrawRectangle(h.X-handleSize/2, h.Y-handleSize/2, handleSize, handleSize)
		dc.Fill()
	}
}

// drawRotationKnob marks a selected rectangle as rotatable: a stalk off the
// east edge ending in a knob.
func drawRotationKnob(dc *gg.Context, r shape.Rectangle) {
	c := r.Center()
	edge := shape.RotateAbout(shape.Point{X: r.X + r.Width, Y: c.Y}, r.Rotation, c)
	knob := shape.RotationHandle(r)

	dc.SetColor(handleFill)
	dc.SetLineWidth(2)
	dc.DrawLine(edge.X, edge.Y, knob.X, knob.Y)
	dc.Stroke()

	dc.DrawCircle(knob.X, knob.Y, knobRadius)
	dc.SetColor(handleFill)
	dc.FillPreserve()
	dc.SetColor(color.White)
	dc.SetLineWidth(2)
	dc.Stroke()
}

func drawArrow(dc *gg.Context, a shape.Arrow) {
	if a.Selected {
		dc.SetColor(selectedArrow)
		dc.SetLineWidth(3)
	} else {
		dc.SetColor(ParseColor(a.Color))
		dc.SetLineWidth(2)
	}

	dc.DrawLine(a.Start.X, a.Start.Y, a.End.X, a.End.Y)
	dc.Stroke()

	angle := math.Atan2(a.End.Y-a.Start.Y, a.End.X-a.Start.X)
	for _, side := range []float64{-math.Pi / 6, math.Pi / 6} {
		dc.MoveTo(a.End.X, a.End.Y)
		dc.LineTo(a.End.X-headLength*math.Cos(angle+side), a.End.Y-headLength*math.Sin(angle+side))
	}
	dc.Stroke()

	if !a.Selected {
		return
	}
	for _, p := range []shape.Point{a.Start, a.End} {
		dc.DrawCircle(p.X, p.Y, knobRadius)
		dc.SetColor(selectedArrow)
		dc.FillPreserve()
		dc.SetColor(color.White)
		dc.SetLineWidth(2)
		dc.Stroke()
	}
}
