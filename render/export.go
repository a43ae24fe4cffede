package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	legendFontSize   = 12.0
	legendLineHeight = 16.0
	legendPadding    = 8.0
)

// DefaultLegend lists the keyboard shortcuts printed under an export.
var DefaultLegend = []string{
	"V select   R rectangle   A arrow   G group/ungroup   Del delete",
	"drag body: move   corner handles: scale   just outside a corner: rotate",
}

type Options struct {
	Width  int
	Height int
	// Legend lines are drawn in a strip below the canvas when non-empty.
	Legend []string
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = CanvasWidth
	}
	if h <= 0 {
		h = CanvasHeight
	}
	return w, h
}

// LegendHeight is the pixel height of the strip holding n legend lines.
func LegendHeight(n int) int {
	if n == 0 {
		return 0
	}
	return int(2*legendPadding + float64(n)*legendLineHeight)
}

// Image paints scene scaled from the 1200x800 canvas to width x height.
func Image(scene Scene, width, height int) image.Image {
	return newContext(scene, width, height, 0).Image()
}

func newContext(scene Scene, width, height, extra int) *gg.Context {
	dc := gg.NewContext(width, height+extra)
	dc.Push()
	dc.Scale(float64(width)/CanvasWidth, float64(height)/CanvasHeight)
	Draw(dc, scene)
	dc.Pop()
	return dc
}

// ExportPNG renders scene and writes it to path.
func ExportPNG(path string, scene Scene, opts Options) error {
	w, h := opts.size()
	extra := LegendHeight(len(opts.Legend))
	dc := newContext(scene, w, h, extra)

	if extra > 0 {
		if err := drawLegend(dc, opts.Legend, float64(h)); err != nil {
			return err
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func drawLegend(dc *gg.Context, lines []string, top float64) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    legendFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)

	dc.SetColor(color.Gray{Y: 0xf0})
	dc.DrawRectangle(0, top, float64(dc.Width()), float64(dc.Height())-top)
	dc.Fill()

	dc.SetColor(color.Gray{Y: 0xc0})
	dc.SetLineWidth(1)
	dc.DrawLine(0, top+0.5, float64(dc.Width()), top+0.5)
	dc.Stroke()

	dc.SetColor(color.Black)
	for i, line := range lines {
		y := top + legendPadding + float64(i+1)*legendLineHeight - 4
		dc.DrawString(line, legendPadding, y)
	}
	return nil
}
