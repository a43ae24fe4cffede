package main

import (
	"fmt"
	"time"

	"drawboard/render"
)

func (m *model) legend() []string {
	if !m.config.Legend {
		return nil
	}
	return render.DefaultLegend
}

// exportPNG writes the board, without any shape still being drawn, to a
// timestamped file in the save directory.
func (m *model) exportPNG(now time.Time) (string, error) {
	st := m.session.State()
	scene := render.Scene{
		Rectangles: st.Board.Rectangles,
		Arrows:     st.Board.Arrows,
	}
	if len(scene.Rectangles) == 0 && len(scene.Arrows) == 0 {
		return "", fmt.Errorf("nothing to export")
	}

	filename := m.config.GetSavePath(fmt.Sprintf("drawboard-%s.png", now.Format("20060102-150405")))
	opts := render.Options{
		Width:  render.CanvasWidth,
		Height: render.CanvasHeight,
		Legend: m.legend(),
	}
	if err := render.ExportPNG(filename, scene, opts); err != nil {
		return "", err
	}
	m.log.Info("exported png", "path", filename, "rectangles", len(scene.Rectangles), "arrows", len(scene.Arrows))
	return filename, nil
}
