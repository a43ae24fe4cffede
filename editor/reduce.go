package editor

import (
	"drawboard/board"
	"drawboard/shape"
)

// Reduce returns the state that follows ev.
func Reduce(s State, ev Event) State {
	if s.Gesture == nil {
		s.Gesture = Idle{}
	}
	switch ev := ev.(type) {
	case PointerDown:
		return pointerDown(s, ev)
	case PointerMove:
		return pointerMove(s, ev.Pos)
	case PointerUp:
		return pointerUp(s)
	case Key:
		return keyPress(s, ev)
	case SetMode:
		s.Mode = ev.Mode
	case SetFill:
		s.Fill = ev.Color
		s.Board = s.Board.Recolor(s.Fill, s.Border)
	case SetBorder:
		s.Border = ev.Color
		s.Board = s.Board.Recolor(s.Fill, s.Border)
	case DeleteSelection:
		s.Board = s.Board.DeleteSelected()
	case ToggleGroup:
		s.Board = s.Board.ToggleGroup()
	case Nudge:
		if s.Active() {
			return s
		}
		s.Board = nudge(s.Board, ev.DX, ev.DY)
	case Cancel:
		s.Gesture = Idle{}
	}
	return s
}

func pointerDown(s State, ev PointerDown) State {
	if s.Active() {
		return s
	}

	switch s.Mode {
	case ModeRectangle:
		s.Gesture = DrawingRectangle{
			Anchor:  ev.Pos,
			Current: shape.NewRectangle(ev.Pos, ev.Pos, s.Fill, s.Border),
		}
		return s
	case ModeArrow:
		s.Gesture = DrawingArrow{Current: shape.NewArrow(ev.Pos, ev.Pos, s.ArrowColor)}
		return s
	}

	// Rotation zones and outer handle halves lie outside the body, so
	// selected rectangles are checked for them before any body hit-test.
	for _, r := range s.Board.SelectedRectangles() {
		if g, ok := handleGesture(s.Board, r, ev.Pos); ok {
			s.Gesture = g
			return s
		}
	}

	if r, ok := s.Board.TopRectangleAt(ev.Pos); ok {
		if ev.Shift {
			s.Board = s.Board.SelectRectangle(r.ID, true)
		} else if !r.Selected {
			s.Board = s.Board.SelectRectangle(r.ID, false)
		}
		r.Selected = true
		if g, ok := handleGesture(s.Board, r, ev.Pos); ok {
			s.Gesture = g
			return s
		}
		s.Gesture = Dragging{
			Target: DragRectangles,
			ID:     r.ID,
			Offset: ev.Pos.Sub(shape.Point{X: r.X, Y: r.Y}),
		}
		return s
	}

	if a, ok := s.Board.TopArrowAt(ev.Pos); ok {
		s.Board = s.Board.SelectArrow(a.ID, ev.Shift)
		if end := shape.ArrowEndpointAt(ev.Pos, a); end != shape.EndpointNone {
			s.Gesture = DraggingArrowEndpoint{ArrowID: a.ID, Endpoint: end}
			return s
		}
		s.Gesture = Dragging{
			Target: DragArrows,
			ID:     a.ID,
			Offset: ev.Pos.Sub(a.Start),
		}
		return s
	}

	if !ev.Shift {
		s.Board = s.Board.ClearSelection()
	}
	return s
}

// handleGesture picks rotation over scaling for a point on a selected
// rectangle's controls.
func handleGesture(b board.Board, r shape.Rectangle, p shape.Point) (Gesture, bool) {
	if shape.IsPointNearRotationHandle(p, r) {
		if g, ok := b.GroupOf(r.ID); ok {
			return Rotating{
				RectID:  r.ID,
				GroupID: g.ID,
				Start:   shape.Angle(p, b.GroupCenter(g)),
			}, true
		}
		return Rotating{
			RectID: r.ID,
			Start:  shape.Angle(p, r.Center()) - r.Rotation,
		}, true
	}
	if h := shape.ScaleHandleAt(p, r); h != shape.HandleNone {
		return Scaling{RectID: r.ID, Handle: h, Start: p, Original: r}, true
	}
	return nil, false
}

func pointerMove(s State, p shape.Point) State {
	switch g := s.Gesture.(type) {
	case DrawingRectangle:
		g.Current = g.Current.Span(g.Anchor, p)
		s.Gesture = g
	case DrawingArrow:
		g.Current.End = p
		s.Gesture = g
	case Dragging:
		s.Board = drag(s.Board, g, p)
	case Rotating:
		s.Board, s.Gesture = rotate(s.Board, g, p)
	case Scaling:
		if r, ok := s.Board.Rectangle(g.RectID); ok {
			s.Board = s.Board.ReplaceRectangle(shape.ScaleRectangle(r, g.Handle, p, g.Start, g.Original))
		}
	case DraggingArrowEndpoint:
		s.Board = s.Board.SetArrowEndpoint(g.ArrowID, g.Endpoint, p)
	}
	return s
}

func drag(b board.Board, g Dragging, p shape.Point) board.Board {
	target := p.Sub(g.Offset)
	switch g.Target {
	case DragRectangles:
		r, ok := b.Rectangle(g.ID)
		if !ok {
			return b
		}
		ids := []string{g.ID}
		for _, sel := range b.SelectedRectangles() {
			if sel.ID != g.ID {
				ids = append(ids, sel.ID)
			}
		}
		return b.MoveRectangles(ids, target.X-r.X, target.Y-r.Y)
	case DragArrows:
		a, ok := b.Arrow(g.ID)
		if !ok {
			return b
		}
		ids := []string{g.ID}
		for _, sel := range b.SelectedArrows() {
			if sel.ID != g.ID {
				ids = append(ids, sel.ID)
			}
		}
		return b.MoveArrows(ids, target.X-a.Start.X, target.Y-a.Start.Y)
	}
	return b
}

func nudge(b board.Board, dx, dy float64) board.Board {
	var rects, arrows []string
	for _, r := range b.SelectedRectangles() {
		rects = append(rects, r.ID)
	}
	for _, a := range b.SelectedArrows() {
		arrows = append(arrows, a.ID)
	}
	return b.MoveRectangles(rects, dx, dy).MoveArrows(arrows, dx, dy)
}

func rotate(b board.Board, g Rotating, p shape.Point) (board.Board, Gesture) {
	r, ok := b.Rectangle(g.RectID)
	if !ok {
		return b, g
	}
	if g.GroupID != "" {
		grp, ok := b.Group(g.GroupID)
		if !ok {
			return b, g
		}
		center := b.GroupCenter(grp)
		angle := shape.Angle(p, center) - g.Start
		b = b.RotateGroup(grp, angle-g.Last, center)
		g.Last = angle
		return b, g
	}

	angle := shape.Angle(p, r.Center()) - g.Start
	ids := []string{r.ID}
	for _, sel := range b.SelectedRectangles() {
		if sel.ID == r.ID {
			continue
		}
		if _, grouped := b.GroupOf(sel.ID); !grouped {
			ids = append(ids, sel.ID)
		}
	}
	return b.SetRotation(ids, angle), g
}

// pointerUp commits a drawn shape and drops back to select mode; every other
// gesture just ends.
func pointerUp(s State) State {
	switch g := s.Gesture.(type) {
	case DrawingRectangle:
		s.Board = s.Board.AddRectangle(g.Current)
		s.Mode = ModeSelect
	case DrawingArrow:
		s.Board = s.Board.AddArrow(g.Current)
		s.Mode = ModeSelect
	}
	s.Gesture = Idle{}
	return s
}
