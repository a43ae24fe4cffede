package board

import "drawboard/shape"

// SelectRectangle selects the rectangle with the given id. Without additive,
// every other shape, arrows included, is deselected first.
func (b Board) SelectRectangle(id string, additive bool) Board {
	b = b.mapRectangles(func(r shape.Rectangle) shape.Rectangle {
		if r.ID == id {
			r.Selected = true
		} else if !additive {
			r.Selected = false
		}
		return r
	})
	if !additive {
		b = b.clearArrowSelection()
	}
	return b
}

// SelectArrow selects the arrow with the given id. Rectangle selection is
// always dropped; other arrows survive only with additive.
func (b Board) SelectArrow(id string, additive bool) Board {
	b = b.clearRectangleSelection()
	return b.mapArrows(func(a shape.Arrow) shape.Arrow {
		if a.ID == id {
			a.Selected = true
		} else if !additive {
			a.Selected = false
		}
		return a
	})
}

func (b Board) ClearSelection() Board {
	return b.clearRectangleSelection().clearArrowSelection()
}

func (b Board) clearRectangleSelection() Board {
	return b.mapRectangles(func(r shape.Rectangle) shape.Rectangle {
		r.Selected = false
		return r
	})
}

func (b Board) clearArrowSelection() Board {
	return b.mapArrows(func(a shape.Arrow) shape.Arrow {
		a.Selected = false
		return a
	})
}

func (b Board) SelectedRectangles() []shape.Rectangle {
	var out []shape.Rectangle
	for _, r := range b.Rectangles {
		if r.Selected {
			out = append(out, r)
		}
	}
	return out
}

func (b Board) SelectedArrows() []shape.Arrow {
	var out []shape.Arrow
	for _, a := range b.Arrows {
		if a.Selected {
			out = append(out, a)
		}
	}
	return out
}

func (b Board) HasSelection() bool {
	return len(b.SelectedRectangles()) > 0 || len(b.SelectedArrows()) > 0
}

// Recolor paints selected rectangles with fill and border, and selected
// arrows with border.
func (b Board) Recolor(fill, border string) Board {
	b = b.mapRectangles(func(r shape.Rectangle) shape.Rectangle {
		if r.Selected {
			r.FillColor = fill
			r.BorderColor = border
		}
		return r
	})
	return b.mapArrows(func(a shape.Arrow) shape.Arrow {
		if a.Selected {
			a.Color = border
		}
		return a
	})
}

// DeleteSelected removes every selected shape. Deleted rectangles leave
// their groups, and a group left with fewer than two members is dropped.
func (b Board) DeleteSelected() Board {
	deleted := make(map[string]bool)
	rects := make([]shape.Rectangle, 0, len(b.Rectangles))
	for _, r := range b.Rectangles {
		if r.Selected {
			deleted[r.ID] = true
			continue
		}
		rects = append(rects, r)
	}
	arrows := make([]shape.Arrow, 0, len(b.Arrows))
	for _, a := range b.Arrows {
		if !a.Selected {
			arrows = append(arrows, a)
		}
	}

	groups := make([]shape.Group, 0, len(b.Groups))
	for _, g := range b.Groups {
		members := make([]string, 0, len(g.RectangleIDs))
		for _, id := range g.RectangleIDs {
			if !deleted[id] {
				members = append(members, id)
			}
		}
		if len(members) < 2 {
			continue
		}
		groups = append(groups, shape.Group{ID: g.ID, RectangleIDs: members})
	}

	return Board{Rectangles: rects, Arrows: arrows, Groups: groups}
}
