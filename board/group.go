package board

import "drawboard/shape"

// GroupOf returns the first group the rectangle belongs to.
func (b Board) GroupOf(rectID string) (shape.Group, bool) {
	for _, g := range b.Groups {
		if g.Contains(rectID) {
			return g, true
		}
	}
	return shape.Group{}, false
}

func (b Board) Group(id string) (shape.Group, bool) {
	for _, g := range b.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return shape.Group{}, false
}

// GroupSelected creates a group from the selected rectangles. Fewer than two
// selected rectangles is a no-op. Rectangles already in another group are
// not checked and may end up in both.
func (b Board) GroupSelected() Board {
	selected := b.SelectedRectangles()
	if len(selected) < 2 {
		return b
	}
	ids := make([]string, len(selected))
	for i, r := range selected {
		ids[i] = r.ID
	}
	groups := make([]shape.Group, len(b.Groups), len(b.Groups)+1)
	copy(groups, b.Groups)
	b.Groups = append(groups, shape.Group{ID: shape.NewID(), RectangleIDs: ids})
	return b
}

// UngroupSelected dissolves every group that has a selected rectangle as a
// member, whole.
func (b Board) UngroupSelected() Board {
	selected := b.SelectedRectangles()
	if len(selected) == 0 {
		return b
	}
	groups := make([]shape.Group, 0, len(b.Groups))
	for _, g := range b.Groups {
		hit := false
		for _, r := range selected {
			if g.Contains(r.ID) {
				hit = true
				break
			}
		}
		if !hit {
			groups = append(groups, g)
		}
	}
	b.Groups = groups
	return b
}

// AnySelectedGrouped reports whether a selected rectangle belongs to a group.
func (b Board) AnySelectedGrouped() bool {
	for _, r := range b.SelectedRectangles() {
		if _, ok := b.GroupOf(r.ID); ok {
			return true
		}
	}
	return false
}

// ToggleGroup ungroups when any selected rectangle is grouped and groups
// otherwise.
func (b Board) ToggleGroup() Board {
	if len(b.SelectedRectangles()) == 0 {
		return b
	}
	if b.AnySelectedGrouped() {
		return b.UngroupSelected()
	}
	return b.GroupSelected()
}

// GroupCenter is the mean of the member rectangles' centres.
func (b Board) GroupCenter(g shape.Group) shape.Point {
	var sum shape.Point
	n := 0
	for _, r := range b.Rectangles {
		if g.Contains(r.ID) {
			sum = sum.Add(r.Center())
			n++
		}
	}
	if n == 0 {
		return shape.Point{}
	}
	return shape.Point{X: sum.X / float64(n), Y: sum.Y / float64(n)}
}

// withGroupMembers expands ids with the members of every group they are in.
func (b Board) withGroupMembers(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	for _, g := range b.Groups {
		for _, id := range ids {
			if g.Contains(id) {
				for _, member := range g.RectangleIDs {
					set[member] = true
				}
				break
			}
		}
	}
	return set
}

// MoveRectangles translates the given rectangles, carrying along the rest of
// any group they belong to. Each rectangle moves once.
func (b Board) MoveRectangles(ids []string, dx, dy float64) Board {
	moving := b.withGroupMembers(ids)
	return b.mapRectangles(func(r shape.Rectangle) shape.Rectangle {
		if moving[r.ID] {
			r.X += dx
			r.Y += dy
		}
		return r
	})
}

// RotateGroup turns every member of g by angle around center, both its
// position and its own rotation.
func (b Board) RotateGroup(g shape.Group, angle float64, center shape.Point) Board {
	return b.mapRectangles(func(r shape.Rectangle) shape.Rectangle {
		if !g.Contains(r.ID) {
			return r
		}
		c := shape.RotateAbout(r.Center(), angle, center)
		r.X = c.X - r.Width/2
		r.Y = c.Y - r.Height/2
		r.Rotation += angle
		return r
	})
}

func (b Board) SetRotation(ids []string, angle float64) Board {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return b.mapRectangles(func(r shape.Rectangle) shape.Rectangle {
		if set[r.ID] {
			r.Rotation = angle
		}
		return r
	})
}

func (b Board) MoveArrows(ids []string, dx, dy float64) Board {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	d := shape.Point{X: dx, Y: dy}
	return b.mapArrows(func(a shape.Arrow) shape.Arrow {
		if set[a.ID] {
			a.Start = a.Start.Add(d)
			a.End = a.End.Add(d)
		}
		return a
	})
}

func (b Board) SetArrowEndpoint(id string, end shape.Endpoint, p shape.Point) Board {
	return b.mapArrows(func(a shape.Arrow) shape.Arrow {
		if a.ID != id {
			return a
		}
		switch end {
		case shape.EndpointStart:
			a.Start = p
		case shape.EndpointEnd:
			a.End = p
		}
		return a
	})
}
