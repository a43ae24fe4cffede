// Package board holds the shape collections of a drawing and every operation
// that selects or mutates them.
//
// A Board is a value. Methods never modify the receiver's slices in place;
// they return a new Board, so an earlier Board stays valid after an edit.
package board

import (
	"fmt"

	"drawboard/shape"
)

type Board struct {
	Rectangles []shape.Rectangle
	Arrows     []shape.Arrow
	Groups     []shape.Group
}

func (b Board) Rectangle(id string) (shape.Rectangle, bool) {
	for _, r := range b.Rectangles {
		if r.ID == id {
			return r, true
		}
	}
	return shape.Rectangle{}, false
}

func (b Board) Arrow(id string) (shape.Arrow, bool) {
	for _, a := range b.Arrows {
		if a.ID == id {
			return a, true
		}
	}
	return shape.Arrow{}, false
}

// TopRectangleAt returns the first rectangle in collection order whose body
// contains p.
func (b Board) TopRectangleAt(p shape.Point) (shape.Rectangle, bool) {
	for _, r := range b.Rectangles {
		if shape.IsPointInRect(p, r) {
			return r, true
		}
	}
	return shape.Rectangle{}, false
}

// TopArrowAt returns the first arrow whose segment passes near p.
func (b Board) TopArrowAt(p shape.Point) (shape.Arrow, bool) {
	for _, a := range b.Arrows {
		if shape.IsPointNearArrow(p, a) {
			return a, true
		}
	}
	return shape.Arrow{}, false
}

func (b Board) AddRectangle(r shape.Rectangle) Board {
	rects := make([]shape.Rectangle, len(b.Rectangles), len(b.Rectangles)+1)
	copy(rects, b.Rectangles)
	b.Rectangles = append(rects, r)
	return b
}

func (b Board) AddArrow(a shape.Arrow) Board {
	arrows := make([]shape.Arrow, len(b.Arrows), len(b.Arrows)+1)
	copy(arrows, b.Arrows)
	b.Arrows = append(arrows, a)
	return b
}

// ReplaceRectangle swaps in r for the rectangle with the same id.
func (b Board) ReplaceRectangle(r shape.Rectangle) Board {
	return b.mapRectangles(func(old shape.Rectangle) shape.Rectangle {
		if old.ID == r.ID {
			return r
		}
		return old
	})
}

func (b Board) mapRectangles(fn func(shape.Rectangle) shape.Rectangle) Board {
	rects := make([]shape.Rectangle, len(b.Rectangles))
	for i, r := range b.Rectangles {
		rects[i] = fn(r)
	}
	b.Rectangles = rects
	return b
}

func (b Board) mapArrows(fn func(shape.Arrow) shape.Arrow) Board {
	arrows := make([]shape.Arrow, len(b.Arrows))
	for i, a := range b.Arrows {
		arrows[i] = fn(a)
	}
	b.Arrows = arrows
	return b
}

// Validate reports duplicate ids and undersized groups.
func (b Board) Validate() error {
	seen := make(map[string]bool)
	for _, r := range b.Rectangles {
		if seen[r.ID] {
			return fmt.Errorf("duplicate rectangle id %q", r.ID)
		}
		seen[r.ID] = true
	}
	seen = make(map[string]bool)
	for _, a := range b.Arrows {
		if seen[a.ID] {
			return fmt.Errorf("duplicate arrow id %q", a.ID)
		}
		seen[a.ID] = true
	}
	seen = make(map[string]bool)
	for _, g := range b.Groups {
		if seen[g.ID] {
			return fmt.Errorf("duplicate group id %q", g.ID)
		}
		seen[g.ID] = true
		if len(g.RectangleIDs) < 2 {
			return fmt.Errorf("group %q has %d members", g.ID, len(g.RectangleIDs))
		}
	}
	return nil
}
