package shape

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func rect(x, y, w, h, rot float64) Rectangle {
	return Rectangle{ID: "r", X: x, Y: y, Width: w, Height: h, Rotation: rot}
}

func TestCenterInsideUnderRotation(t *testing.T) {
	r := rect(100, 50, 80, 30, 0)
	for i := 0; i < 32; i++ {
		r.Rotation = float64(i) * math.Pi / 16
		if !IsPointInRect(r.Center(), r) {
			t.Errorf("centre not inside at rotation %v", r.Rotation)
		}
	}
}

func TestIsPointInRect(t *testing.T) {
	tests := []struct {
		name string
		r    Rectangle
		p    Point
		want bool
	}{
		{"inside", rect(0, 0, 100, 50, 0), Point{50, 25}, true},
		{"on edge", rect(0, 0, 100, 50, 0), Point{100, 50}, true},
		{"outside right", rect(0, 0, 100, 50, 0), Point{101, 25}, false},
		// A 100x20 bar rotated 90 degrees stands upright around (50, 10).
		{"rotated tip inside", rect(0, 0, 100, 20, math.Pi/2), Point{50, 55}, true},
		{"rotated old end outside", rect(0, 0, 100, 20, math.Pi/2), Point{95, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPointInRect(tt.p, tt.r); got != tt.want {
				t.Errorf("IsPointInRect(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestScaleHandleAt(t *testing.T) {
	r := rect(10, 10, 100, 50, 0)
	tests := []struct {
		p    Point
		want Handle
	}{
		{Point{10, 10}, HandleNW},
		{Point{112, 8}, HandleNE},
		{Point{13, 58}, HandleSW},
		{Point{110, 60}, HandleSE},
		{Point{60, 10}, HandleN},
		{Point{60, 60}, HandleS},
		{Point{10, 35}, HandleW},
		{Point{110, 35}, HandleE},
		{Point{60, 35}, HandleNone},
		{Point{118, 60}, HandleNone},
	}
	for _, tt := range tests {
		if got := ScaleHandleAt(tt.p, r); got != tt.want {
			t.Errorf("ScaleHandleAt(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestScaleHandleFollowsRotation(t *testing.T) {
	r := rect(0, 0, 100, 20, math.Pi)
	// Half a turn puts the unrotated se corner where nw used to be.
	if got := ScaleHandleAt(Point{0, 0}, r); got != HandleSE {
		t.Errorf("got %q, want se", got)
	}
}

func TestRotationZone(t *testing.T) {
	r := rect(100, 100, 100, 50, 0)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"just outside nw corner", Point{88, 88}, true},
		{"outside se corner", Point{212, 162}, true},
		{"inside margin", Point{95, 95}, false},
		{"inside body", Point{150, 125}, false},
		{"too far from corner", Point{70, 70}, false},
		{"outside edge midpoint", Point{150, 85}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPointNearRotationHandle(tt.p, r); got != tt.want {
				t.Errorf("IsPointNearRotationHandle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHandleAndRotationZonesExclusive(t *testing.T) {
	rects := []Rectangle{
		rect(100, 100, 100, 50, 0),
		rect(100, 100, 100, 50, 0.7),
		rect(300, 200, 12, 12, -1.3),
	}
	for _, r := range rects {
		c := r.Center()
		for x := c.X - 150; x <= c.X+150; x += 1.5 {
			for y := c.Y - 150; y <= c.Y+150; y += 1.5 {
				p := Point{x, y}
				if ScaleHandleAt(p, r) != HandleNone && IsPointNearRotationHandle(p, r) {
					t.Fatalf("point %v is both a scale handle and rotation zone of %+v", p, r)
				}
			}
		}
	}
}

func TestScaleRectangle(t *testing.T) {
	orig := rect(10, 10, 100, 50, 0)
	start := Point{0, 0}
	tests := []struct {
		handle     Handle
		delta      Point
		x, y, w, h float64
	}{
		{HandleSE, Point{100, 100}, 10, 10, 200, 150},
		{HandleSW, Point{-20, 10}, -10, 10, 120, 60},
		{HandleNE, Point{20, -10}, 10, 0, 120, 60},
		{HandleNW, Point{20, 10}, 30, 20, 80, 40},
		{HandleN, Point{5, -10}, 10, 0, 100, 60},
		{HandleS, Point{5, 10}, 10, 10, 100, 60},
		{HandleW, Point{10, 5}, 20, 10, 90, 50},
		{HandleE, Point{10, 5}, 10, 10, 110, 50},
	}
	for _, tt := range tests {
		t.Run(string(tt.handle), func(t *testing.T) {
			got := ScaleRectangle(orig, tt.handle, tt.delta, start, orig)
			if got.X != tt.x || got.Y != tt.y || got.Width != tt.w || got.Height != tt.h {
				t.Errorf("got (%v,%v %vx%v), want (%v,%v %vx%v)",
					got.X, got.Y, got.Width, got.Height, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestScaleUsesOriginalSnapshot(t *testing.T) {
	orig := rect(10, 10, 100, 50, 0)
	live := ScaleRectangle(orig, HandleSE, Point{50, 50}, Point{0, 0}, orig)
	live = ScaleRectangle(live, HandleSE, Point{60, 60}, Point{0, 0}, orig)
	if live.Width != 160 || live.Height != 110 {
		t.Errorf("got %vx%v, want 160x110", live.Width, live.Height)
	}
}

func TestScaleMinimumSize(t *testing.T) {
	orig := rect(10, 10, 100, 50, 0)
	huge := 1e9
	handles := []Handle{HandleNW, HandleNE, HandleSW, HandleSE, HandleN, HandleS, HandleE, HandleW}
	for _, h := range handles {
		for _, d := range []Point{{huge, huge}, {-huge, -huge}, {huge, -huge}, {-huge, huge}} {
			got := ScaleRectangle(orig, h, d, Point{}, orig)
			if got.Width < MinSize || got.Height < MinSize {
				t.Errorf("handle %s delta %v gave %vx%v", h, d, got.Width, got.Height)
			}
		}
	}
}

func TestScaleKeepsOppositeCorner(t *testing.T) {
	orig := rect(10, 10, 100, 50, 0)
	got := ScaleRectangle(orig, HandleNW, Point{500, 500}, Point{}, orig)
	if got.X+got.Width != 110 || got.Y+got.Height != 60 {
		t.Errorf("se corner moved to (%v,%v)", got.X+got.Width, got.Y+got.Height)
	}
}

func TestIsPointNearArrow(t *testing.T) {
	a := Arrow{Start: Point{0, 0}, End: Point{100, 0}}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{50, 4}, true},
		{Point{50, 5}, false},
		{Point{-3, 0}, true},
		{Point{-6, 0}, false},
		{Point{103, 2}, true},
	}
	for _, tt := range tests {
		if got := IsPointNearArrow(tt.p, a); got != tt.want {
			t.Errorf("IsPointNearArrow(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if IsPointNearArrow(Point{0, 0}, Arrow{}) {
		t.Error("zero-length arrow should never be hit")
	}
}

func TestArrowEndpointAt(t *testing.T) {
	a := Arrow{Start: Point{0, 0}, End: Point{100, 0}}
	if got := ArrowEndpointAt(Point{3, 3}, a); got != EndpointStart {
		t.Errorf("got %v, want start", got)
	}
	if got := ArrowEndpointAt(Point{95, 0}, a); got != EndpointEnd {
		t.Errorf("got %v, want end", got)
	}
	if got := ArrowEndpointAt(Point{50, 0}, a); got != EndpointNone {
		t.Errorf("got %v, want none", got)
	}
	degenerate := Arrow{Start: Point{40, 40}, End: Point{40, 40}}
	if got := ArrowEndpointAt(Point{42, 41}, degenerate); got != EndpointStart {
		t.Errorf("degenerate arrow resolved to %v, want start", got)
	}
}

func TestRotationHandle(t *testing.T) {
	r := rect(0, 0, 60, 80, 0)
	got := RotationHandle(r)
	// diagonal 100 -> 50 + 30 to the right of centre (30, 40).
	if math.Abs(got.X-110) > epsilon || math.Abs(got.Y-40) > epsilon {
		t.Errorf("got %v, want (110, 40)", got)
	}
	r.Rotation = math.Pi / 2
	got = RotationHandle(r)
	if math.Abs(got.X-30) > epsilon || math.Abs(got.Y-120) > epsilon {
		t.Errorf("got %v, want (30, 120)", got)
	}
}

func TestNewRectangleNormalises(t *testing.T) {
	r := NewRectangle(Point{110, 60}, Point{10, 10}, "#fff", "#000")
	if r.X != 10 || r.Y != 10 || r.Width != 100 || r.Height != 50 || r.Rotation != 0 {
		t.Errorf("got %+v", r)
	}
	if r.ID == "" {
		t.Error("rectangle without id")
	}
	if other := NewRectangle(Point{}, Point{}, "", ""); other.ID == r.ID {
		t.Error("ids should be unique")
	}
}

func TestRotateAbout(t *testing.T) {
	got := RotateAbout(Point{2, 1}, math.Pi/2, Point{1, 1})
	if math.Abs(got.X-1) > epsilon || math.Abs(got.Y-2) > epsilon {
		t.Errorf("got %v, want (1, 2)", got)
	}
}
