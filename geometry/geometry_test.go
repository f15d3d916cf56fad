package geometry

import (
	"testing"
)

func TestRectDerivedPoints(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 50}

	if got := r.Right(); got != 110 {
		t.Errorf("Right() = %v, want 110", got)
	}
	if got := r.Bottom(); got != 70 {
		t.Errorf("Bottom() = %v, want 70", got)
	}
	if got := r.Center(); got != (Point{X: 60, Y: 45}) {
		t.Errorf("Center() = %v, want (60,45)", got)
	}
	if got := r.North(); got != (Point{X: 60, Y: 20}) {
		t.Errorf("North() = %v, want (60,20)", got)
	}
	if got := r.East(); got != (Point{X: 110, Y: 45}) {
		t.Errorf("East() = %v, want (110,45)", got)
	}
	if got := r.SouthWest(); got != (Point{X: 10, Y: 70}) {
		t.Errorf("SouthWest() = %v, want (10,70)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{5, 5}, true},
		{"top-left corner", Point{0, 0}, true},
		{"bottom-right corner", Point{10, 10}, true},
		{"on right edge", Point{10, 5}, true},
		{"just outside right", Point{10.001, 5}, false},
		{"above", Point{5, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectInflate(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 20, Height: 20}

	// Inflating by zero is a no-op.
	if got := r.Inflate(0, 0); got != r {
		t.Errorf("Inflate(0,0) = %v, want %v", got, r)
	}

	// Any non-negative inflation contains the original center.
	for _, m := range []float64{0, 1, 5, 100} {
		inflated := r.Inflate(m, m)
		if !inflated.Contains(r.Center()) {
			t.Errorf("Inflate(%v,%v) does not contain original center", m, m)
		}
	}

	got := r.Inflate(5, 3)
	want := Rect{Left: 5, Top: 7, Width: 30, Height: 26}
	if got != want {
		t.Errorf("Inflate(5,3) = %v, want %v", got, want)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 4, 4}, true},
		{"disjoint", Rect{20, 20, 5, 5}, false},
		{"touching right edge", Rect{10, 0, 5, 10}, false},
		{"touching corner", Rect{10, 10, 5, 5}, false},
		{"x overlap only", Rect{5, 20, 10, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Width: 10, Height: 10}
	b := Rect{Left: 20, Top: -5, Width: 5, Height: 30}

	u := a.Union(b)
	want := Rect{Left: 0, Top: -5, Width: 25, Height: 30}
	if u != want {
		t.Errorf("Union = %v, want %v", u, want)
	}

	// A union fully contains both inputs' corners.
	for _, p := range []Point{a.NorthWest(), a.SouthEast(), b.NorthWest(), b.SouthEast()} {
		if !u.Contains(p) {
			t.Errorf("Union does not contain %v", p)
		}
	}
}

func TestRectClip(t *testing.T) {
	r := Rect{Left: -10, Top: -10, Width: 100, Height: 100}
	bounds := Rect{Left: 0, Top: 0, Width: 50, Height: 50}

	got := r.Clip(bounds)
	if got != bounds {
		t.Errorf("Clip = %v, want %v", got, bounds)
	}
}

func TestRectBetween(t *testing.T) {
	got := RectBetween(Point{10, 30}, Point{-5, 0})
	want := Rect{Left: -5, Top: 0, Width: 15, Height: 30}
	if got != want {
		t.Errorf("RectBetween = %v, want %v", got, want)
	}
}

func TestPointDistance(t *testing.T) {
	if got := (Point{0, 0}).Distance(Point{3, 4}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
