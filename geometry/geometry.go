// Package geometry contains the fundamental value types used throughout the
// orthoroute connector router.
package geometry

import "math"

// Point represents a 2D coordinate in the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(o Point) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents a rectangular area anchored at its top-left corner.
// Width and Height are expected to be non-negative; negative values are not
// validated here and propagate to derived values.
type Rect struct {
	Left, Top, Width, Height float64
}

// RectFromLTRB builds a rectangle from its left/top/right/bottom edges.
func RectFromLTRB(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// RectBetween returns the smallest rectangle covering both points.
func RectBetween(a, b Point) Rect {
	left := math.Min(a.X, b.X)
	top := math.Min(a.Y, b.Y)
	return RectFromLTRB(left, top, math.Max(a.X, b.X), math.Max(a.Y, b.Y))
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Corner accessors, named by compass direction.

func (r Rect) NorthWest() Point { return Point{X: r.Left, Y: r.Top} }
func (r Rect) NorthEast() Point { return Point{X: r.Right(), Y: r.Top} }
func (r Rect) SouthWest() Point { return Point{X: r.Left, Y: r.Bottom()} }
func (r Rect) SouthEast() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Mid-side accessors.

func (r Rect) North() Point { return Point{X: r.Left + r.Width/2, Y: r.Top} }
func (r Rect) South() Point { return Point{X: r.Left + r.Width/2, Y: r.Bottom()} }
func (r Rect) West() Point  { return Point{X: r.Left, Y: r.Top + r.Height/2} }
func (r Rect) East() Point  { return Point{X: r.Right(), Y: r.Top + r.Height/2} }

// Contains checks if a point is inside the rectangle. The boundary is
// inclusive on all four edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() &&
		p.Y >= r.Top && p.Y <= r.Bottom()
}

// Inflate expands the rectangle symmetrically by dx on the left and right
// and dy on the top and bottom. The caller is responsible for not inflating
// past collapse with negative values.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left - dx,
		Top:    r.Top - dy,
		Width:  r.Width + 2*dx,
		Height: r.Height + 2*dy,
	}
}

// Intersects reports whether the two rectangles overlap. Both the x and y
// projections must overlap strictly; rectangles that merely touch along an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	overlapX := r.Left < o.Right() && o.Left < r.Right()
	overlapY := r.Top < o.Bottom() && o.Top < r.Bottom()
	return overlapX && overlapY
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(o Rect) Rect {
	return RectFromLTRB(
		math.Min(r.Left, o.Left),
		math.Min(r.Top, o.Top),
		math.Max(r.Right(), o.Right()),
		math.Max(r.Bottom(), o.Bottom()),
	)
}

// Clip constrains the rectangle to the given bounds.
func (r Rect) Clip(bounds Rect) Rect {
	left := math.Max(r.Left, bounds.Left)
	top := math.Max(r.Top, bounds.Top)
	right := math.Min(r.Right(), bounds.Right())
	bottom := math.Min(r.Bottom(), bounds.Bottom())
	return RectFromLTRB(left, top, right, bottom)
}
