package routing

import (
	"orthoroute/geometry"
)

// bendKind classifies the direction change at an interior path point.
type bendKind int

const (
	bendNone bendKind = iota
	bendNorth
	bendEast
	bendSouth
	bendWest
	// bendUnknown marks a non-orthogonal triple. The graph never produces
	// one, but the simplifier tolerates it and keeps the point.
	bendUnknown
)

// bendAt classifies the triple (prev, cur, next).
func bendAt(prev, cur, next geometry.Point) bendKind {
	equalX := prev.X == cur.X && cur.X == next.X
	equalY := prev.Y == cur.Y && cur.Y == next.Y
	if equalX || equalY {
		return bendNone
	}

	inHorizontal := prev.Y == cur.Y
	inVertical := prev.X == cur.X
	outHorizontal := cur.Y == next.Y
	outVertical := cur.X == next.X
	if !(inHorizontal || inVertical) || !(outHorizontal || outVertical) {
		return bendUnknown
	}

	if inHorizontal && outVertical {
		if next.Y > cur.Y {
			return bendSouth
		}
		return bendNorth
	}
	if next.X > cur.X {
		return bendEast
	}
	return bendWest
}

// simplifyPath collapses collinear runs into true bend vertices. The first
// and last points are always kept; an interior point survives iff its bend
// classification is not bendNone. Idempotent.
func simplifyPath(points []geometry.Point) []geometry.Point {
	if len(points) <= 2 {
		return points
	}

	simplified := []geometry.Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		if bendAt(points[i-1], points[i], points[i+1]) != bendNone {
			simplified = append(simplified, points[i])
		}
	}
	return append(simplified, points[len(points)-1])
}
