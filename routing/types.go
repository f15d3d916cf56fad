// Package routing computes orthogonal connector paths between anchor points
// on the boundaries of rectangular shapes, avoiding rectangular obstacles and
// minimizing direction changes.
package routing

import (
	"orthoroute/geometry"
)

// Side identifies one side of a rectangular shape.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// String returns the string representation of a Side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// IsVertical reports whether the side is vertically oriented, meaning a
// connector on it leaves the shape travelling along the y axis.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// ConnectorPoint describes an anchor on a shape boundary: a side plus an
// absolute offset along that side, measured from the side's start corner.
type ConnectorPoint struct {
	Shape    geometry.Rect
	Side     Side
	Distance float64
}

// SpotStrategy selects how candidate waypoints are generated for a request.
// Which strategy is canonical is a policy choice left to the caller; the
// zero value routes through GridSpots.
type SpotStrategy int

const (
	// GridSpots derives waypoints from the ruler grid's cell geometry.
	GridSpots SpotStrategy = iota
	// LatticeSpots samples a uniform 10-unit lattice spanning both shapes.
	LatticeSpots
)

// Request describes a single routing call.
type Request struct {
	PointA             ConnectorPoint
	PointB             ConnectorPoint
	ShapeMargin        float64
	GlobalBoundsMargin float64
	GlobalBounds       geometry.Rect
	// Obstacles holds the footprint of every other shape in the scene
	// besides the two endpoint shapes.
	Obstacles []geometry.Rect
	Spots     SpotStrategy
}

// Edge is one undirected connection of the visibility graph, reported in
// diagnostics.
type Edge struct {
	A, B   geometry.Point
	Weight float64
}

// Diagnostics is a per-call snapshot of the intermediate routing state,
// intended for visualization and debugging only. It is returned by value
// alongside the path and never shared between calls.
type Diagnostics struct {
	HRulers []float64
	VRulers []float64
	Spots   []geometry.Point
	Cells   []geometry.Rect
	Edges   []Edge
}
