package routing

import (
	"orthoroute/geometry"
)

// sideNormal returns the outward unit normal of a side.
func sideNormal(s Side) (dx, dy float64) {
	switch s {
	case SideTop:
		return 0, -1
	case SideRight:
		return 1, 0
	case SideBottom:
		return 0, 1
	case SideLeft:
		return -1, 0
	}
	return 0, 0
}

// computePoint resolves a connector descriptor to an absolute coordinate on
// the shape boundary. Top and bottom sides vary x; left and right vary y.
func computePoint(cp ConnectorPoint) geometry.Point {
	switch cp.Side {
	case SideTop:
		return geometry.Point{X: cp.Shape.Left + cp.Distance, Y: cp.Shape.Top}
	case SideBottom:
		return geometry.Point{X: cp.Shape.Left + cp.Distance, Y: cp.Shape.Bottom()}
	case SideLeft:
		return geometry.Point{X: cp.Shape.Left, Y: cp.Shape.Top + cp.Distance}
	default:
		return geometry.Point{X: cp.Shape.Right(), Y: cp.Shape.Top + cp.Distance}
	}
}

// extrudePoint returns the connector's antenna: the resolved anchor displaced
// outward along the side's normal by margin. The path must reach the antenna
// before entering free routing space.
func extrudePoint(cp ConnectorPoint, margin float64) geometry.Point {
	p := computePoint(cp)
	dx, dy := sideNormal(cp.Side)
	return geometry.Point{X: p.X + dx*margin, Y: p.Y + dy*margin}
}
