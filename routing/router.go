package routing

import (
	"fmt"

	"orthoroute/geometry"
)

// Router computes orthogonal connector paths. It holds no per-call state;
// every request allocates its own grid and graph, so a single Router is safe
// to share between concurrent callers.
type Router struct{}

// NewRouter creates a connector router.
func NewRouter() *Router {
	return &Router{}
}

// Route computes the simplified polyline between the request's two anchors.
// The result includes both endpoints; an empty slice signals that no route
// exists. Every call recomputes from scratch.
func (r *Router) Route(req Request) ([]geometry.Point, error) {
	path, _, err := r.RouteDebug(req)
	return path, err
}

// RouteDebug computes the same polyline as Route and additionally returns a
// diagnostic snapshot of the intermediate routing state for visualization.
func (r *Router) RouteDebug(req Request) ([]geometry.Point, Diagnostics, error) {
	var diag Diagnostics
	if err := validateRequest(req); err != nil {
		return nil, diag, err
	}

	shapeA := req.PointA.Shape
	shapeB := req.PointB.Shape

	// If inflating both shapes would make them intersect, the routing
	// region between them degenerates; route against the bare shapes.
	margin := req.ShapeMargin
	inflatedA := shapeA.Inflate(margin, margin)
	inflatedB := shapeB.Inflate(margin, margin)
	if inflatedA.Intersects(inflatedB) {
		margin = 0
		inflatedA, inflatedB = shapeA, shapeB
	}

	anchorA := computePoint(req.PointA)
	anchorB := computePoint(req.PointB)
	origin := extrudePoint(req.PointA, margin)
	dest := extrudePoint(req.PointB, margin)

	bounds := inflatedA.Union(inflatedB).
		Inflate(req.GlobalBoundsMargin, req.GlobalBoundsMargin).
		Clip(req.GlobalBounds)

	excluded := make([]geometry.Rect, 0, len(req.Obstacles)+2)
	excluded = append(excluded, inflatedA, inflatedB)
	for _, o := range req.Obstacles {
		excluded = append(excluded, o.Inflate(margin, margin))
	}

	rl := makeRulers(req.PointA, req.PointB, excluded, bounds)
	grid := rulersToGrid(rl, bounds)

	var raw []geometry.Point
	switch req.Spots {
	case LatticeSpots:
		raw = latticeSpots(shapeA, shapeB)
	default:
		raw = gridSpots(grid)
	}

	spots := filterSpots(raw, excluded, origin, dest)
	graph := buildGraph(spots)

	diag = Diagnostics{
		HRulers: rl.horizontals,
		VRulers: rl.verticals,
		Spots:   spots,
		Cells:   grid.Rectangles(),
		Edges:   graph.edges,
	}

	route, err := shortestPath(graph, origin, dest)
	if err != nil {
		return nil, diag, err
	}
	if len(route) == 0 {
		// Disconnected graph: no route, not an error.
		return []geometry.Point{}, diag, nil
	}

	full := make([]geometry.Point, 0, len(route)+2)
	full = append(full, anchorA)
	full = append(full, route...)
	full = append(full, anchorB)
	return simplifyPath(full), diag, nil
}

func validateRequest(req Request) error {
	if err := validateRect("shape A", req.PointA.Shape); err != nil {
		return err
	}
	if err := validateRect("shape B", req.PointB.Shape); err != nil {
		return err
	}
	if err := validateRect("global bounds", req.GlobalBounds); err != nil {
		return err
	}
	for i, o := range req.Obstacles {
		if err := validateRect(fmt.Sprintf("obstacle %d", i), o); err != nil {
			return err
		}
	}
	return nil
}

func validateRect(name string, r geometry.Rect) error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%s has negative size %vx%v: %w", name, r.Width, r.Height, ErrInvalidGeometry)
	}
	return nil
}
