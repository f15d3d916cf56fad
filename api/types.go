// Package api exposes the connector router over HTTP.
package api

import (
	"fmt"

	"orthoroute/geometry"
	"orthoroute/routing"
)

// rectJSON mirrors geometry.Rect on the wire.
type rectJSON struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r rectJSON) toRect() geometry.Rect {
	return geometry.Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

// connectorJSON mirrors routing.ConnectorPoint, with the side as a string.
type connectorJSON struct {
	Shape    rectJSON `json:"shape"`
	Side     string   `json:"side"`
	Distance float64  `json:"distance"`
}

// routeRequest is the body of POST /route and POST /route/debug.
type routeRequest struct {
	PointA             connectorJSON `json:"pointA"`
	PointB             connectorJSON `json:"pointB"`
	ShapeMargin        float64       `json:"shapeMargin"`
	GlobalBoundsMargin float64       `json:"globalBoundsMargin"`
	GlobalBounds       rectJSON      `json:"globalBounds"`
	Obstacles          []rectJSON    `json:"obstacles"`
	Strategy           string        `json:"strategy"`
}

// routeResponse is the body of a successful POST /route.
type routeResponse struct {
	Path [][2]float64 `json:"path"`
}

func parseSide(s string) (routing.Side, error) {
	switch s {
	case "top":
		return routing.SideTop, nil
	case "right":
		return routing.SideRight, nil
	case "bottom":
		return routing.SideBottom, nil
	case "left":
		return routing.SideLeft, nil
	default:
		return 0, fmt.Errorf("unknown side %q", s)
	}
}

func parseStrategy(s string) (routing.SpotStrategy, error) {
	switch s {
	case "", "grid":
		return routing.GridSpots, nil
	case "lattice":
		return routing.LatticeSpots, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

func (r routeRequest) toRouting() (routing.Request, error) {
	sideA, err := parseSide(r.PointA.Side)
	if err != nil {
		return routing.Request{}, fmt.Errorf("pointA: %w", err)
	}
	sideB, err := parseSide(r.PointB.Side)
	if err != nil {
		return routing.Request{}, fmt.Errorf("pointB: %w", err)
	}
	strategy, err := parseStrategy(r.Strategy)
	if err != nil {
		return routing.Request{}, err
	}

	req := routing.Request{
		PointA: routing.ConnectorPoint{
			Shape:    r.PointA.Shape.toRect(),
			Side:     sideA,
			Distance: r.PointA.Distance,
		},
		PointB: routing.ConnectorPoint{
			Shape:    r.PointB.Shape.toRect(),
			Side:     sideB,
			Distance: r.PointB.Distance,
		},
		ShapeMargin:        r.ShapeMargin,
		GlobalBoundsMargin: r.GlobalBoundsMargin,
		GlobalBounds:       r.GlobalBounds.toRect(),
		Spots:              strategy,
	}
	for _, o := range r.Obstacles {
		req.Obstacles = append(req.Obstacles, o.toRect())
	}
	return req, nil
}

func toResponse(path []geometry.Point) routeResponse {
	resp := routeResponse{Path: make([][2]float64, 0, len(path))}
	for _, p := range path {
		resp.Path = append(resp.Path, [2]float64{p.X, p.Y})
	}
	return resp
}
