// Package demo provides canned routing scenes for the terminal visualizer.
package demo

import (
	"orthoroute/geometry"
	"orthoroute/routing"
)

// Scene is a named routing request ready to feed to the router.
type Scene struct {
	Name    string
	Request routing.Request
}

func connector(shape geometry.Rect, side routing.Side, distance float64) routing.ConnectorPoint {
	return routing.ConnectorPoint{Shape: shape, Side: side, Distance: distance}
}

func baseRequest(a, b routing.ConnectorPoint, obstacles ...geometry.Rect) routing.Request {
	return routing.Request{
		PointA:             a,
		PointB:             b,
		ShapeMargin:        10,
		GlobalBoundsMargin: 30,
		GlobalBounds:       geometry.Rect{Left: -200, Top: -200, Width: 1000, Height: 1000},
		Obstacles:          obstacles,
	}
}

// Scenes returns the built-in scenes in presentation order.
func Scenes() []Scene {
	left := geometry.Rect{Left: 0, Top: 0, Width: 100, Height: 50}
	right := geometry.Rect{Left: 300, Top: 0, Width: 100, Height: 50}
	lower := geometry.Rect{Left: 300, Top: 150, Width: 100, Height: 50}

	return []Scene{
		{
			Name: "straight corridor",
			Request: baseRequest(
				connector(left, routing.SideRight, 25),
				connector(right, routing.SideLeft, 25),
			),
		},
		{
			Name: "offset shapes",
			Request: baseRequest(
				connector(left, routing.SideRight, 25),
				connector(lower, routing.SideLeft, 25),
			),
		},
		{
			Name: "obstacle detour",
			Request: baseRequest(
				connector(left, routing.SideRight, 25),
				connector(right, routing.SideLeft, 25),
				geometry.Rect{Left: 180, Top: 10, Width: 40, Height: 30},
			),
		},
		{
			Name: "obstacle maze",
			Request: baseRequest(
				connector(left, routing.SideBottom, 50),
				connector(lower, routing.SideTop, 50),
				geometry.Rect{Left: 140, Top: 70, Width: 40, Height: 60},
				geometry.Rect{Left: 240, Top: 20, Width: 40, Height: 80},
				geometry.Rect{Left: 190, Top: 140, Width: 60, Height: 40},
			),
		},
		{
			Name: "tight margin",
			Request: baseRequest(
				connector(left, routing.SideRight, 25),
				connector(geometry.Rect{Left: 110, Top: 0, Width: 100, Height: 50}, routing.SideLeft, 25),
			),
		},
	}
}
