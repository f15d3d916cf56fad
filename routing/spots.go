package routing

import (
	"orthoroute/geometry"
)

const (
	// latticeStep is the fixed sampling interval of the lattice strategy.
	latticeStep = 10.0
	// latticeLookout widens the sampling window beyond the shape extents.
	latticeLookout = 20.0
	// latticeOverscan extends the lattice this many steps past the window
	// on every side.
	latticeOverscan = 20
)

// gridSpots emits candidate waypoints from the grid's cell geometry. Corner
// cells contribute their four corners, edge cells the three border points on
// the touching side, and interior cells all eight border points plus the
// center.
func gridSpots(grid *Grid) []geometry.Point {
	var spots []geometry.Point

	rows, cols := grid.Rows(), grid.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell, ok := grid.Get(row, col)
			if !ok {
				continue
			}

			top := row == 0
			bottom := row == rows-1
			left := col == 0
			right := col == cols-1

			switch {
			case (top || bottom) && (left || right):
				spots = append(spots,
					cell.NorthWest(), cell.NorthEast(),
					cell.SouthWest(), cell.SouthEast())
			case top:
				spots = append(spots, cell.NorthWest(), cell.North(), cell.NorthEast())
			case bottom:
				spots = append(spots, cell.SouthWest(), cell.South(), cell.SouthEast())
			case left:
				spots = append(spots, cell.NorthWest(), cell.West(), cell.SouthWest())
			case right:
				spots = append(spots, cell.NorthEast(), cell.East(), cell.SouthEast())
			default:
				spots = append(spots,
					cell.NorthWest(), cell.North(), cell.NorthEast(),
					cell.East(), cell.SouthEast(), cell.South(),
					cell.SouthWest(), cell.West(), cell.Center())
			}
		}
	}

	return spots
}

// latticeSpots samples a uniform lattice over a window spanning both shapes,
// extended well past the window so routes can detour around crowded scenes.
func latticeSpots(shapeA, shapeB geometry.Rect) []geometry.Point {
	window := shapeA.Union(shapeB).Inflate(latticeLookout, latticeLookout)

	overscan := float64(latticeOverscan) * latticeStep
	var spots []geometry.Point
	for x := window.Left - overscan; x <= window.Right()+overscan; x += latticeStep {
		for y := window.Top - overscan; y <= window.Bottom()+overscan; y += latticeStep {
			spots = append(spots, geometry.Point{X: x, Y: y})
		}
	}
	return spots
}

// filterSpots drops every candidate contained in an excluded zone,
// deduplicates by exact coordinate, and unconditionally re-adds the antenna
// points so the graph always has seed nodes near the true endpoints.
func filterSpots(raw []geometry.Point, excluded []geometry.Rect, antennas ...geometry.Point) []geometry.Point {
	seen := make(map[geometry.Point]bool, len(raw))
	spots := make([]geometry.Point, 0, len(raw))

next:
	for _, p := range raw {
		if seen[p] {
			continue
		}
		for _, zone := range excluded {
			if zone.Contains(p) {
				continue next
			}
		}
		seen[p] = true
		spots = append(spots, p)
	}

	// Antennas are never filtered, even when they sit inside an excluded
	// zone; without them the search has no seeds.
	for _, p := range antennas {
		if !seen[p] {
			seen[p] = true
			spots = append(spots, p)
		}
	}

	return spots
}
