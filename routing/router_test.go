package routing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthoroute/geometry"
)

func baseRequest() Request {
	shapeA := geometry.Rect{Left: 0, Top: 0, Width: 100, Height: 50}
	shapeB := geometry.Rect{Left: 300, Top: 0, Width: 100, Height: 50}
	return Request{
		PointA:             ConnectorPoint{Shape: shapeA, Side: SideRight, Distance: 25},
		PointB:             ConnectorPoint{Shape: shapeB, Side: SideLeft, Distance: 25},
		ShapeMargin:        10,
		GlobalBoundsMargin: 50,
		GlobalBounds:       geometry.Rect{Left: -500, Top: -500, Width: 1500, Height: 1500},
	}
}

// assertOrthogonal checks every consecutive point pair shares exactly one
// coordinate.
func assertOrthogonal(t *testing.T, path []geometry.Point) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		sameX := path[i-1].X == path[i].X
		sameY := path[i-1].Y == path[i].Y
		assert.True(t, sameX != sameY,
			"segment %v-%v is not axis-aligned", path[i-1], path[i])
	}
}

func TestRouteStraightCorridor(t *testing.T) {
	router := NewRouter()

	path, err := router.Route(baseRequest())
	require.NoError(t, err)

	// Facing anchors at equal y route as a single straight segment.
	require.Len(t, path, 2)
	assert.Equal(t, geometry.Point{X: 100, Y: 25}, path[0])
	assert.Equal(t, geometry.Point{X: 300, Y: 25}, path[1])
}

func TestRouteOffsetShapesHasTwoBends(t *testing.T) {
	router := NewRouter()

	req := baseRequest()
	req.PointB.Shape.Top = 150
	path, err := router.Route(req)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	assert.Equal(t, geometry.Point{X: 100, Y: 25}, path[0])
	assert.Equal(t, geometry.Point{X: 300, Y: 175}, path[len(path)-1])
	assertOrthogonal(t, path)

	bends := 0
	for i := 1; i < len(path)-1; i++ {
		if bendAt(path[i-1], path[i], path[i+1]) != bendNone {
			bends++
		}
	}
	assert.Equal(t, 2, bends, "path %v", path)
}

func TestRouteAvoidsObstacleInCorridor(t *testing.T) {
	router := NewRouter()

	obstacle := geometry.Rect{Left: 180, Top: 10, Width: 40, Height: 30}
	req := baseRequest()
	req.Obstacles = []geometry.Rect{obstacle}

	path, err := router.Route(req)
	require.NoError(t, err)
	require.NotEmpty(t, path, "a detour around the obstacle must exist")

	inflated := obstacle.Inflate(req.ShapeMargin, req.ShapeMargin)
	for _, p := range path {
		assert.False(t, inflated.Contains(p), "point %v inside inflated obstacle", p)
	}
	assertOrthogonal(t, path)
}

func TestRouteCoincidentAnchors(t *testing.T) {
	router := NewRouter()

	shapeA := geometry.Rect{Left: 0, Top: 0, Width: 100, Height: 50}
	shapeB := geometry.Rect{Left: 100, Top: 0, Width: 100, Height: 50}
	req := baseRequest()
	req.PointA = ConnectorPoint{Shape: shapeA, Side: SideRight, Distance: 25}
	req.PointB = ConnectorPoint{Shape: shapeB, Side: SideLeft, Distance: 25}

	path, err := router.Route(req)
	require.NoError(t, err)

	// Both anchors resolve to (100,25): a zero-length path, not a failure.
	require.NotEmpty(t, path)
	assert.LessOrEqual(t, len(path), 2)
	for _, p := range path {
		assert.Equal(t, geometry.Point{X: 100, Y: 25}, p)
	}
}

func TestRouteMarginCollapsesWhenShapesTooClose(t *testing.T) {
	router := NewRouter()

	// A 10-unit gap: inflating both shapes by 10 would make them
	// intersect, so the margin is silently dropped for the call.
	req := baseRequest()
	req.PointB.Shape.Left = 110

	path, err := router.Route(req)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, geometry.Point{X: 100, Y: 25}, path[0])
	assert.Equal(t, geometry.Point{X: 110, Y: 25}, path[1])
}

func TestRouteUnreachableReturnsEmptyPath(t *testing.T) {
	router := NewRouter()

	// Clipping the working region down to a sliver leaves only the two
	// antennas in the graph. They share neither row nor column, so the
	// graph is disconnected: an empty path, not an error.
	req := baseRequest()
	req.PointB.Side = SideBottom
	req.PointB.Distance = 50
	req.GlobalBounds = geometry.Rect{Left: 0, Top: 0, Width: 1, Height: 1}

	path, err := router.Route(req)
	require.NoError(t, err, "unreachable destination is not an error")
	assert.Empty(t, path)
}

func TestRouteLatticeStrategy(t *testing.T) {
	router := NewRouter()

	shapeA := geometry.Rect{Left: 0, Top: 0, Width: 100, Height: 50}
	shapeB := geometry.Rect{Left: 200, Top: 100, Width: 100, Height: 50}
	req := Request{
		PointA:             ConnectorPoint{Shape: shapeA, Side: SideRight, Distance: 30},
		PointB:             ConnectorPoint{Shape: shapeB, Side: SideLeft, Distance: 30},
		ShapeMargin:        10,
		GlobalBoundsMargin: 50,
		GlobalBounds:       geometry.Rect{Left: -500, Top: -500, Width: 1500, Height: 1500},
		Spots:              LatticeSpots,
	}

	path, err := router.Route(req)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	assert.Equal(t, geometry.Point{X: 100, Y: 30}, path[0])
	assert.Equal(t, geometry.Point{X: 200, Y: 130}, path[len(path)-1])
	assertOrthogonal(t, path)
}

func TestRouteInvalidGeometry(t *testing.T) {
	router := NewRouter()

	req := baseRequest()
	req.PointA.Shape.Width = -5
	_, err := router.Route(req)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	req = baseRequest()
	req.Obstacles = []geometry.Rect{{Left: 0, Top: 0, Width: 10, Height: -1}}
	_, err = router.Route(req)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestRouteDebugDiagnostics(t *testing.T) {
	router := NewRouter()

	path, diag, err := router.RouteDebug(baseRequest())
	require.NoError(t, err)
	require.NotEmpty(t, path)

	assert.NotEmpty(t, diag.VRulers)
	assert.NotEmpty(t, diag.HRulers)
	assert.NotEmpty(t, diag.Spots)
	assert.NotEmpty(t, diag.Cells)
	assert.NotEmpty(t, diag.Edges)

	// The grid is dense: one cell per ruler interval pair.
	wantCells := (len(diag.HRulers) + 1) * (len(diag.VRulers) + 1)
	assert.Equal(t, wantCells, len(diag.Cells))

	for _, e := range diag.Edges {
		sameX := e.A.X == e.B.X
		sameY := e.A.Y == e.B.Y
		assert.True(t, sameX != sameY, "diagnostic edge %v-%v not axis-aligned", e.A, e.B)
	}
}

func TestRouteConcurrentCallsAreIndependent(t *testing.T) {
	router := NewRouter()
	req := baseRequest()

	want, err := router.Route(req)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := router.Route(req)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
