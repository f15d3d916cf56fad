package routing

import (
	"sort"

	"orthoroute/geometry"
)

// pointGraph is the axis-aligned visibility mesh the search runs over. Nodes
// are identified by their exact coordinate; every edge is purely horizontal
// or vertical and inserted in both directions with equal weight.
type pointGraph struct {
	nodes map[geometry.Point]*graphNode
	edges []Edge
}

type graphNode struct {
	point    geometry.Point
	adjacent map[geometry.Point]float64
}

func newPointGraph() *pointGraph {
	return &pointGraph{nodes: make(map[geometry.Point]*graphNode)}
}

// add registers a node for a coordinate, at most one per distinct point.
func (g *pointGraph) add(p geometry.Point) *graphNode {
	if n, ok := g.nodes[p]; ok {
		return n
	}
	n := &graphNode{point: p, adjacent: make(map[geometry.Point]float64)}
	g.nodes[p] = n
	return n
}

func (g *pointGraph) get(p geometry.Point) *graphNode {
	return g.nodes[p]
}

// connect inserts an undirected edge weighted by Euclidean distance.
func (g *pointGraph) connect(a, b *graphNode) {
	w := a.point.Distance(b.point)
	a.adjacent[b.point] = w
	b.adjacent[a.point] = w
	g.edges = append(g.edges, Edge{A: a.point, B: b.point, Weight: w})
}

// buildGraph links spots sharing an x or y coordinate into a sparse
// orthogonal mesh. For every (hot y, hot x) pair holding a node, the node is
// connected to the node at the previous distinct hot x in its row and to the
// node at the previous distinct hot y in its column, when those exist.
func buildGraph(spots []geometry.Point) *pointGraph {
	g := newPointGraph()

	xs := make([]float64, 0, len(spots))
	ys := make([]float64, 0, len(spots))
	seenX := make(map[float64]bool)
	seenY := make(map[float64]bool)

	for _, p := range spots {
		g.add(p)
		if !seenX[p.X] {
			seenX[p.X] = true
			xs = append(xs, p.X)
		}
		if !seenY[p.Y] {
			seenY[p.Y] = true
			ys = append(ys, p.Y)
		}
	}
	sort.Float64s(xs)
	sort.Float64s(ys)

	for i, y := range ys {
		for j, x := range xs {
			b := g.get(geometry.Point{X: x, Y: y})
			if b == nil {
				continue
			}
			if j > 0 {
				if a := g.get(geometry.Point{X: xs[j-1], Y: y}); a != nil {
					g.connect(a, b)
				}
			}
			if i > 0 {
				if a := g.get(geometry.Point{X: x, Y: ys[i-1]}); a != nil {
					g.connect(a, b)
				}
			}
		}
	}

	return g
}
