package routing

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"orthoroute/geometry"
)

// pathDirection classifies the orientation of a graph edge.
type pathDirection int

const (
	dirNone pathDirection = iota
	dirHorizontal
	dirVertical
)

// directionOf returns the direction from a to b: horizontal when the y
// coordinates match, vertical when the x coordinates match, dirNone for a
// non-orthogonal pair.
func directionOf(a, b geometry.Point) pathDirection {
	if a.Y == b.Y {
		return dirHorizontal
	}
	if a.X == b.X {
		return dirVertical
	}
	return dirNone
}

// searchItem is an entry in the priority queue.
type searchItem struct {
	point geometry.Point
	dist  float64
	index int
}

// searchQueue is a min-heap of queue entries ordered by distance.
type searchQueue []*searchItem

func (q searchQueue) Len() int            { return len(q) }
func (q searchQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q searchQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *searchQueue) Push(x interface{}) {
	item := x.(*searchItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// shortestPath runs a single-source search from the origin antenna over the
// whole graph, charging a penalty of (w+1)^2 on every relaxation that
// changes direction. The search is not cut short when the destination
// settles; it drains the full unsettled set.
//
// An origin or destination coordinate with no graph node is an error; a
// destination left unreached by a disconnected graph is not, and yields an
// empty path.
func shortestPath(g *pointGraph, origin, dest geometry.Point) ([]geometry.Point, error) {
	if g.get(origin) == nil {
		return nil, fmt.Errorf("origin antenna (%v, %v): %w", origin.X, origin.Y, ErrEndpointNotFound)
	}
	if g.get(dest) == nil {
		return nil, fmt.Errorf("destination antenna (%v, %v): %w", dest.X, dest.Y, ErrEndpointNotFound)
	}

	dist := make(map[geometry.Point]float64, len(g.nodes))
	for p := range g.nodes {
		dist[p] = math.Inf(1)
	}
	parent := make(map[geometry.Point]geometry.Point)
	settled := make(map[geometry.Point]bool)

	dist[origin] = 0
	queue := &searchQueue{}
	heap.Init(queue)
	heap.Push(queue, &searchItem{point: origin, dist: 0})

	for queue.Len() > 0 {
		item := heap.Pop(queue).(*searchItem)
		u := item.point
		if settled[u] {
			continue
		}
		settled[u] = true

		comingDir := dirNone
		if prev, ok := parent[u]; ok {
			comingDir = directionOf(prev, u)
		}

		node := g.get(u)
		for _, v := range sortedNeighbors(node) {
			if settled[v] {
				continue
			}
			w := node.adjacent[v]

			cost := w
			goingDir := directionOf(u, v)
			if comingDir != dirNone && goingDir != dirNone && comingDir != goingDir {
				cost += (w + 1) * (w + 1)
			}

			if next := dist[u] + cost; next < dist[v] {
				dist[v] = next
				parent[v] = u
				heap.Push(queue, &searchItem{point: v, dist: next})
			}
		}
	}

	if math.IsInf(dist[dest], 1) {
		return nil, nil
	}

	// Backtrack the parent chain from the destination.
	var path []geometry.Point
	for p := dest; ; {
		path = append(path, p)
		if p == origin {
			break
		}
		p = parent[p]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// sortedNeighbors returns the node's adjacent coordinates in a stable order
// so equal-cost relaxations resolve the same way on every run.
func sortedNeighbors(n *graphNode) []geometry.Point {
	out := make([]geometry.Point, 0, len(n.adjacent))
	for p := range n.adjacent {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
