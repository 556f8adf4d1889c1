package graph

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/geom"
)

// centroidTolerance is the 0.01 dedup tolerance spec.md §4.E.3 names for
// discarding rotations/reflections of an already-found face.
const centroidTolerance = 0.01

// FindClosedLoops enumerates minimal faces via the rightmost-turn walk
// spec.md §4.E.3 describes, capping any walk at maxSize nodes.
func (g *Graph) FindClosedLoops(maxSize int) []Loop {
	var loops []Loop
	var centroids []geom.Vector

	for _, b := range g.Nodes {
		for _, nID := range b.Neighbors {
			loop, ok := g.walkFromEdge(b, g.Nodes[nID], maxSize)
			if !ok {
				continue
			}
			centroid := loopCentroid(loop, g)
			if containsApprox(centroids, centroid, centroidTolerance) {
				continue
			}
			centroids = append(centroids, centroid)

			pts := make([]geom.Vector, len(loop))
			for i, id := range loop {
				pts[i] = g.Nodes[id].Pos
			}
			loops = append(loops, Loop{NodeIDs: loop, Polygon: geom.NewPolygon(pts)})
		}
	}
	return loops
}

// walkFromEdge performs one rightmost-turn walk starting at edge b->n,
// returning the closed loop's node IDs (starting at b) if it closes.
func (g *Graph) walkFromEdge(b, n *Node, maxSize int) ([]int, bool) {
	visited := map[int]bool{b.ID: true}
	loop := []int{b.ID}
	baseDir := n.Pos.Sub(b.Pos)
	current := n

	for {
		visited[current.ID] = true
		loop = append(loop, current.ID)
		if len(loop) >= maxSize {
			return nil, false
		}

		var best *Node
		bestAngle := -1.0
		closesHere := false

		for _, mID := range current.Neighbors {
			if mID == b.ID {
				if len(loop) > 3 {
					closesHere = true
				}
				continue
			}
			if visited[mID] {
				continue
			}
			m := g.Nodes[mID]
			angle := baseDir.AngleTo(m.Pos.Sub(current.Pos))
			if angle <= 0 {
				angle += 2 * math.Pi
			}
			if angle > 1e-12 && angle < 2*math.Pi && angle > bestAngle {
				bestAngle = angle
				best = m
			}
		}

		if closesHere {
			return loop, true
		}
		if best == nil {
			return nil, false
		}
		baseDir = best.Pos.Sub(current.Pos)
		current = best
	}
}

func loopCentroid(loop []int, g *Graph) geom.Vector {
	var sum geom.Vector
	for _, id := range loop {
		sum = sum.Add(g.Nodes[id].Pos)
	}
	return sum.Div(float64(len(loop)))
}

func containsApprox(pts []geom.Vector, p geom.Vector, tol float64) bool {
	for _, q := range pts {
		if q.ApproxEqual(p, tol) {
			return true
		}
	}
	return false
}
