package island

import (
	"math"

	"github.com/unixpickle/essentials"

	"github.com/jonaszell97/CityGen/internal/geom"
)

// orderTolerance is how close the walk must return to its start vertex
// to consider the boundary closed, per spec.md §4.G.3.
const orderTolerance = 0.1

// order assembles the unordered coastline edge set into a single closed
// polygon by the greedy directional-angle walk spec.md §4.G.3 describes:
// start at the leftmost-lowest vertex heading "up", then repeatedly take
// the unused edge at the current vertex that turns least from the
// previous direction; if none remains at the vertex, bridge to whichever
// unused endpoint anywhere minimises angle plus a distance penalty.
func order(edges [][2]geom.Vector) []geom.Vector {
	if len(edges) == 0 {
		return nil
	}

	remaining := make([][2]geom.Vector, len(edges))
	copy(remaining, edges)

	maxEdgeLength := 0.0
	for _, e := range edges {
		if l := geom.Dist(e[0], e[1]); l > maxEdgeLength {
			maxEdgeLength = l
		}
	}

	start := leftmostLowest(remaining)
	current := start
	prevDir := geom.New(0, 1)

	out := []geom.Vector{current}
	for len(remaining) > 0 {
		idx, end, ok := bestFromVertex(remaining, current, prevDir)
		if !ok {
			idx, end, ok = bestBridge(remaining, current, prevDir, maxEdgeLength)
			if !ok {
				break
			}
		}

		prevDir = end.Sub(current)
		essentials.UnorderedDelete(&remaining, idx)
		current = end
		out = append(out, current)

		if current.ApproxEqual(start, orderTolerance) && len(out) > 3 {
			break
		}
	}
	return out
}

// directionalAngle is the non-negative turn (in [0, 2*pi)) from prevDir
// to dir, spec.md §4.G.3's DirectionalAngleRad.
func directionalAngle(dir, prevDir geom.Vector) float64 {
	angle := prevDir.AngleTo(dir)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

func bestFromVertex(edges [][2]geom.Vector, at, prevDir geom.Vector) (int, geom.Vector, bool) {
	bestIdx := -1
	var bestEnd geom.Vector
	bestAngle := 0.0

	for i, e := range edges {
		var end geom.Vector
		matched := false
		if e[0].ApproxEqual(at, orderTolerance) {
			end, matched = e[1], true
		} else if e[1].ApproxEqual(at, orderTolerance) {
			end, matched = e[0], true
		}
		if !matched {
			continue
		}
		angle := directionalAngle(end.Sub(at), prevDir)
		if bestIdx == -1 || angle < bestAngle {
			bestIdx, bestEnd, bestAngle = i, end, angle
		}
	}
	return bestIdx, bestEnd, bestIdx != -1
}

// bestBridge synthesises a connection to whichever unused endpoint
// minimises angle + (distance/maxEdgeLength)*2*pi, spec.md §4.G.3's
// fallback when the current vertex has no unused incident edge.
func bestBridge(edges [][2]geom.Vector, at, prevDir geom.Vector, maxEdgeLength float64) (int, geom.Vector, bool) {
	bestIdx := -1
	var bestEnd geom.Vector
	bestScore := 0.0

	consider := func(i int, end geom.Vector) {
		dist := geom.Dist(at, end)
		angle := directionalAngle(end.Sub(at), prevDir)
		score := angle
		if maxEdgeLength > 0 {
			score += (dist / maxEdgeLength) * 2 * math.Pi
		}
		if bestIdx == -1 || score < bestScore {
			bestIdx, bestEnd, bestScore = i, end, score
		}
	}

	for i, e := range edges {
		if !e[0].ApproxEqual(at, orderTolerance) {
			consider(i, e[0])
		}
		if !e[1].ApproxEqual(at, orderTolerance) {
			consider(i, e[1])
		}
	}
	return bestIdx, bestEnd, bestIdx != -1
}

func leftmostLowest(edges [][2]geom.Vector) geom.Vector {
	best := edges[0][0]
	consider := func(p geom.Vector) {
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			best = p
		}
	}
	for _, e := range edges {
		consider(e[0])
		consider(e[1])
	}
	return best
}
