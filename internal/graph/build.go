package graph

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/geom"
)

// AddStreamlines implements spec.md §4.E.1: sample every streamline at
// HalfGridResolution spacing, snap each sample to the grid, and register
// a node at every grid point visited by two or more distinct
// streamlines. Edges are then added between consecutive nodes found
// along each streamline's own visit sequence, with the path between them
// taken from that sequence (inclusive of both endpoints).
func (g *Graph) AddStreamlines(streamlines [][]geom.Vector) error {
	visitsPerStreamline := make([][]geom.Vector, len(streamlines))
	visitors := map[geom.Vector][]int{}
	order := []geom.Vector{}

	for si, pts := range streamlines {
		visited := sampleSnapped(pts)
		visitsPerStreamline[si] = visited

		for _, p := range visited {
			list, seen := visitors[p]
			if !seen {
				order = append(order, p)
			}
			if !containsInt(list, si) {
				visitors[p] = append(list, si)
			}
		}
	}

	for _, p := range order {
		if len(visitors[p]) >= 2 {
			g.ensureNode(p)
		}
	}

	for _, visited := range visitsPerStreamline {
		nodeIdxs := make([]int, 0, 4)
		for k, p := range visited {
			if _, ok := g.index[p]; ok {
				nodeIdxs = append(nodeIdxs, k)
			}
		}
		for i := 0; i+1 < len(nodeIdxs); i++ {
			k1, k2 := nodeIdxs[i], nodeIdxs[i+1]
			a, _ := g.NodeAt(visited[k1])
			b, _ := g.NodeAt(visited[k2])
			path := append([]geom.Vector{}, visited[k1:k2+1]...)
			if err := g.addEdge(a, b, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// sampleSnapped walks every segment of pts at HalfGridResolution spacing,
// snaps each sample to the grid, and collapses consecutive duplicates
// (spec.md §4.E.1's "skip consecutive duplicates").
func sampleSnapped(pts []geom.Vector) []geom.Vector {
	if len(pts) < 2 {
		out := make([]geom.Vector, len(pts))
		for i, p := range pts {
			out[i] = SnapToGrid(p)
		}
		return out
	}

	var visited []geom.Vector
	for seg := 0; seg < len(pts)-1; seg++ {
		a, b := pts[seg], pts[seg+1]
		length := geom.Dist(a, b)
		steps := int(math.Round(length / HalfGridResolution))
		if steps < 1 {
			steps = 1
		}
		start := 0
		if seg > 0 {
			start = 1 // the joint was already sampled as the previous segment's last point
		}
		for i := start; i <= steps; i++ {
			t := float64(i) / float64(steps)
			snapped := SnapToGrid(geom.Lerp(a, b, t))
			if len(visited) > 0 && visited[len(visited)-1] == snapped {
				continue
			}
			visited = append(visited, snapped)
		}
	}
	return visited
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// ModifyStreamlines implements spec.md §4.E.2: for every streamline,
// insert the grid's node positions it passes through directly into its
// point list at the matching location, so the polyline's own vertices
// line up with the graph's intersection nodes. Insertions shift later
// indices within the same streamline, handled by walking segments in
// order and inserting as they're found.
func (g *Graph) ModifyStreamlines(streamlines [][]geom.Vector) [][]geom.Vector {
	out := make([][]geom.Vector, len(streamlines))
	for si, pts := range streamlines {
		out[si] = g.insertNodesAlong(pts)
	}
	return out
}

func (g *Graph) insertNodesAlong(pts []geom.Vector) []geom.Vector {
	if len(pts) == 0 {
		return pts
	}
	result := make([]geom.Vector, 0, len(pts))
	result = append(result, pts[0])

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		for _, n := range g.Nodes {
			if n.Pos == a || n.Pos == b {
				continue
			}
			if onSegment(n.Pos, a, b) {
				result = append(result, n.Pos)
			}
		}
		result = append(result, b)
	}
	return result
}

// onSegment reports whether p lies on segment [a,b] within grid-snapping
// tolerance, used to splice a node exactly onto the streamline it was
// discovered along. SnapToGrid floors, so a node can sit up to one
// GridResolution below or left of the line it was sampled from.
func onSegment(p, a, b geom.Vector) bool {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 == 0 {
		return false
	}
	t := p.Sub(a).Dot(ab) / l2
	if t <= 0 || t >= 1 {
		return false
	}
	proj := a.Add(ab.Scale(t))
	return proj.ApproxEqual(p, GridResolution)
}
