// Package graph builds the planar graph spec.md §4.E describes from a set
// of traced streamlines: grid-snapped intersection nodes, symmetric
// neighbour adjacency with the path between each pair, and closed-loop
// (minimal face) enumeration via a rightmost-turn walk.
//
// Follows a "deletion method" neighbour-elimination idiom whose
// map-of-maps neighbour structure (`map[image.Point]map[image.Point]bool`)
// this package generalizes from unordered Go maps (acceptable there, since
// wall edges are emitted as an unordered set) into insertion-ordered
// slices, since spec.md §5 requires insertion-ordered iteration for
// determinism here.
package graph

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/cgerr"
	"github.com/jonaszell97/CityGen/internal/geom"
)

// GridResolution and HalfGridResolution are the snapping constants
// spec.md §4.E names.
const (
	GridResolution     = 0.75
	HalfGridResolution = GridResolution / 2
)

// SnapToGrid floors p's coordinates to the graph's grid resolution.
func SnapToGrid(p geom.Vector) geom.Vector {
	return geom.New(
		math.Floor(p.X/GridResolution)*GridResolution,
		math.Floor(p.Y/GridResolution)*GridResolution,
	)
}

// Node is an intersection or junction point with a stable integer ID
// (its insertion order into Graph.Nodes) and insertion-ordered neighbour
// adjacency.
type Node struct {
	ID        int
	Pos       geom.Vector
	Neighbors []int
	Paths     [][]geom.Vector // Paths[i] runs from this node to Neighbors[i], inclusive of both ends
}

// Loop is a closed face: the ordered node IDs that bound it, and the
// polygon those nodes' positions form.
type Loop struct {
	NodeIDs []int
	Polygon *geom.Polygon
}

// Graph is a planar graph built incrementally from streamlines.
type Graph struct {
	Nodes []*Node
	index map[geom.Vector]int // snapped position -> node ID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: map[geom.Vector]int{}}
}

// NodeAt returns the node at exactly p (already snapped), if any.
func (g *Graph) NodeAt(p geom.Vector) (*Node, bool) {
	id, ok := g.index[p]
	if !ok {
		return nil, false
	}
	return g.Nodes[id], true
}

// ensureNode returns the existing node at p or creates one, preserving
// insertion order as the node's stable ID.
func (g *Graph) ensureNode(p geom.Vector) *Node {
	if n, ok := g.NodeAt(p); ok {
		return n
	}
	n := &Node{ID: len(g.Nodes), Pos: p}
	g.Nodes = append(g.Nodes, n)
	g.index[p] = n.ID
	return n
}

// addEdge records a symmetric neighbour relationship between a and b
// with the given inclusive path (stored forward on a's side, reversed on
// b's side). A node added as its own neighbour is a precondition
// violation (spec.md §7.1). Duplicate edges between the same pair are
// ignored.
func (g *Graph) addEdge(a, b *Node, path []geom.Vector) error {
	if a.ID == b.ID {
		return cgerr.NewFatal("graph.addEdge", cgerr.ErrSelfNeighbour)
	}
	for _, existing := range a.Neighbors {
		if existing == b.ID {
			return nil
		}
	}

	a.Neighbors = append(a.Neighbors, b.ID)
	a.Paths = append(a.Paths, path)

	reversed := make([]geom.Vector, len(path))
	for i, p := range path {
		reversed[len(path)-1-i] = p
	}
	b.Neighbors = append(b.Neighbors, a.ID)
	b.Paths = append(b.Paths, reversed)
	return nil
}

// PathBetween returns the stored path from node a to its neighbour b, if
// an edge exists.
func (n *Node) PathBetween(neighborID int) ([]geom.Vector, bool) {
	for i, id := range n.Neighbors {
		if id == neighborID {
			return n.Paths[i], true
		}
	}
	return nil, false
}
