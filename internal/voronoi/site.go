package voronoi

import "github.com/jonaszell97/CityGen/internal/geom"

// Site is one Voronoi cell: a generator point and the (already repaired
// and ordered) polygon of its cell boundary.
type Site struct {
	ID      int
	Pos     geom.Vector
	Polygon *geom.Polygon

	edges [][2]geom.Vector
}

// Edges returns the site's boundary edges in walk order.
func (s *Site) Edges() [][2]geom.Vector {
	return s.edges
}

// buildPolygon converts a repaired, chain-ordered cell into the site's
// exported Polygon and edge list, built on float coordinates throughout
// rather than rounding to an integer grid.
func buildPolygon(c *cell) (*geom.Polygon, [][2]geom.Vector) {
	if len(c.edges) < 3 {
		return nil, c.edges
	}
	// A chain that does not close (an edge's end is not the next edge's
	// start) yields no polygon, so Build skips the cell.
	for i, e := range c.edges {
		if e[1] != c.edges[(i+1)%len(c.edges)][0] {
			return nil, c.edges
		}
	}
	points := make([]geom.Vector, len(c.edges))
	for i, e := range c.edges {
		points[i] = e[0]
	}
	return geom.NewPolygon(points), c.edges
}

// Neighbour is a site sharing at least one boundary edge with another.
type Neighbour struct {
	Site  *Site
	Edges [][2]geom.Vector
}

// Neighbours returns every other site in v that shares a boundary edge
// with s, found by matching normalized edge IDs.
func (v *Voronoi) Neighbours(s *Site) []*Neighbour {
	mine := map[edgeKey]bool{}
	for _, e := range s.edges {
		mine[edgeID(e)] = true
	}

	var out []*Neighbour
	for _, other := range v.Sites {
		if other.ID == s.ID {
			continue
		}
		var shared [][2]geom.Vector
		for _, e := range other.edges {
			if mine[edgeID(e)] {
				shared = append(shared, e)
			}
		}
		if len(shared) > 0 {
			out = append(out, &Neighbour{Site: other, Edges: shared})
		}
	}
	return out
}

type edgeKey struct {
	ax, ay, bx, by float64
}

// edgeID normalizes an edge's endpoint order so both directions hash the
// same.
func edgeID(e [2]geom.Vector) edgeKey {
	a, b := e[0], e[1]
	if b.X < a.X || (a.X == b.X && b.Y < a.Y) {
		a, b = b, a
	}
	return edgeKey{a.X, a.Y, b.X, b.Y}
}
