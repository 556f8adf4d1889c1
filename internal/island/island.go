package island

import (
	"github.com/jonaszell97/CityGen/internal/cgerr"
	"github.com/jonaszell97/CityGen/internal/geom"
)

// Diagram is the minimal view of a built Voronoi diagram this package
// consumes, satisfied by *voronoi.Voronoi via its Sites field converted
// through Adapt.
type Diagram struct {
	Sites []Site
}

// siteAdapter lets any concrete site type with a Polygon and Edges()
// satisfy Site without this package importing internal/voronoi, keeping
// the dependency one-directional (voronoi knows nothing of island).
type siteAdapter struct {
	polygon *geom.Polygon
	edges   [][2]geom.Vector
}

func (s siteAdapter) Centroid() geom.Vector   { return s.polygon.Centroid() }
func (s siteAdapter) Edges() [][2]geom.Vector { return s.edges }

// Adapt wraps a list of Voronoi-style sites (anything exposing a cell
// polygon and its boundary edges) into the Site values this package
// operates on.
func Adapt(n int, polygonAt func(i int) *geom.Polygon, edgesAt func(i int) [][2]geom.Vector) []Site {
	out := make([]Site, n)
	for i := range out {
		out[i] = siteAdapter{polygon: polygonAt(i), edges: edgesAt(i)}
	}
	return out
}

// Build extracts the refined coastline polygon bounding the Land cells of
// a diagram, per spec.md §4.G: classify, intersect into a coastline edge
// set, greedily order it into a closed polygon, then refine by
// subdivision and perturbation.
func Build(sites []Site, boundary Boundary) (*geom.Polygon, error) {
	land, sea := classify(sites, boundary)
	if len(land) == 0 {
		return nil, cgerr.NewFatal("island.Build", cgerr.ErrInvalidPolygon)
	}

	edges := coastlineEdges(land, sea)
	if len(edges) == 0 {
		return nil, cgerr.NewFatal("island.Build", cgerr.ErrInvalidPolygon)
	}

	maxEdgeLength := 0.0
	for _, e := range edges {
		if l := geom.Dist(e[0], e[1]); l > maxEdgeLength {
			maxEdgeLength = l
		}
	}

	ordered := order(edges)
	if len(ordered) < 3 {
		return nil, cgerr.NewFatal("island.Build", cgerr.ErrInvalidPolygon)
	}

	refined := refine(ordered, maxEdgeLength)
	return geom.NewPolygon(refined), nil
}
