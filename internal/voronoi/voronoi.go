package voronoi

import (
	"github.com/jonaszell97/CityGen/internal/cgerr"
	"github.com/jonaszell97/CityGen/internal/geom"
)

// repairEpsilon is the coordinate-merge tolerance passed to repair.
const repairEpsilon = 1e-8

// Voronoi is a diagram of sites and their clipped cell polygons, built
// once by Build and immutable thereafter (Refine returns a new diagram).
type Voronoi struct {
	Sites    []*Site
	Min, Max geom.Vector
}

// Build constructs a Voronoi diagram over points, bounded by [min, max],
// per spec.md §4.F's half-plane method (see cell.go/repair.go for the
// clipping and edge-repair steps). Duplicate sites are a precondition
// violation (spec.md §7.1).
func Build(min, max geom.Vector, points []geom.Vector) (*Voronoi, error) {
	if err := checkDuplicates(points); err != nil {
		return nil, err
	}

	cells := buildCells(min, max, points)
	repair(cells, repairEpsilon)

	sites := make([]*Site, len(cells))
	for i, c := range cells {
		poly, edges := buildPolygon(c)
		if poly == nil {
			// A cell whose edge graph failed to close is a recoverable
			// local failure (spec.md §7.2): skip it, keep the rest.
			continue
		}
		sites[i] = &Site{ID: i, Pos: points[i], Polygon: poly, edges: edges}
	}

	out := &Voronoi{Min: min, Max: max}
	for _, s := range sites {
		if s != nil {
			out.Sites = append(out.Sites, s)
		}
	}
	return out, nil
}

// Refine performs one Lloyd relaxation step: rebuilds the diagram using
// each current cell's polygon centroid as its new site.
func (v *Voronoi) Refine() (*Voronoi, error) {
	points := make([]geom.Vector, len(v.Sites))
	for i, s := range v.Sites {
		points[i] = s.Polygon.Centroid()
	}
	return Build(v.Min, v.Max, points)
}

// SiteFor returns the site whose centre is nearest p.
func (v *Voronoi) SiteFor(p geom.Vector) *Site {
	var best *Site
	bestDistSq := -1.0
	for _, s := range v.Sites {
		d := geom.DistSq(s.Pos, p)
		if bestDistSq < 0 || d < bestDistSq {
			bestDistSq = d
			best = s
		}
	}
	return best
}

func checkDuplicates(points []geom.Vector) error {
	seen := map[geom.Vector]bool{}
	for _, p := range points {
		if seen[p] {
			return cgerr.NewFatal("voronoi.Build", cgerr.ErrDuplicateVoronoiSite)
		}
		seen[p] = true
	}
	return nil
}
