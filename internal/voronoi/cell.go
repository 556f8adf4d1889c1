// Package voronoi builds Voronoi diagrams via half-plane clipping and
// Lloyd relaxation (spec.md §4.F).
//
// Built on the unixpickle/voronoi-glass half-plane clipping idiom: each
// site's cell is the intersection of the world rectangle with every
// bisecting half-plane against every other site, computed via
// github.com/unixpickle/model3d/model2d's ConvexPolytope/LinearConstraint.
// The model2d/geom.Vector boundary sits right at the end of clipping here
// (see buildCells), so every step after it — repair, chain-ordering,
// polygon assembly — works in this engine's own float-vector type rather
// than threading model2d.Coord through the rest of the package.
package voronoi

import (
	"github.com/unixpickle/model3d/model2d"

	"github.com/jonaszell97/CityGen/internal/geom"
)

// cell holds one site's boundary as an unordered set of clipped edges,
// already converted to geom.Vector. Repair and chain-ordering happen on
// this representation.
type cell struct {
	center geom.Vector
	edges  [][2]geom.Vector
}

// buildCells computes each site's clipped polytope boundary, per
// spec.md §4.F steps 1-2 (sentinel bounding folded into the rectangle
// constraint directly). Every site is skipped against by
// index rather than by coordinate equality, so two distinct sites that
// happen to share a coordinate still clip against every other site
// correctly instead of silently skipping each other too.
func buildCells(min, max geom.Vector, sites []geom.Vector) []*cell {
	minC, maxC := toCoord(min), toCoord(max)
	coords := make([]model2d.Coord, len(sites))
	for i, s := range sites {
		coords[i] = toCoord(s)
	}

	cells := make([]*cell, len(sites))
	for i, s := range coords {
		constraints := model2d.NewConvexPolytopeRect(minC, maxC)
		for j, other := range coords {
			if j == i {
				continue
			}
			mid := s.Mid(other)
			normal := other.Sub(s).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mid),
			})
		}

		segs := constraints.Mesh().SegmentSlice()
		edges := make([][2]geom.Vector, len(segs))
		for k, seg := range segs {
			edges[k] = [2]geom.Vector{fromCoord(seg[0]), fromCoord(seg[1])}
		}
		cells[i] = &cell{center: sites[i], edges: edges}
	}
	return cells
}

func toCoord(v geom.Vector) model2d.Coord {
	return model2d.Coord{X: v.X, Y: v.Y}
}

func fromCoord(c model2d.Coord) geom.Vector {
	return geom.New(c.X, c.Y)
}
