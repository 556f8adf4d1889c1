// Package citygen is the Map façade: it orchestrates the tensor field,
// streamline generator, planar graph, Voronoi diagram, and island boundary
// packages under the road hierarchy described in spec.md §2, following a
// build() order (sites → voronoi → roads → ...) generalized from a district
// layout to a road-network one.
package citygen

import (
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/graph"
	"github.com/jonaszell97/CityGen/internal/streamline"
)

// RoadType tags a Road's tier. Kept as a small open string type rather than
// a fixed enum of exactly {Main, Major, Minor} (mirroring an open,
// string-keyed DistrictType enum) so a configuration may name arbitrarily
// many road tiers; park-path tiers are always tagged Path.
type RoadType string

const (
	Main  RoadType = "Main"
	Major RoadType = "Major"
	Minor RoadType = "Minor"
	Path  RoadType = "Path"
)

// Road is one generated streamline tagged with its tier, per spec.md §3.
type Road struct {
	Type     RoadType
	Polyline []geom.Vector
}

// Map is the complete generated city: its roads, planar graph, selected
// parks, and refined coastline. Every field is owned exclusively by the
// Map that produced it (spec.md §3's ownership note).
type Map struct {
	CityShape *geom.Polygon
	Graph     *graph.Graph
	Parks     []*geom.Polygon
	Roads     []Road
}

// roadParamsByType returns the subset of tiers matching kind ("road" or
// "path"), preserving their configured order.
func roadParamsByType(params []streamline.RoadParams, kind string) []streamline.RoadParams {
	var out []streamline.RoadParams
	for _, p := range params {
		if p.Type == kind {
			out = append(out, p)
		}
	}
	return out
}

// roadTypeOrder ranks RoadType for the final output order spec.md §6
// requires ("all Main, then all Major, then all Minor, then all Path").
// Names outside that fixed quartet sort after Minor and before Path, so an
// arbitrarily-named extra road tier still renders before the park paths.
func roadTypeOrder(t RoadType) int {
	switch t {
	case Main:
		return 0
	case Major:
		return 1
	case Minor:
		return 2
	case Path:
		return 4
	default:
		return 3
	}
}
