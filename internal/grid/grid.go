// Package grid implements the uniform spatial index spec.md §3/§4.C.2
// describes: a bucketed 2D array of cells of side dsep, giving O(1)
// neighbour queries and minimum-distance validation for the streamline
// generator.
//
// Follows a candidate/site min-distance filter idiom, which rejects a
// candidate site if it is too close to any existing site — here
// generalized from an O(n) scan over every site to an O(1) bucketed lookup
// over the surrounding 3x3 cells, since the streamline generator's sample
// counts (thousands of points per streamline) make a linear scan
// impractical.
package grid

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/geom"
)

type cellKey struct {
	x, y int
}

// Grid buckets samples into cells of side dsep, keyed from an arbitrary
// origin (the world-rectangle min corner in practice).
type Grid struct {
	origin geom.Vector
	dsep   float64
	cells  map[cellKey][]geom.Vector
}

// New creates a grid with the given cell side and origin.
func New(origin geom.Vector, dsep float64) *Grid {
	return &Grid{
		origin: origin,
		dsep:   dsep,
		cells:  map[cellKey][]geom.Vector{},
	}
}

func (g *Grid) keyFor(p geom.Vector) cellKey {
	rel := p.Sub(g.origin)
	return cellKey{
		x: int(math.Floor(rel.X / g.dsep)),
		y: int(math.Floor(rel.Y / g.dsep)),
	}
}

// Insert adds a sample point to its cell.
func (g *Grid) Insert(p geom.Vector) {
	k := g.keyFor(p)
	g.cells[k] = append(g.cells[k], p)
}

// IsValidSample reports whether p is at least sqrt(distSq) away from every
// other stored sample in the surrounding 3x3 neighbourhood of cells
// (spec.md §4.C.2). p itself, if already present, is not compared to
// itself (distance 0 to itself is not a violation).
func (g *Grid) IsValidSample(p geom.Vector, distSq float64) bool {
	k := g.keyFor(p)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, q := range g.cells[cellKey{k.x + dx, k.y + dy}] {
				if q == p {
					continue
				}
				if geom.DistSq(p, q) < distSq {
					return false
				}
			}
		}
	}
	return true
}

// Nearby returns every stored sample within radius of p (a superset scan
// over the cells the radius could possibly reach), used by the dangling-end
// join search (spec.md §4.C.5) which needs actual candidates, not just a
// boolean validity check.
func (g *Grid) Nearby(p geom.Vector, radius float64) []geom.Vector {
	k := g.keyFor(p)
	reach := int(radius/g.dsep) + 1
	radiusSq := radius * radius

	out := []geom.Vector{}
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for _, q := range g.cells[cellKey{k.x + dx, k.y + dy}] {
				if geom.DistSq(p, q) <= radiusSq {
					out = append(out, q)
				}
			}
		}
	}
	return out
}

// AddExisting copies another grid's samples into this one ("register" in
// spec.md §3's ownership note: "one generator may register (copy) another's
// samples to honour existing density"). After the call the two grids are
// independent.
func (g *Grid) AddExisting(other *Grid) {
	for _, samples := range other.cells {
		for _, p := range samples {
			g.Insert(p)
		}
	}
}

// Len returns the total number of stored samples, mostly useful for tests.
func (g *Grid) Len() int {
	n := 0
	for _, s := range g.cells {
		n += len(s)
	}
	return n
}
