// Package island extracts a city's outer coastline from a Voronoi diagram
// and a boundary shape predicate, per spec.md §4.G. Follows a
// classify-then-keep-boundary-edges idiom: classify cells by membership in
// a region, keep only the edges on the region's boundary.
package island

import "github.com/jonaszell97/CityGen/internal/geom"

// Boundary is the tagged-variant boundary-shape predicate spec.md §9's
// design notes call for ({Radial, Polygon, Union} dispatching on tag);
// in Go the natural equivalent is an interface with a single Contains
// method that each concrete shape implements, and which *geom.Polygon
// already satisfies directly.
type Boundary interface {
	Contains(p geom.Vector) bool
}

// Disk is a circular boundary shape.
type Disk struct {
	Center geom.Vector
	Radius float64
}

// Contains reports whether p lies within the disk.
func (d Disk) Contains(p geom.Vector) bool {
	return geom.DistSq(p, d.Center) <= d.Radius*d.Radius
}

// Union is the logical OR of several boundary shapes.
type Union []Boundary

// Contains reports whether p lies within any member shape.
func (u Union) Contains(p geom.Vector) bool {
	for _, b := range u {
		if b.Contains(p) {
			return true
		}
	}
	return false
}
