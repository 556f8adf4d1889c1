package streamline

import "github.com/jonaszell97/CityGen/internal/geom"

// Streamline is one traced polyline plus the flags downstream consumers
// (the graph builder, the road renderer) need.
type Streamline struct {
	Points []geom.Vector
	Major  bool
	Looped bool
}

// Simplify returns the radial-distance + Douglas-Peucker reduced copy of
// the streamline's points, using tol as the (non-squared) tolerance.
func (s *Streamline) Simplify(tol float64) []geom.Vector {
	return geom.Simplify(s.Points, tol)
}
