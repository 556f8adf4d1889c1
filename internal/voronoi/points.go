package voronoi

import (
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/rng"
)

// GeneratePoints retries uniform-random points in [min, max] against an
// O(n) linear minimum-distance check, per spec.md §4.F, until n are
// accepted: the same O(n) per-candidate scan against every already-accepted
// point used by a pluggable min-distance site filter, folded into one
// function since this engine never needs pluggable-filter machinery.
func GeneratePoints(min, max geom.Vector, n int, minDist float64) []geom.Vector {
	minDistSq := minDist * minDist
	points := make([]geom.Vector, 0, n)

	for len(points) < n {
		candidate := geom.New(
			rng.FloatRange(min.X, max.X),
			rng.FloatRange(min.Y, max.Y),
		)
		if farEnough(points, candidate, minDistSq) {
			points = append(points, candidate)
		}
	}
	return points
}

func farEnough(points []geom.Vector, candidate geom.Vector, minDistSq float64) bool {
	for _, p := range points {
		if geom.DistSq(p, candidate) < minDistSq {
			return false
		}
	}
	return true
}
