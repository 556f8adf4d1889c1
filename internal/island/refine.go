package island

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/rng"
)

// perturbFlipProbability is the chance a subdivision point's perpendicular
// offset flips to the opposite side, per spec.md §4.G.4.
const perturbFlipProbability = 0.2

// refine subdivides any coastline segment more than 3x the average edge
// length long, adding a randomly perturbed perpendicular jitter at each
// intermediate point, per spec.md §4.G.4. maxDist bounds the jitter
// magnitude (5%-20% of it).
func refine(points []geom.Vector, maxDist float64) []geom.Vector {
	if len(points) < 2 {
		return points
	}

	avg := averageEdgeLength(points)
	threshold := avg * 3

	out := []geom.Vector{points[0]}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		lengthSq := geom.DistSq(a, b)
		if lengthSq <= threshold*threshold || threshold <= 0 {
			out = append(out, b)
			continue
		}

		steps := int(math.Ceil(lengthSq / (threshold * threshold)))
		dir := b.Sub(a)
		perp := dir.PerpCCW().Normalized()
		side := 1.0

		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			p := geom.Lerp(a, b, t)

			magnitude := rng.FloatRange(0.05*maxDist, 0.2*maxDist)
			if rng.Bool(perturbFlipProbability) {
				side = -side
			}
			p = p.Add(perp.Scale(magnitude * side))
			out = append(out, p)
		}
		out = append(out, b)
	}
	return out
}

func averageEdgeLength(points []geom.Vector) float64 {
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += geom.Dist(points[i-1], points[i])
	}
	return total / float64(len(points)-1)
}
