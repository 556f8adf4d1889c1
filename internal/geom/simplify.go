package geom

import "math"

// Simplify runs the two-stage pipeline spec.md §4.D describes: a radial-
// distance filter followed by Douglas-Peucker, both against the same
// squared tolerance. Preserves the first and last points exactly.
func Simplify(points []Vector, tolerance float64) []Vector {
	if len(points) < 3 {
		return points
	}
	tolSq := tolerance * tolerance
	return douglasPeucker(radialDistance(points, tolSq), tolSq)
}

// radialDistance keeps the first point, then walks forward appending any
// point whose squared distance from the last *kept* point exceeds tolSq.
// The final input point is always retained.
//
// Open question #1 (spec.md §9): if the last point accepted by this walk
// already equals the final input point, it is not duplicated — see
// DESIGN.md for the rationale.
func radialDistance(points []Vector, tolSq float64) []Vector {
	kept := make([]Vector, 0, len(points))
	kept = append(kept, points[0])
	last := points[0]

	for i := 1; i < len(points)-1; i++ {
		if DistSq(points[i], last) > tolSq {
			kept = append(kept, points[i])
			last = points[i]
		}
	}

	final := points[len(points)-1]
	if !last.ApproxEqual(final, 0) {
		kept = append(kept, final)
	}
	return kept
}

// douglasPeucker recursively simplifies, splitting on the interior point
// with the greatest squared perpendicular distance from the segment
// (first, last) whenever that distance exceeds tolSq.
func douglasPeucker(points []Vector, tolSq float64) []Vector {
	if len(points) < 3 {
		return points
	}

	first, last := points[0], points[len(points)-1]
	maxDistSq := -1.0
	maxIdx := -1

	for i := 1; i < len(points)-1; i++ {
		d := pointSegmentDistSq(points[i], first, last)
		if d > maxDistSq {
			maxDistSq = d
			maxIdx = i
		}
	}

	if maxDistSq <= tolSq || maxIdx < 0 {
		return []Vector{first, last}
	}

	left := douglasPeucker(points[:maxIdx+1], tolSq)
	right := douglasPeucker(points[maxIdx:], tolSq)

	out := make([]Vector, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// pointSegmentDistSq is the squared distance from p to the segment [a, b],
// clamped so points beyond the segment's ends measure to the nearest
// endpoint rather than the infinite line.
func pointSegmentDistSq(p, a, b Vector) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 == 0 {
		return DistSq(p, a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	proj := a.Add(ab.Scale(t))
	return DistSq(p, proj)
}
