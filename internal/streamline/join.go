package streamline

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/field"
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/rng"
)

// lookbackDepth is the "4 points back" spec.md §4.C.5 uses to establish a
// streamline end's extrapolation direction.
const lookbackDepth = 4

// joinDanglingEnds runs spec.md §4.C.5's dangling-end joining and
// cul-de-sac synthesis over every non-looping streamline, major tier then
// minor tier, both ends of each.
func (g *Generator) joinDanglingEnds() {
	for _, s := range g.Major {
		g.joinStreamlineEnds(s, true)
	}
	for _, s := range g.Minor {
		g.joinStreamlineEnds(s, false)
	}
}

func (g *Generator) joinStreamlineEnds(s *Streamline, major bool) {
	if s.Looped || len(s.Points) < 2 {
		return
	}
	g.joinEnd(s, major, false)
	g.joinEnd(s, major, true)
}

// joinEnd resolves one end (atTail selects the last point, else the
// first) of s: finds the best join candidate, then either synthesises a
// cul-de-sac or bridges toward the candidate with intermediate points. A
// candidate outside the world rectangle or bounding polygon is not
// bridged to.
func (g *Generator) joinEnd(s *Streamline, major, atTail bool) {
	e, dir, prev := endContext(s, atTail)
	if field.IsDegenerate(dir) {
		return
	}

	candidate, found := g.bestJoinCandidate(e, dir, major)

	rMax := g.params.CulDeSacRadiusMax
	if found {
		half := geom.Dist(candidate, e)/2 - minCulDeSacDistance
		if half < g.params.CulDeSacRadiusMax {
			rMax = half
		}
		if rMax < 0 {
			rMax = 0
		}
	}

	if rng.Bool(g.params.CulDeSacProbability) && rMax >= g.params.CulDeSacRadiusMin {
		pts := g.culDeSac(e, prev, rMax)
		g.appendEnd(s, major, atTail, pts)
		return
	}

	if !found || !g.inBounds(candidate) {
		return
	}
	pts := g.bridgePoints(e, candidate)
	g.appendEnd(s, major, atTail, pts)
}

// endContext returns the end point e, its extrapolation direction dir
// (e minus the point lookbackDepth entries back), and the point used as
// "previousEndpoint" for cul-de-sac centre placement.
func endContext(s *Streamline, atTail bool) (e, dir, prev geom.Vector) {
	n := len(s.Points)
	back := lookbackDepth
	if back >= n {
		back = n - 1
	}

	if atTail {
		e = s.Points[n-1]
		prev = s.Points[n-1-back]
	} else {
		e = s.Points[0]
		prev = s.Points[back]
	}
	return e, e.Sub(prev), prev
}

// bestJoinCandidate implements spec.md §4.C.5's candidate search: gather
// points within Dlookahead from both grids, reject those whose
// displacement from e opposes dir, accept the first within the near-field
// short-circuit distance, else the nearest within RoadJoinAngle of dir.
func (g *Generator) bestJoinCandidate(e, dir geom.Vector, major bool) (geom.Vector, bool) {
	candidates := g.majorGrid.Nearby(e, g.params.Dlookahead)
	candidates = append(candidates, g.minorGrid.Nearby(e, g.params.Dlookahead)...)

	nearSq := 2 * g.params.Dstep * g.params.Dstep
	ndir := dir.Normalized()

	var best geom.Vector
	bestAngle := math.MaxFloat64
	found := false

	for _, c := range candidates {
		if c.ApproxEqual(e, 1e-9) {
			continue
		}
		disp := c.Sub(e)
		if disp.Dot(dir) < 0 {
			continue
		}

		if geom.DistSq(c, e) <= nearSq {
			best, found = c, true
			break
		}

		angle := math.Abs(ndir.AngleTo(disp.Normalized()))
		if angle < g.params.RoadJoinAngle && angle < bestAngle {
			bestAngle = angle
			best = c
			found = true
		}
	}

	if !found {
		return geom.Vector{}, false
	}

	offset := ndir.Scale(4 * g.params.SimplificationTol)
	return best.Add(offset), true
}

// culDeSac emits points around a circle of a radius chosen uniformly in
// [CulDeSacRadiusMin, min(rMax, CulDeSacRadiusMax)], centred along the
// e-minus-previous direction, stepping culDeSacStepRad through a full
// revolution (spec.md §4.C.5).
func (g *Generator) culDeSac(e, prev geom.Vector, rMax float64) []geom.Vector {
	hi := rMax
	if g.params.CulDeSacRadiusMax < hi {
		hi = g.params.CulDeSacRadiusMax
	}
	lo := g.params.CulDeSacRadiusMin
	if hi < lo {
		hi = lo
	}
	radius := rng.FloatRange(lo, hi)

	dir := e.Sub(prev).Normalized()
	centre := e.Add(dir.Scale(radius))

	start := math.Atan2(e.Y-centre.Y, e.X-centre.X)

	var pts []geom.Vector
	for a := 0.0; a < 2*math.Pi; a += culDeSacStepRad {
		theta := start + a
		pts = append(pts, geom.New(
			centre.X+radius*math.Cos(theta),
			centre.Y+radius*math.Sin(theta),
		))
	}
	if len(pts) == 0 || !pts[len(pts)-1].ApproxEqual(e, 1e-6) {
		pts = append(pts, e)
	}
	return pts
}

// bridgePoints steps from e toward candidate at Dstep spacing, skipping
// degenerate points, per spec.md §4.C.5's tails branch.
func (g *Generator) bridgePoints(e, candidate geom.Vector) []geom.Vector {
	total := geom.Dist(e, candidate)
	if total == 0 {
		return nil
	}
	dir := candidate.Sub(e).Normalized()

	var pts []geom.Vector
	for d := g.params.Dstep; d < total; d += g.params.Dstep {
		p := e.Add(dir.Scale(d))
		if field.DegenerateAt(g.field, p, true) && field.DegenerateAt(g.field, p, false) {
			continue
		}
		pts = append(pts, p)
	}
	pts = append(pts, candidate)
	return pts
}

// appendEnd inserts newly generated points into s (at the chosen end) and
// into the tier's grid.
func (g *Generator) appendEnd(s *Streamline, major, atTail bool, pts []geom.Vector) {
	if len(pts) == 0 {
		return
	}
	own := g.gridFor(major)
	for _, p := range pts {
		own.Insert(p)
	}

	if atTail {
		s.Points = append(s.Points, pts...)
		return
	}

	reversed := make([]geom.Vector, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	s.Points = append(reversed, s.Points...)
}
