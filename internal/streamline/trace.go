package streamline

import (
	"github.com/jonaszell97/CityGen/internal/field"
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/grid"
	"github.com/jonaszell97/CityGen/internal/rng"
)

// half tracks one direction (forward or backward) of an in-progress
// streamline integration, per spec.md §4.C.1.
type half struct {
	valid     bool
	d0        geom.Vector
	prevDir   geom.Vector
	prevPoint geom.Vector
	points    []geom.Vector // newly generated points, not including the seed
}

func newHalf(f *field.Field, integrate field.Integrator, seed geom.Vector, major, forward bool, dstep float64) half {
	step := integrate(f, seed, major, dstep)
	if !forward {
		step = step.Scale(-1)
	}
	return half{
		valid:     !field.IsDegenerate(step),
		d0:        step,
		prevDir:   step,
		prevPoint: seed,
	}
}

// traceOne runs the paired forward/backward integration of spec.md
// §4.C.1-4.C.3 from seed and returns the concatenated streamline, or nil
// if the result, seed included, has 5 points or fewer. A streamline that
// loops back on itself is closed by appending its first point.
func (g *Generator) traceOne(seed geom.Vector, major bool) *Streamline {
	f := g.field
	p := g.params
	integrate := g.Integrator

	own, sibling := g.gridFor(major), g.gridFor(!major)
	useSibling := rng.Bool(p.EarlyCollisionProb)

	fwd := newHalf(f, integrate, seed, major, true, p.Dstep)
	bwd := newHalf(f, integrate, seed, major, false, p.Dstep)

	dtestSq := p.Dtest * p.Dtest
	dCircleJoinSq := p.DCircleJoin * p.DCircleJoin
	escaped := false
	looped := false

	for iter := 0; iter < p.PathIntegrationLimit; iter++ {
		anyValid := false
		for _, h := range []*half{&fwd, &bwd} {
			if !h.valid {
				continue
			}
			anyValid = true
			g.stepHalf(h, seed, major, integrate, own, sibling, useSibling, dtestSq)
		}
		if !anyValid {
			break
		}

		if fwd.valid && bwd.valid {
			distSq := geom.DistSq(fwd.prevPoint, bwd.prevPoint)
			if !escaped && distSq > dCircleJoinSq {
				escaped = true
			} else if escaped && distSq <= dCircleJoinSq {
				looped = true
				break
			}
		}
	}

	total := 1 + len(fwd.points) + len(bwd.points)
	if total <= 5 {
		return nil
	}

	points := make([]geom.Vector, 0, total)
	for i := len(bwd.points) - 1; i >= 0; i-- {
		points = append(points, bwd.points[i])
	}
	points = append(points, seed)
	points = append(points, fwd.points...)
	if looped {
		// The forward frontier is already last; appending the backward
		// frontier joins the two halves into a closed curve.
		points = append(points, points[0])
	}

	return &Streamline{Points: points, Major: major, Looped: looped}
}

// stepHalf advances h by one integration step, applying the monotone-walk
// sign flip, degeneracy/out-of-bounds/validity/turn checks of spec.md
// §4.C.1-§4.C.3, mutating h in place.
func (g *Generator) stepHalf(h *half, seed geom.Vector, major bool, integrate field.Integrator, own, sibling *grid.Grid, useSibling bool, dtestSq float64) {
	d := integrate(g.field, h.prevPoint, major, g.params.Dstep)
	if d.Dot(h.prevDir) < 0 {
		d = d.Scale(-1)
	}
	if field.IsDegenerate(d) {
		h.valid = false
		return
	}

	candidate := h.prevPoint.Add(d)
	if !g.inBounds(candidate) {
		h.valid = false
		return
	}
	if !g.validSample(candidate, own, sibling, useSibling, dtestSq) {
		h.valid = false
		return
	}

	perp := geom.New(h.d0.Y, -h.d0.X)
	if h.d0.Dot(d) < 0 && candidate.Sub(seed).Dot(perp) < 0 && d.Dot(perp) > 0 {
		h.valid = false
		return
	}

	h.points = append(h.points, candidate)
	h.prevDir = d
	h.prevPoint = candidate
}

// validSample wraps grid.IsValidSample with the land-mask check and the
// optional sibling-grid participation of spec.md §4.C.2.
func (g *Generator) validSample(p geom.Vector, own, sibling *grid.Grid, useSibling bool, distSq float64) bool {
	if !g.field.IsLand(p) {
		return false
	}
	if !own.IsValidSample(p, distSq) {
		return false
	}
	if useSibling && !sibling.IsValidSample(p, distSq) {
		return false
	}
	return true
}

// inBounds reports whether p falls within the world rectangle, or (for
// park-mode streamlines) the optional bounding polygon.
func (g *Generator) inBounds(p geom.Vector) bool {
	if g.bounds != nil {
		return g.bounds.Contains(p)
	}
	return p.X >= g.world.Min.X && p.X <= g.world.Max.X &&
		p.Y >= g.world.Min.Y && p.Y <= g.world.Max.Y
}
