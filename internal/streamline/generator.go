package streamline

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/field"
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/grid"
	"github.com/jonaszell97/CityGen/internal/rng"
)

// Generator owns the major/minor spatial grids, candidate-seed stacks, and
// the four streamline lists spec.md §4.C describes.
type Generator struct {
	field  *field.Field
	params RoadParams
	world  geom.Rect
	bounds *geom.Polygon // non-nil for park-mode generation

	// Integrator selects Euler or RK4 for every step this generator takes.
	// Not named explicitly in spec.md's per-tier parameter table; RK4 is
	// used by default as the higher-order method §4.B offers (recorded as
	// an Open Question decision in DESIGN.md).
	Integrator field.Integrator

	majorGrid *grid.Grid
	minorGrid *grid.Grid

	candidateMajor []geom.Vector
	candidateMinor []geom.Vector

	Major      []*Streamline
	Minor      []*Streamline
	All        []*Streamline
	Simplified [][]geom.Vector
}

// NewGenerator creates a generator for one road tier over the given world
// rectangle. bounds, if non-nil, additionally confines tracing and seeding
// to a polygon (park-mode streamlines per spec.md §4.C.1).
func NewGenerator(f *field.Field, params RoadParams, world geom.Rect, bounds *geom.Polygon) *Generator {
	params = params.Normalize()
	return &Generator{
		field:      f,
		params:     params,
		world:      world,
		bounds:     bounds,
		Integrator: field.RK4,
		majorGrid:  grid.New(world.Min, params.Dsep),
		minorGrid:  grid.New(world.Min, params.Dsep),
	}
}

func (g *Generator) gridFor(major bool) *grid.Grid {
	if major {
		return g.majorGrid
	}
	return g.minorGrid
}

func (g *Generator) candidatesFor(major bool) *[]geom.Vector {
	if major {
		return &g.candidateMajor
	}
	return &g.candidateMinor
}

// AddExistingStreamlines registers another generator's samples into this
// one's grids, honouring its existing density (spec.md §5's "Shared
// state" note) without coupling the two generators afterwards.
func (g *Generator) AddExistingStreamlines(other *Generator) {
	g.majorGrid.AddExisting(other.majorGrid)
	g.minorGrid.AddExisting(other.minorGrid)
}

// nextSeed implements spec.md §4.C.4's seeding policy for one direction:
// pop candidate endpoints first (if enabled and any satisfy validity at
// dsep²), else fall back to uniform random sampling bounded by
// MaxSeedTries. Returns ok=false when the direction is exhausted.
func (g *Generator) nextSeed(major bool) (geom.Vector, bool) {
	dsepSq := g.params.Dsep * g.params.Dsep
	own := g.gridFor(major)

	if g.params.SeedAtEndpoints {
		stack := g.candidatesFor(major)
		for len(*stack) > 0 {
			n := len(*stack) - 1
			p := (*stack)[n]
			*stack = (*stack)[:n]
			if own.IsValidSample(p, dsepSq) {
				return p, true
			}
		}
	}

	for try := 0; try < g.params.MaxSeedTries; try++ {
		p := g.randomPoint()
		if own.IsValidSample(p, dsepSq) {
			return p, true
		}
	}
	return geom.Vector{}, false
}

func (g *Generator) randomPoint() geom.Vector {
	if g.bounds != nil {
		return g.bounds.RandomPoint(rng.Shared(), g.params.MaxSeedTries)
	}
	return geom.New(
		rng.FloatRange(g.world.Min.X, g.world.Max.X),
		rng.FloatRange(g.world.Min.Y, g.world.Max.Y),
	)
}

// CreateAllStreamlines alternates major/minor seeding, tracing up to
// maxPerDirection streamlines per direction (spec.md §4.C.4). A direction
// stops early once seeding is exhausted; the other continues until it
// also exhausts or reaches its own cap.
func (g *Generator) CreateAllStreamlines(maxPerDirection int) {
	majorDone, minorDone := false, false
	majorCount, minorCount := 0, 0
	wantMajor := true

	for !majorDone || !minorDone {
		major := wantMajor
		wantMajor = !wantMajor

		if major {
			if majorDone || majorCount >= maxPerDirection {
				majorDone = true
				continue
			}
			majorCount++
		} else {
			if minorDone || minorCount >= maxPerDirection {
				minorDone = true
				continue
			}
			minorCount++
		}

		seed, ok := g.nextSeed(major)
		if !ok {
			if major {
				majorDone = true
			} else {
				minorDone = true
			}
			continue
		}

		s := g.traceOne(seed, major)
		if s == nil {
			continue
		}
		g.commit(s, major)
	}

	g.joinDanglingEnds()
	g.recomputeSimplified()
}

// commit registers a freshly traced streamline: inserts every point into
// its tier's grid, records it in the tier and All lists, and pushes both
// endpoints as candidate seeds for the *other* direction.
func (g *Generator) commit(s *Streamline, major bool) {
	own := g.gridFor(major)
	for _, p := range s.Points {
		own.Insert(p)
	}

	if major {
		g.Major = append(g.Major, s)
	} else {
		g.Minor = append(g.Minor, s)
	}
	g.All = append(g.All, s)

	if !s.Looped {
		other := g.candidatesFor(!major)
		*other = append(*other, s.Points[0], s.Points[len(s.Points)-1])
	}
}

// recomputeSimplified rebuilds the Simplified list from every streamline
// currently in All, per spec.md §4.C.5's closing step.
func (g *Generator) recomputeSimplified() {
	tol := math.Sqrt(g.params.SimplificationTol)
	g.Simplified = g.Simplified[:0]
	for _, s := range g.All {
		g.Simplified = append(g.Simplified, s.Simplify(tol))
	}
}
