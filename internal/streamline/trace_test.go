package streamline

import (
	"math"
	"testing"

	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/rng"
)

func TestTraceOneDiscardsShortStreamlines(t *testing.T) {
	rng.Reseed(1)
	f, world := gridFieldWorld(2000)
	p := scenarioAParams()
	p.PathIntegrationLimit = 0 // no steps at all beyond the seed itself
	g := NewGenerator(f, p, world, nil)

	s := g.traceOne(geom.New(1000, 1000), true)
	if s != nil {
		t.Fatalf("expected nil streamline (<=5 points), got %d points", len(s.Points))
	}
}

func TestTraceOneProducesMonotoneStepLengths(t *testing.T) {
	rng.Reseed(2)
	f, world := gridFieldWorld(2000)
	p := scenarioAParams()
	g := NewGenerator(f, p, world, nil)

	s := g.traceOne(geom.New(1000, 1000), true)
	if s == nil {
		t.Fatalf("expected a streamline")
	}
	for i := 1; i < len(s.Points); i++ {
		d := geom.Dist(s.Points[i-1], s.Points[i])
		if d <= 0 || d > 2*p.Dstep+1e-6 {
			t.Errorf("step %d length %v outside (0, 2*dstep]", i, d)
		}
	}
}

func TestInBoundsRespectsOptionalPolygon(t *testing.T) {
	f, world := gridFieldWorld(2000)
	poly := geom.NewPolygon([]geom.Vector{
		geom.New(900, 900), geom.New(1100, 900), geom.New(1100, 1100), geom.New(900, 1100),
	})
	g := NewGenerator(f, scenarioAParams(), world, poly)

	if !g.inBounds(geom.New(1000, 1000)) {
		t.Errorf("expected centre of bounding polygon to be in bounds")
	}
	if g.inBounds(geom.New(10, 10)) {
		t.Errorf("expected point outside bounding polygon to be rejected despite being inside world rect")
	}
}

func TestSqrtToleranceMatchesSimplify(t *testing.T) {
	tol := math.Sqrt(0.5)
	if tol <= 0 {
		t.Fatalf("expected positive tolerance")
	}

	// Interior points deviate 0.6 from the chord: squared 0.36, under the
	// squared tolerance 0.5 but over 0.25, so only a sqrt(0.5) tolerance
	// reduces the line to its two endpoints.
	f, world := gridFieldWorld(2000)
	p := scenarioAParams()
	p.SimplificationTol = 0.5
	g := NewGenerator(f, p, world, nil)
	pts := []geom.Vector{
		geom.New(0, 0), geom.New(1, 0.6), geom.New(2, 0), geom.New(3, 0.6), geom.New(4, 0),
	}
	g.All = []*Streamline{{Points: pts, Major: true}}
	g.recomputeSimplified()

	want := geom.Simplify(pts, tol)
	got := g.Simplified[0]
	if len(got) != 2 || len(got) != len(want) {
		t.Fatalf("expected simplification with sqrt tolerance to keep 2 points, got %v (Simplify gives %v)", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, Simplify with sqrt tolerance gives %v", i, got[i], want[i])
		}
	}
}
