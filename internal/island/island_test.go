package island

import (
	"testing"

	"github.com/jonaszell97/CityGen/internal/geom"
)

// square returns an axis-aligned square polygon centred at c with half-width r.
func square(c geom.Vector, r float64) *geom.Polygon {
	return geom.NewPolygon([]geom.Vector{
		{X: c.X - r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y + r},
		{X: c.X - r, Y: c.Y + r},
	})
}

func TestClassifySplitsLandAndSea(t *testing.T) {
	boundary := Disk{Center: geom.New(0, 0), Radius: 10}
	sites := Adapt(3,
		func(i int) *geom.Polygon {
			switch i {
			case 0:
				return square(geom.New(0, 0), 1)
			case 1:
				return square(geom.New(100, 100), 1)
			default:
				return square(geom.New(0, 0), 1)
			}
		},
		func(i int) [][2]geom.Vector { return nil },
	)

	land, sea := classify(sites, boundary)
	if len(land) != 2 || len(sea) != 1 {
		t.Fatalf("expected 2 land, 1 sea, got %d land, %d sea", len(land), len(sea))
	}
}

func TestEdgeMatchesIgnoresOrientationWithinTolerance(t *testing.T) {
	a := [2]geom.Vector{geom.New(0, 0), geom.New(1, 1)}
	b := [2]geom.Vector{geom.New(1.05, 1.0), geom.New(0.02, -0.03)}
	if !edgeMatches(a, b) {
		t.Fatalf("expected edges to match within tolerance regardless of orientation")
	}
}

func TestOrderClosesASquare(t *testing.T) {
	p1, p2, p3, p4 := geom.New(0, 0), geom.New(10, 0), geom.New(10, 10), geom.New(0, 10)
	edges := [][2]geom.Vector{
		{p1, p2}, {p2, p3}, {p3, p4}, {p4, p1},
	}

	ordered := order(edges)
	if len(ordered) < 4 {
		t.Fatalf("expected a closed walk of at least 4 points, got %d", len(ordered))
	}
	if !ordered[0].ApproxEqual(ordered[len(ordered)-1], orderTolerance) {
		t.Fatalf("expected the walk to close back near its start")
	}
}

func TestRefinePreservesShortEdges(t *testing.T) {
	points := []geom.Vector{geom.New(0, 0), geom.New(1, 0), geom.New(2, 0)}
	out := refine(points, 10)
	if len(out) != len(points) {
		t.Fatalf("expected no subdivision of already-uniform edges, got %d points", len(out))
	}
}

func TestRefineSubdividesLongEdges(t *testing.T) {
	// Five unit edges and one of length 95: the average edge is 100/6, so
	// the 95-long edge exceeds three times the average and is split.
	points := []geom.Vector{
		geom.New(0, 0), geom.New(1, 0), geom.New(2, 0), geom.New(3, 0),
		geom.New(4, 0), geom.New(5, 0), geom.New(100, 0),
	}
	out := refine(points, 50)
	if len(out) <= len(points) {
		t.Fatalf("expected subdivision of the long final edge, got %d points", len(out))
	}
}

func TestBuildRejectsAnEmptyCoastline(t *testing.T) {
	sites := Adapt(1,
		func(i int) *geom.Polygon { return square(geom.New(0, 0), 1) },
		func(i int) [][2]geom.Vector { return nil },
	)
	if _, err := Build(sites, Disk{Center: geom.New(0, 0), Radius: 10}); err == nil {
		t.Fatalf("expected an error when no coastline edges exist")
	}
}
