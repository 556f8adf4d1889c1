package grid

import (
	"testing"

	"github.com/jonaszell97/CityGen/internal/geom"
)

func TestIsValidSampleRejectsClosePoints(t *testing.T) {
	g := New(geom.Zero, 10)
	g.Insert(geom.New(5, 5))

	if g.IsValidSample(geom.New(5.1, 5.1), 100) {
		t.Error("expected nearby point to be rejected at distSq=100")
	}
	if !g.IsValidSample(geom.New(50, 50), 100) {
		t.Error("expected far point to be accepted")
	}
}

func TestIsValidSampleChecksNeighbouringCells(t *testing.T) {
	g := New(geom.Zero, 10)
	// One cell over, but still within the min distance.
	g.Insert(geom.New(10.5, 0))

	if g.IsValidSample(geom.New(9.5, 0), 4) {
		t.Error("expected point in neighbouring cell within distance to be rejected")
	}
}

func TestNearby(t *testing.T) {
	g := New(geom.Zero, 10)
	g.Insert(geom.New(0, 0))
	g.Insert(geom.New(100, 100))

	got := g.Nearby(geom.New(1, 1), 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 nearby sample, got %d", len(got))
	}
}

func TestAddExistingCopiesIndependently(t *testing.T) {
	a := New(geom.Zero, 10)
	a.Insert(geom.New(1, 1))

	b := New(geom.Zero, 10)
	b.AddExisting(a)

	if b.Len() != 1 {
		t.Fatalf("expected 1 sample copied, got %d", b.Len())
	}

	a.Insert(geom.New(2, 2))
	if b.Len() != 1 {
		t.Fatalf("grids should be independent after AddExisting, got %d", b.Len())
	}
}
