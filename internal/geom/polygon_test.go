package geom

import (
	"math/rand"
	"testing"
)

func square(side float64) *Polygon {
	return NewPolygon([]Vector{
		New(0, 0), New(side, 0), New(side, side), New(0, side),
	})
}

func TestPolygonAreaInvariantUnderWindingAndRotation(t *testing.T) {
	ccw := square(10)
	cw := NewPolygon([]Vector{New(0, 0), New(0, 10), New(10, 10), New(10, 0)})

	if ccw.Area() != cw.Area() {
		t.Fatalf("area should be invariant under winding: %v vs %v", ccw.Area(), cw.Area())
	}
	if ccw.Area() != 100 {
		t.Fatalf("expected area 100, got %v", ccw.Area())
	}

	rotated := NewPolygon([]Vector{New(10, 0), New(10, 10), New(0, 10), New(0, 0)})
	if rotated.Centroid() != ccw.Centroid() {
		t.Fatalf("centroid should be invariant under cyclic rotation: %v vs %v", rotated.Centroid(), ccw.Centroid())
	}
}

func TestPolygonContains(t *testing.T) {
	sq := square(10)
	if !sq.Contains(New(5, 5)) {
		t.Error("expected centre point to be contained")
	}
	if sq.Contains(New(50, 50)) {
		t.Error("expected far point to not be contained")
	}
}

func TestPolygonRandomPoint(t *testing.T) {
	sq := square(10)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		p := sq.RandomPoint(rng, 100)
		if !sq.Contains(p) && p != sq.Points[0] {
			t.Fatalf("random point %v neither contained nor the fallback vertex", p)
		}
	}
}

func TestPolygonScalePreservesCentroid(t *testing.T) {
	sq := square(10)
	c := sq.Centroid()
	sq.Scale(2)
	if sq.Centroid() != c {
		t.Fatalf("centroid should be unchanged by Scale about centroid: %v vs %v", sq.Centroid(), c)
	}
	if sq.Area() != 400 {
		t.Fatalf("expected scaled area 400, got %v", sq.Area())
	}
}
