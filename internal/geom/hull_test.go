package geom

import "testing"

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	points := []Vector{
		New(0, 0), New(10, 0), New(10, 10), New(0, 10), New(5, 5),
	}
	hull := ConvexHull(points)
	if len(hull.Points) != 4 {
		t.Fatalf("expected 4 hull points, got %d: %v", len(hull.Points), hull.Points)
	}
	for _, p := range hull.Points {
		if p == New(5, 5) {
			t.Fatalf("interior point should not be on the hull")
		}
	}
}

func TestConvexHullCollinear(t *testing.T) {
	points := []Vector{New(0, 0), New(1, 0), New(2, 0)}
	hull := ConvexHull(points)
	if len(hull.Points) > 2 {
		t.Fatalf("collinear points should not produce an interior hull point, got %v", hull.Points)
	}
}
