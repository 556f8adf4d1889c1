package geom

import "testing"

func TestSimplifyPreservesEndpoints(t *testing.T) {
	points := []Vector{
		New(0, 0), New(1, 0.01), New(2, -0.01), New(3, 0.02), New(10, 0),
	}
	out := Simplify(points, 0.5)
	if out[0] != points[0] {
		t.Fatalf("first point not preserved: %v", out[0])
	}
	if out[len(out)-1] != points[len(points)-1] {
		t.Fatalf("last point not preserved: %v", out[len(out)-1])
	}
}

func TestSimplifyDropsNearlyCollinearPoints(t *testing.T) {
	points := []Vector{
		New(0, 0), New(1, 0.001), New(2, -0.001), New(10, 0),
	}
	out := Simplify(points, 0.5)
	if len(out) != 2 {
		t.Fatalf("expected near-collinear interior points to be dropped, got %v", out)
	}
}

func TestSimplifyKeepsSignificantDeviation(t *testing.T) {
	points := []Vector{
		New(0, 0), New(5, 5), New(10, 0),
	}
	out := Simplify(points, 0.1)
	if len(out) != 3 {
		t.Fatalf("expected the sharp peak to survive simplification, got %v", out)
	}
}

func TestPointSegmentDistSqClampsToEndpoints(t *testing.T) {
	d := pointSegmentDistSq(New(-5, 0), New(0, 0), New(10, 0))
	if d != 25 {
		t.Fatalf("expected clamped distance 25, got %v", d)
	}
}
