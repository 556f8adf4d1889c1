package tensor

import (
	"math"
	"testing"
)

func TestGridFieldSampleConstant(t *testing.T) {
	f := NewGridField(Vec2{0, 0}, math.Inf(1), 0, 0)
	for _, p := range []Vec2{{1, 0}, {0, 1}, {-1, 0}} {
		tn := f.Sample(p)
		major := tn.Major()
		if math.Abs(math.Abs(major.X)-1) > 1e-9 || math.Abs(major.Y) > 1e-9 {
			t.Fatalf("expected constant major axis (+-1, 0), got %v at %v", major, p)
		}
	}
}

func TestRadialFieldWeightNonSmoothZeroAtEdge(t *testing.T) {
	f := NewRadialField(Vec2{0, 0}, 1, 1)
	if w := f.Weight(Vec2{2, 0}, false); w != 0 {
		t.Fatalf("expected zero weight beyond field size, got %v", w)
	}
}

func TestRadialFieldSampleEigenvector(t *testing.T) {
	f := NewRadialField(Vec2{0, 0}, 1, 1)
	tn := f.Sample(Vec2{1, 0})
	major := tn.Major()
	// Row at (1,0): (dy^2-dx^2, -2dxdy) = (-1, 0) => theta = pi/2, major (0, +-1)
	if math.Abs(major.X) > 1e-9 || math.Abs(math.Abs(major.Y)-1) > 1e-9 {
		t.Fatalf("expected major axis along (0, +-1), got %v", major)
	}
}
