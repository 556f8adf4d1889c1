package tensor

import (
	"math"
	"testing"

	"github.com/jonaszell97/CityGen/internal/geom"
)

func TestMajorMinorOrthogonalAndZero(t *testing.T) {
	tn := New(1, math.Pi/6)
	major, minor := tn.Major(), tn.Minor()
	if dot := major.Dot(minor); math.Abs(dot) > 1e-9 {
		t.Fatalf("Major and Minor should be orthogonal for R>0, dot=%v", dot)
	}

	z := Zero
	if z.Major() != geom.Zero || z.Minor() != geom.Zero {
		t.Fatalf("Major/Minor should be zero when R=0")
	}
}

func TestFromMatrixRowZero(t *testing.T) {
	tn := FromMatrixRow(0, 0)
	if tn != Zero {
		t.Fatalf("expected zero tensor from zero row, got %v", tn)
	}
}

func TestWeightedSumSmoothRenormalizes(t *testing.T) {
	a := New(1, 0)
	b := New(3, math.Pi/2)
	result := WeightedSum([]Tensor{a, b}, []float64{1, 1}, true)

	ra, rb := result.Row()
	if math.Hypot(ra, rb) != result.R {
		t.Fatalf("smooth mode should renormalize R to the accumulated matrix magnitude")
	}
}

func TestWeightedSumNonSmoothForcesR2(t *testing.T) {
	a := New(1, 0)
	result := WeightedSum([]Tensor{a}, []float64{1}, false)
	if result.R != 2 {
		t.Fatalf("non-smooth mode should force R=2, got %v", result.R)
	}
}
