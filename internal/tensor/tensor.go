// Package tensor implements the symmetric-traceless 2x2 tensor algebra
// spec.md §3 describes, encoded as a nonnegative magnitude R and a unit
// matrix row (cos 2theta, sin 2theta). Nothing elsewhere in this module
// works with field tensors (Voronoi math works with plain vectors and
// linear constraints instead), so this package is built directly from
// the algebraic description using stdlib math only.
package tensor

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/geom"
)

// Tensor is a symmetric traceless 2x2 matrix, represented by a nonnegative
// magnitude R and an angle theta such that the matrix row is
// (cos 2*theta, sin 2*theta). Invariant: when R == 0, theta is 0.
type Tensor struct {
	R     float64
	Theta float64
}

// Zero is the zero tensor (R=0, theta=0), per the invariant in spec.md §3.
var Zero = Tensor{}

// New builds a tensor from a magnitude and angle, enforcing the zero-tensor
// invariant.
func New(r, theta float64) Tensor {
	if r == 0 {
		return Zero
	}
	return Tensor{R: r, Theta: theta}
}

// FromMatrixRow builds a tensor from an explicit (a, b) matrix row
// (a = R*cos(2θ), b = R*sin(2θ)), as basis fields in spec.md §3 hand back.
func FromMatrixRow(a, b float64) Tensor {
	r := math.Hypot(a, b)
	if r == 0 {
		return Zero
	}
	return Tensor{R: r, Theta: math.Atan2(b, a) / 2}
}

// Row returns the tensor's matrix row (R*cos 2θ, R*sin 2θ).
func (t Tensor) Row() (a, b float64) {
	return t.R * math.Cos(2*t.Theta), t.R * math.Sin(2*t.Theta)
}

// Major is the eigenvector direction (cos θ, sin θ); zero when R == 0.
func (t Tensor) Major() geom.Vector {
	if t.R == 0 {
		return geom.Zero
	}
	return geom.New(math.Cos(t.Theta), math.Sin(t.Theta))
}

// Minor is the eigenvector perpendicular to Major: (cos(θ+π/2), sin(θ+π/2));
// zero when R == 0.
func (t Tensor) Minor() geom.Vector {
	if t.R == 0 {
		return geom.Zero
	}
	return geom.New(math.Cos(t.Theta+math.Pi/2), math.Sin(t.Theta+math.Pi/2))
}

// Scale multiplies the tensor's magnitude by s (a negative s would flip
// which half-plane θ falls in, but no caller in this engine scales by
// negative values, so that edge case is left to the angle wrap-around
// normal arithmetic provides).
func (t Tensor) Scale(s float64) Tensor {
	return New(t.R*s, t.Theta)
}

// Rotated adds deltaAngle to t's angle, keeping R unchanged. Used by the
// tensor field to apply rotational noise (spec.md §4.A steps 4-5).
func (t Tensor) Rotated(deltaAngle float64) Tensor {
	return New(t.R, t.Theta+deltaAngle)
}

// RotatedTo returns a copy of t with its angle replaced by newTheta,
// keeping R unchanged ("in-place rotation to a new θ" per spec.md §3,
// expressed here as a value return since Tensor is immutable like Vector).
func (t Tensor) RotatedTo(newTheta float64) Tensor {
	return New(t.R, newTheta)
}

// WeightedSum sums the tensors ts, each scaled by the matching entry of
// weights, in one of two modes described in spec.md §3:
//
//   - smooth: accumulate matrix rows directly, then renormalize R to the
//     resulting matrix's own magnitude (the angle falls out of atan2 of the
//     accumulated row, exactly as superposing fields should behave).
//   - non-smooth: accumulate matrix rows the same way, but force R to the
//     fixed value 2 regardless of the accumulated magnitude.
//
// This is the low-level combinator; field-level accumulation over many
// basis fields uses Accumulator below.
func WeightedSum(ts []Tensor, weights []float64, smooth bool) Tensor {
	acc := NewAccumulator()
	for i, t := range ts {
		acc.Add(t, weights[i])
	}
	return acc.Result(smooth)
}

// Accumulator sums weighted matrix rows incrementally, used by the tensor
// field when folding many basis fields together (spec.md §4.A step 3).
type Accumulator struct {
	a, b float64
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds weight*t's matrix row into the running sum.
func (acc *Accumulator) Add(t Tensor, weight float64) {
	a, b := t.Row()
	acc.a += a * weight
	acc.b += b * weight
}

// Result finalizes the accumulation per spec.md §3's two modes.
func (acc *Accumulator) Result(smooth bool) Tensor {
	if acc.a == 0 && acc.b == 0 {
		return Zero
	}
	theta := math.Atan2(acc.b, acc.a) / 2
	if smooth {
		r := math.Hypot(acc.a, acc.b)
		return New(r, theta)
	}
	return New(2, theta)
}
