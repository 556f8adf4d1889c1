// Package field composes basis fields, rotational noise, and a land/water
// mask into the single sampleable TensorField spec.md §3/§4.A describes,
// plus the Euler/RK4 step operators of §4.B.
//
// Nothing else in this module composes tensor fields; this package follows
// spec.md §4.A directly. Rotational noise uses github.com/ojrac/opensimplex-go,
// named (not grounded) per SPEC_FULL.md §0 since no example repo implements
// simplex noise.
package field

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/tensor"
)

// Field is a 2D tensor field: a list of weighted basis fields plus noise
// parameters, an optional park-polygon list, optional sea/river polygons,
// and a smooth flag controlling accumulation mode.
type Field struct {
	Basis []tensor.BasisField

	NoiseParkSize    float64
	NoiseParkAngle   float64
	NoiseGlobalSize  float64
	NoiseGlobalAngle float64
	NoiseGlobalOn    bool

	Parks []*geom.Polygon
	Land  *geom.Polygon // the island coastline; nil means "everywhere is land"
	Sea   *geom.Polygon
	River *geom.Polygon

	Smooth bool

	noise opensimplex.Noise
}

// New creates an empty field seeded deterministically for its rotational
// noise sampler.
func New(seed int64, smooth bool) *Field {
	return &Field{
		Smooth: smooth,
		noise:  opensimplex.New(seed),
	}
}

// AddBasis registers a basis field; order does not matter since
// accumulation is a commutative weighted sum.
func (f *Field) AddBasis(b tensor.BasisField) {
	f.Basis = append(f.Basis, b)
}

// inWater reports whether p falls inside the sea or river polygon, i.e.
// outside the land mask (spec.md §4.A step 1 / §3's land-mask invariant).
func (f *Field) inWater(p geom.Vector) bool {
	if f.Land != nil && !f.Land.Contains(p) {
		return true
	}
	if f.Sea != nil && f.Sea.Contains(p) {
		return true
	}
	if f.River != nil && f.River.Contains(p) {
		return true
	}
	return false
}

// IsLand is the exported complement of inWater, used by the streamline
// generator's validity check (spec.md §4.C.2: "a point p is a valid sample
// ... iff it is on land").
func (f *Field) IsLand(p geom.Vector) bool {
	return !f.inWater(p)
}

func (f *Field) inAnyPark(p geom.Vector) bool {
	for _, park := range f.Parks {
		if park.Contains(p) {
			return true
		}
	}
	return false
}

// Sample evaluates the field at p, per spec.md §4.A's five-step recipe.
func (f *Field) Sample(p geom.Vector) tensor.Tensor {
	if f.inWater(p) {
		return tensor.Zero
	}

	if len(f.Basis) == 0 {
		return tensor.New(1, 0)
	}

	acc := tensor.NewAccumulator()
	for _, b := range f.Basis {
		v2 := tensor.Vec2{X: p.X, Y: p.Y}
		w := b.Weight(v2, f.Smooth)
		if w == 0 {
			continue
		}
		acc.Add(b.Sample(v2), w)
	}
	result := acc.Result(f.Smooth)

	if f.inAnyPark(p) {
		angle := f.noise.Eval2(math.Floor(p.X/f.NoiseParkSize), math.Floor(p.Y/f.NoiseParkSize)) * f.NoiseParkAngle
		result = result.Rotated(angle)
	}

	if f.NoiseGlobalOn {
		angle := f.noise.Eval2(math.Floor(p.X/f.NoiseGlobalSize), math.Floor(p.Y/f.NoiseGlobalSize)) * f.NoiseGlobalAngle
		result = result.Rotated(angle)
	}

	return result
}
