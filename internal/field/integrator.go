package field

import (
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/tensor"
)

// degenerateThresholdSq is the squared-magnitude cutoff below which an
// eigenvector is considered degenerate (spec.md's glossary: "a point where
// the sampled eigenvector has squared magnitude below 0.01").
const degenerateThresholdSq = 0.01

// eigenvector picks Major or Minor from a sampled tensor, per the major
// flag integrators are parameterised by.
func eigenvector(t tensor.Tensor, major bool) geom.Vector {
	if major {
		return t.Major()
	}
	return t.Minor()
}

// IsDegenerate reports whether v's squared magnitude is below the
// degenerate threshold.
func IsDegenerate(v geom.Vector) bool {
	return v.LengthSq() < degenerateThresholdSq
}

// Integrator maps (point, major-flag) to a step vector of length ~ dstep.
type Integrator func(f *Field, p geom.Vector, major bool, dstep float64) geom.Vector

// Euler takes a single sample at p and scales its eigenvector to dstep.
func Euler(f *Field, p geom.Vector, major bool, dstep float64) geom.Vector {
	ev := eigenvector(f.Sample(p), major)
	if IsDegenerate(ev) {
		return geom.Zero
	}
	return ev.Scale(dstep)
}

// RK4 samples at p, the half-step, and the full step, combining them with
// Simpson's-rule weights, per spec.md §4.B.
func RK4(f *Field, p geom.Vector, major bool, dstep float64) geom.Vector {
	k1 := eigenvector(f.Sample(p), major)
	if IsDegenerate(k1) {
		return geom.Zero
	}

	half := dstep / 2
	mid := p.Add(geom.New(half, half))
	k23 := eigenvector(f.Sample(mid), major)
	if IsDegenerate(k23) {
		return geom.Zero
	}

	full := p.Add(geom.New(dstep, dstep))
	k4 := eigenvector(f.Sample(full), major)
	if IsDegenerate(k4) {
		return geom.Zero
	}

	sum := k1.Add(k23.Scale(4)).Add(k4)
	return sum.Scale(dstep / 6)
}

// degenerateAt reports whether f's eigenvector at p (major flag) is
// degenerate, used by the streamline generator when placing points along a
// join/cul-de-sac path without wanting a full Integrator step.
func degenerateAt(f *Field, p geom.Vector, major bool) bool {
	return IsDegenerate(eigenvector(f.Sample(p), major))
}

// DegenerateAt is the exported form of degenerateAt, used outside this
// package by the streamline generator.
func DegenerateAt(f *Field, p geom.Vector, major bool) bool {
	return degenerateAt(f, p, major)
}
