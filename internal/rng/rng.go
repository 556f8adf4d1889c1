// Package rng provides the process-wide seeded RNG spec.md §5/§6 describes:
// a single mutable *rand.Rand with a Reseed(seed) -> many Next* lifecycle,
// where call order changes the output (by design — this is a deliberate
// single-threaded convenience, not a concurrency-safe primitive; see
// spec.md §9's design note on replacing it with an explicit handle if
// concurrency is ever introduced).
//
// Generalizes a per-struct rand.New(rand.NewSource(seed)) pattern into one
// shared instance, since spec.md explicitly calls for a process-wide RNG
// rather than many independently-seeded per-component ones.
package rng

import "math/rand"

var shared = rand.New(rand.NewSource(1))

// Reseed replaces the shared generator's source. Identical seeds produce
// identical sequences for any fixed call schedule (spec.md §8 property 9).
func Reseed(seed int64) {
	shared = rand.New(rand.NewSource(seed))
}

// Float64 returns a value in [0, 1).
func Float64() float64 {
	return shared.Float64()
}

// FloatRange returns a value in [min, max).
func FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + shared.Float64()*(max-min)
}

// IntRange returns an int in [min, max) — exclusive upper bound.
func IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + shared.Intn(max-min)
}

// Pick returns a uniformly random element of a non-empty slice.
func Pick[T any](items []T) T {
	return items[shared.Intn(len(items))]
}

// Bool returns true with the given probability (0 always false, 1 always
// true, out-of-range clamped).
func Bool(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return shared.Float64() < probability
}

// Shared exposes the process-wide generator itself, for collaborators
// (e.g. geom.Polygon.RandomPoint) whose API predates this package and
// still takes a *rand.Rand directly.
func Shared() *rand.Rand {
	return shared
}
