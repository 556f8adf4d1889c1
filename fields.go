package citygen

import (
	"math"

	"github.com/jonaszell97/CityGen/internal/field"
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/rng"
	"github.com/jonaszell97/CityGen/internal/tensor"
)

// cornerFieldTheta is the grid-field angle assigned to each of the world
// square's four corners: a diagonal pointing toward the opposite corner,
// which is what produces the converging diagonal street pattern classic
// tensor-field city generators use near a map's edges. spec.md §2 names
// "four corner grid basis fields" without specifying their angle or size;
// this choice (and the size/decay below) is recorded as an Open Question
// decision in DESIGN.md.
const cornerFieldTheta = math.Pi / 4

// cornerFieldDecay is the decay exponent for each corner field, used by
// both weight modes.
const cornerFieldDecay = 2

// registerCornerFields adds the four corner grid basis fields spec.md §2's
// control flow names, each sized to half the world so its influence fades
// out around the map's centre.
func registerCornerFields(f *field.Field, size float64) {
	half := size / 2
	corners := []geom.Vector{
		geom.New(0, 0),
		geom.New(size, 0),
		geom.New(0, size),
		geom.New(size, size),
	}
	for _, c := range corners {
		f.AddBasis(tensor.NewGridField(tensor.Vec2{X: c.X, Y: c.Y}, half, cornerFieldDecay, cornerFieldTheta))
	}
}

// registerRandomRadialFields adds n radial basis fields at random points
// in the world square, per spec.md §2's "random radial fields" step.
func registerRandomRadialFields(f *field.Field, size float64, n int) {
	for i := 0; i < n; i++ {
		c := tensor.Vec2{
			X: rng.FloatRange(0, size),
			Y: rng.FloatRange(0, size),
		}
		f.AddBasis(tensor.NewRadialField(c, size*0.2, 2))
	}
}
