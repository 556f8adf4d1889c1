package citygen

import (
	"testing"

	"github.com/jonaszell97/CityGen/internal/field"
	"github.com/jonaszell97/CityGen/internal/rng"
)

func TestRegisterCornerFieldsAddsFourBases(t *testing.T) {
	f := field.New(1, false)
	registerCornerFields(f, 1000)
	if len(f.Basis) != 4 {
		t.Fatalf("expected 4 corner basis fields, got %d", len(f.Basis))
	}
}

func TestRegisterRandomRadialFieldsAddsRequestedCount(t *testing.T) {
	rng.Reseed(1)
	f := field.New(1, false)
	registerRandomRadialFields(f, 1000, 5)
	if len(f.Basis) != 5 {
		t.Fatalf("expected 5 radial basis fields, got %d", len(f.Basis))
	}
}
