package citygen

import (
	"testing"

	"github.com/jonaszell97/CityGen/internal/rng"
)

func TestDrawBoundaryProducesAClosedPolygonWithinTheWorld(t *testing.T) {
	cfg := testConfig()
	rng.Reseed(cfg.Seed)
	shape, err := drawBoundary(cfg)
	if err != nil {
		t.Fatalf("drawBoundary returned error: %v", err)
	}
	if len(shape.Points) < 3 {
		t.Fatalf("expected a polygon with at least 3 points, got %d", len(shape.Points))
	}

	bounds := shape.Bounds()
	if bounds.Min.X < 0 || bounds.Min.Y < 0 || bounds.Max.X > cfg.Size || bounds.Max.Y > cfg.Size {
		t.Fatalf("expected the coastline to stay within the world square, got bounds %+v", bounds)
	}
}

func TestDrawBoundaryIsReproducibleForAFixedSeed(t *testing.T) {
	cfg := testConfig()

	rng.Reseed(cfg.Seed)
	a, err := drawBoundary(cfg)
	if err != nil {
		t.Fatalf("first drawBoundary returned error: %v", err)
	}

	rng.Reseed(cfg.Seed)
	b, err := drawBoundary(cfg)
	if err != nil {
		t.Fatalf("second drawBoundary returned error: %v", err)
	}
	if len(a.Points) != len(b.Points) {
		t.Fatalf("expected identical point counts for the same seed, got %d and %d", len(a.Points), len(b.Points))
	}
}
