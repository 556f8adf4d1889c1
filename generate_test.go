package citygen

import (
	"testing"

	"github.com/jonaszell97/CityGen/internal/streamline"
)

func testConfig() Config {
	return Config{
		Seed:                    1,
		Size:                    1000,
		RandomRadialFields:      2,
		ParkAreaPercentage:      0.1,
		MinDistanceBetweenParks: 40,
		RoadParameters: []streamline.RoadParams{
			{
				Name: "Main", Type: "road",
				Dsep: 120, Dtest: 60, Dstep: 1, DCircleJoin: 5, Dlookahead: 150,
				RoadJoinAngle: 0.1, PathIntegrationLimit: 500, MaxSeedTries: 100,
				SimplificationTol: 1, CulDeSacRadiusMin: 5, CulDeSacRadiusMax: 15,
			},
			{
				Name: "Minor", Type: "road",
				Dsep: 60, Dtest: 30, Dstep: 1, DCircleJoin: 3, Dlookahead: 80,
				RoadJoinAngle: 0.1, PathIntegrationLimit: 500, MaxSeedTries: 100,
				SimplificationTol: 1, CulDeSacRadiusMin: 5, CulDeSacRadiusMax: 15,
			},
			{
				Name: "Path", Type: "path",
				Dsep: 30, Dtest: 15, Dstep: 1, DCircleJoin: 2, Dlookahead: 40,
				RoadJoinAngle: 0.1, PathIntegrationLimit: 300, MaxSeedTries: 60,
				SimplificationTol: 1, CulDeSacRadiusMin: 3, CulDeSacRadiusMax: 8,
			},
		},
	}
}

func TestGenerateProducesACoastlineAndOrderedRoads(t *testing.T) {
	m, err := Generate(testConfig())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if m.CityShape == nil {
		t.Fatal("expected a non-nil CityShape")
	}
	if len(m.Roads) == 0 {
		t.Fatal("expected at least one road")
	}

	lastOrder := -1
	for _, r := range m.Roads {
		order := roadTypeOrder(r.Type)
		if order < lastOrder {
			t.Fatalf("roads not sorted by tier: encountered order %d after %d", order, lastOrder)
		}
		lastOrder = order
	}
}

func TestGenerateIsDeterministicForAFixedSeed(t *testing.T) {
	a, err := Generate(testConfig())
	if err != nil {
		t.Fatalf("first Generate returned error: %v", err)
	}
	b, err := Generate(testConfig())
	if err != nil {
		t.Fatalf("second Generate returned error: %v", err)
	}

	if len(a.Roads) != len(b.Roads) {
		t.Fatalf("expected identical road counts for the same seed, got %d and %d", len(a.Roads), len(b.Roads))
	}
	if len(a.Parks) != len(b.Parks) {
		t.Fatalf("expected identical park counts for the same seed, got %d and %d", len(a.Parks), len(b.Parks))
	}
}

func TestGenerateRespectsParkAreaPercentageAsAnUpperTarget(t *testing.T) {
	cfg := testConfig()
	cfg.ParkAreaPercentage = 0
	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(m.Parks) != 0 {
		t.Fatalf("expected zero parks when parkAreaPercentage is 0, got %d", len(m.Parks))
	}
}
