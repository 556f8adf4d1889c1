package citygen

import (
	"testing"

	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/graph"
	"github.com/jonaszell97/CityGen/internal/rng"
)

func squareLoop(cx, cy, half float64) graph.Loop {
	return graph.Loop{Polygon: geom.NewPolygon([]geom.Vector{
		geom.New(cx-half, cy-half), geom.New(cx+half, cy-half),
		geom.New(cx+half, cy+half), geom.New(cx-half, cy+half),
	})}
}

func TestSelectParksStopsOnceTargetAreaIsReached(t *testing.T) {
	rng.Reseed(1)
	loops := []graph.Loop{squareLoop(0, 0, 5), squareLoop(100, 100, 5), squareLoop(200, 200, 5)}

	parks := selectParks(loops, 10000, 0.01, 1)
	// Target area is 10000*0.01 = 100 and each loop's area is 100, so
	// selection stops right after the first park.
	if len(parks) != 1 {
		t.Fatalf("expected selection to stop after exactly one park, got %d", len(parks))
	}
}

func TestSelectParksSkipsLoopsTooCloseToAnExistingPark(t *testing.T) {
	rng.Reseed(1)
	loops := []graph.Loop{squareLoop(0, 0, 5), squareLoop(1, 1, 5)}

	parks := selectParks(loops, 10000, 1, 1000)
	if len(parks) != 1 {
		t.Fatalf("expected exactly one park given a large minDistance, got %d", len(parks))
	}
}

func TestSelectParksReturnsNoneForAZeroTarget(t *testing.T) {
	rng.Reseed(1)
	loops := []graph.Loop{squareLoop(0, 0, 5)}
	if parks := selectParks(loops, 10000, 0, 0); len(parks) != 0 {
		t.Fatalf("expected no parks for a zero target area, got %d", len(parks))
	}
}

func TestShuffledIndicesIsAPermutation(t *testing.T) {
	rng.Reseed(1)
	idx := shuffledIndices(10)
	seen := make(map[int]bool)
	for _, i := range idx {
		seen[i] = true
	}
	if len(seen) != 10 {
		t.Fatalf("expected a permutation of 10 distinct indices, got %d distinct values", len(seen))
	}
}
