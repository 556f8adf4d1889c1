package citygen

import (
	"github.com/jonaszell97/CityGen/internal/geom"
	"github.com/jonaszell97/CityGen/internal/graph"
	"github.com/jonaszell97/CityGen/internal/rng"
)

// selectParks greedily picks closed loops to serve as park faces until the
// accumulated area reaches targetPercentage of the world's area, skipping
// any loop whose centroid falls within minDistance of an already-chosen
// park (spec.md §6's parkAreaPercentage/minDistanceBetweenParks). Loops are
// considered in a randomly shuffled order so the selection isn't biased
// toward however internal/graph happened to enumerate faces.
func selectParks(loops []graph.Loop, worldArea, targetPercentage, minDistance float64) []*geom.Polygon {
	order := shuffledIndices(len(loops))
	targetArea := worldArea * targetPercentage

	var parks []*geom.Polygon
	var centroids []geom.Vector
	area := 0.0

	for _, idx := range order {
		if area >= targetArea {
			break
		}
		candidate := loops[idx].Polygon
		centroid := candidate.Centroid()

		tooClose := false
		for _, c := range centroids {
			if geom.Dist(c, centroid) < minDistance {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		parks = append(parks, candidate)
		centroids = append(centroids, centroid)
		area += candidate.Area()
	}

	return parks
}

// shuffledIndices returns a Fisher-Yates shuffle of [0, n) drawn from the
// process-wide RNG, so park selection order is reproducible given a seed.
func shuffledIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntRange(0, i+1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
